package population

import (
	"math"
	"math/rand/v2"
)

// Source is the random stream individuals are sampled from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	Uint64() uint64
}

// NewSource returns a deterministic PCG-backed source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns an unseeded source.
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// fork derives an independent source for a worker goroutine.
func fork(src Source) Source {
	return rand.New(rand.NewPCG(src.Uint64(), src.Uint64()))
}

// weightedIndex picks an index with probability proportional to its weight.
// A point is drawn uniformly in [0, sum) and the first index whose cumulative
// weight exceeds it wins. Weights must be validated beforehand.
func weightedIndex(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := src.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	// Float rounding can leave r == cum on the last step; fall back to the
	// last index carrying weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}

// uniformInt draws an integer from the closed interval [lo, hi]. The span is
// computed in uint64 so ranges wider than math.MaxInt do not overflow.
func uniformInt(src Source, lo, hi int) int {
	span := uint64(hi) - uint64(lo) + 1
	switch {
	case span == 0:
		// [math.MinInt, math.MaxInt]: every uint64 maps to one int.
		return int(src.Uint64())
	case span <= math.MaxInt:
		return lo + src.IntN(int(span))
	}
	// span > math.MaxInt, so more than half of all uint64 values are
	// accepted on each draw.
	for {
		if v := src.Uint64(); v < span {
			return int(uint64(lo) + v)
		}
	}
}

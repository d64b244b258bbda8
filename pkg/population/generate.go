package population

import (
	"sync"
)

// Option configures a Generator.
type Option func(*Generator)

// WithTieBreak replaces the uniform tie-break of the classification rule.
// With more than one worker the function is called concurrently.
func WithTieBreak(tb TieBreak) Option {
	return func(g *Generator) {
		if tb != nil {
			g.tieBreak = tb
		}
	}
}

// WithWorkers splits generation across k goroutines. Each worker draws from
// its own source forked from the generator's source, so results are
// reproducible for a given seed and worker count but differ between worker
// counts.
func WithWorkers(k int) Option {
	return func(g *Generator) {
		if k > 0 {
			g.workers = k
		}
	}
}

// Generator samples synthetic populations.
type Generator struct {
	src      Source
	tieBreak TieBreak
	workers  int
}

// NewGenerator creates a generator drawing from src. A nil src means an
// unseeded source.
func NewGenerator(src Source, opts ...Option) *Generator {
	if src == nil {
		src = NewRandomSource()
	}
	g := &Generator{
		src:      src,
		tieBreak: UniformTieBreak,
		workers:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates p, then samples p.N individuals and classifies each one.
// Counts are accumulated as individuals are classified and always sum to p.N.
func (g *Generator) Generate(p Params) (*Population, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	workers := g.workers
	if workers > p.N {
		workers = p.N
	}
	if workers <= 1 {
		pop := &Population{
			Individuals: make([]Individual, p.N),
			Counts:      NewCategoryCounts(),
		}
		g.fill(g.src, p, pop.Individuals, pop.Counts)
		return pop, nil
	}
	return g.generateParallel(p, workers), nil
}

func (g *Generator) generateParallel(p Params, workers int) *Population {
	pop := &Population{
		Individuals: make([]Individual, p.N),
		Counts:      NewCategoryCounts(),
	}

	// Sources are forked up front so the parent stream is only touched by
	// this goroutine.
	chunk := (p.N + workers - 1) / workers
	partial := make([]CategoryCounts, workers)
	sources := make([]Source, workers)
	for w := range workers {
		sources[w] = fork(g.src)
		partial[w] = NewCategoryCounts()
	}

	var wg sync.WaitGroup
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, p.N)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			g.fill(sources[w], p, pop.Individuals[lo:hi], partial[w])
		}(w, lo, hi)
	}
	wg.Wait()

	for _, c := range partial {
		pop.Counts.merge(c)
	}
	return pop
}

// fill samples len(out) individuals into out, tallying them into counts.
func (g *Generator) fill(src Source, p Params, out []Individual, counts CategoryCounts) {
	for i := range out {
		ind := g.sample(src, p)
		counts[ind.Accommodation]++
		out[i] = ind
	}
}

// sample draws one individual. The draw order is fixed: age, gender,
// education, employment, income, social status, relatives abroad, then the
// classification tie-break if one is needed.
func (g *Generator) sample(src Source, p Params) Individual {
	ind := Individual{
		AgeBracket:   AgeBrackets[weightedIndex(src, AgeWeights)],
		Gender:       Genders[weightedIndex(src, GenderWeights)],
		Education:    EducationLevels[weightedIndex(src, p.EducationWeights)],
		Employment:   EmploymentStates[weightedIndex(src, p.EmploymentWeights)],
		Income:       uniformInt(src, p.IncomeMin, p.IncomeMax),
		SocialStatus: SocialStatuses[weightedIndex(src, p.SocialStatusWeights)],
	}
	ind.RelativesAbroad = RelativesNo
	if weightedIndex(src, []float64{p.RelativesAbroadProb, 1 - p.RelativesAbroadProb}) == 0 {
		ind.RelativesAbroad = RelativesYes
	}
	ind.Accommodation = Classify(ind.Income, ind.SocialStatus, src, g.tieBreak)
	return ind
}

// Generate samples a population with an unseeded source and the uniform
// tie-break.
func Generate(p Params) (*Population, error) {
	return NewGenerator(nil).Generate(p)
}

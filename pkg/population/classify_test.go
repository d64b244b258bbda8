package population

import "testing"

// fixedSource returns the same draw every time.
type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(int) int     { return s.n }
func (s fixedSource) Uint64() uint64   { return 0 }

func alwaysFirst(_ Source, a, _ Accommodation) Accommodation { return a }

func TestClassifyBranches(t *testing.T) {
	tests := []struct {
		income int
		status SocialStatus
		tb     TieBreak
		want   Accommodation
	}{
		{651, Single, alwaysFirst, LuxuryApartment},
		{651, Family, alwaysSecond, House},
		{10000, Family, alwaysFirst, LuxuryApartment},
		{650, Single, alwaysFirst, StandardApartment},
		{650, Family, alwaysFirst, StandardApartment},
		{300, Family, alwaysFirst, StandardApartment},
		{300, Single, alwaysSecond, StandardApartment},
		{299, Single, alwaysFirst, SharedHousing},
		{0, Single, alwaysSecond, PublicHousing},
		{299, Family, alwaysFirst, PublicHousing},
		{-50, Family, alwaysSecond, PublicHousing},
	}

	for _, tt := range tests {
		got := Classify(tt.income, tt.status, fixedSource{}, tt.tb)
		if got != tt.want {
			t.Errorf("Classify(%d, %s) = %q, want %q", tt.income, tt.status, got, tt.want)
		}
	}
}

func TestClassifyUnknownStatusFallsThrough(t *testing.T) {
	// A status outside the sampled set only reaches the final branch when
	// income is below the low threshold.
	if got := Classify(100, SocialStatus("Other"), fixedSource{}, alwaysFirst); got != Undefined {
		t.Errorf("got %q, want Undefined", got)
	}
}

func TestUniformTieBreak(t *testing.T) {
	if got := UniformTieBreak(fixedSource{n: 0}, SharedHousing, PublicHousing); got != SharedHousing {
		t.Errorf("draw 0 = %q, want Shared Housing", got)
	}
	if got := UniformTieBreak(fixedSource{n: 1}, SharedHousing, PublicHousing); got != PublicHousing {
		t.Errorf("draw 1 = %q, want Public Housing", got)
	}
}

func TestWeightedIndex(t *testing.T) {
	weights := []float64{0.03, 0.26, 0.53, 0.18}
	tests := []struct {
		f    float64
		want int
	}{
		{0.0, 0},
		{0.029, 0},
		{0.031, 1},
		{0.5, 2},
		{0.83, 3},
		{0.9999, 3},
	}
	for _, tt := range tests {
		if got := weightedIndex(fixedSource{f: tt.f}, weights); got != tt.want {
			t.Errorf("weightedIndex(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}

	// Unnormalized weights are relative.
	if got := weightedIndex(fixedSource{f: 0.6}, []float64{1, 1, 0, 3}); got != 3 {
		t.Errorf("relative weights: got %d, want 3", got)
	}
	// Zero-weight tail is never chosen even at the top of the range.
	if got := weightedIndex(fixedSource{f: 0.999999}, []float64{1, 0}); got != 0 {
		t.Errorf("zero tail: got %d, want 0", got)
	}
}

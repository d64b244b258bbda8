package validation

import (
	"math"
	"testing"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/scenario"
)

func validScenario() *scenario.Scenario {
	return &scenario.Scenario{
		ScenarioVersion: "0.1.0",
		Name:            "baseline",
		Population:      10000,
		Income:          scenario.IncomeRange{Min: 300, Max: 650},
		Education:       scenario.EducationMix{None: 0.03, Primary: 0.26, Secondary: 0.53, Higher: 0.18},
		Employment:      scenario.EmploymentMix{Employed: 0.5, Unemployed: 0.5},
		SocialStatus:    scenario.SocialStatusMix{Single: 0.51, Family: 0.49},
		RelativesAbroad: 0.18,
	}
}

func TestValidateScenarioValid(t *testing.T) {
	r := ValidateScenario(validScenario())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestValidateScenarioPopulationZero(t *testing.T) {
	s := validScenario()
	s.Population = 0
	r := ValidateScenario(s)
	if r.Valid {
		t.Error("expected invalid report for population=0")
	}
	assertHasError(t, r, "population")
}

func TestValidateScenarioIncomeInverted(t *testing.T) {
	s := validScenario()
	s.Income = scenario.IncomeRange{Min: 800, Max: 700}
	r := ValidateScenario(s)
	if r.Valid {
		t.Error("expected invalid report for inverted income range")
	}
	assertHasError(t, r, "income.min")
}

func TestValidateScenarioNegativeIncome(t *testing.T) {
	s := validScenario()
	s.Income = scenario.IncomeRange{Min: -10, Max: 100}
	r := ValidateScenario(s)
	assertHasError(t, r, "income.min")
	if r.HasErrorAt("income.max") {
		t.Error("income.max is valid and should not be flagged")
	}
}

func TestValidateScenarioNegativeWeight(t *testing.T) {
	s := validScenario()
	s.Employment.Unemployed = -0.5
	r := ValidateScenario(s)
	if r.Valid {
		t.Error("expected invalid for negative weight")
	}
	assertHasError(t, r, "employment.unemployed")
}

func TestValidateScenarioNaNWeight(t *testing.T) {
	s := validScenario()
	s.Education.Higher = math.NaN()
	r := ValidateScenario(s)
	assertHasError(t, r, "education.higher")
}

func TestValidateScenarioZeroWeights(t *testing.T) {
	s := validScenario()
	s.SocialStatus = scenario.SocialStatusMix{}
	r := ValidateScenario(s)
	assertHasError(t, r, "social_status")
}

func TestValidateScenarioUnnormalizedWeightsWarn(t *testing.T) {
	s := validScenario()
	s.Education = scenario.EducationMix{None: 1, Primary: 1, Secondary: 1, Higher: 1}
	r := ValidateScenario(s)
	if !r.Valid {
		t.Errorf("unnormalized weights should not invalidate: %v", r.Errors)
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Path != "education" {
		t.Errorf("expected one education warning, got %v", r.Warnings)
	}
}

func TestValidateScenarioRelativesAbroad(t *testing.T) {
	for _, p := range []float64{-0.1, 1.01, math.NaN()} {
		s := validScenario()
		s.RelativesAbroad = p
		r := ValidateScenario(s)
		if r.Valid {
			t.Errorf("relatives_abroad=%v: expected invalid", p)
		}
		assertHasError(t, r, "relatives_abroad")
	}
}

func TestValidateScenarioReportsEveryError(t *testing.T) {
	s := validScenario()
	s.Population = -1
	s.Income = scenario.IncomeRange{Min: 10, Max: 5}
	s.RelativesAbroad = 2
	r := ValidateScenario(s)
	if len(r.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateScenarioAgreesWithParams(t *testing.T) {
	s := validScenario()
	s.Income = scenario.IncomeRange{Min: 900, Max: 100}
	r := ValidateScenario(s)
	if r.Valid == (s.Params().Validate() == nil) {
		t.Error("scenario validation and parameter validation disagree")
	}
}

func assertHasError(t *testing.T, r *Report, path string) {
	t.Helper()
	if !r.HasErrorAt(path) {
		t.Errorf("expected error with path %q, got errors: %v", path, r.Errors)
	}
}

func TestValidateScenarioOverflowingWeights(t *testing.T) {
	s := validScenario()
	s.SocialStatus = scenario.SocialStatusMix{Single: math.MaxFloat64, Family: math.MaxFloat64}
	r := ValidateScenario(s)
	assertHasError(t, r, "social_status")
	if len(r.Warnings) != 0 {
		t.Errorf("overflow should be an error, not a warning: %v", r.Warnings)
	}
	if s.Params().Validate() == nil {
		t.Error("parameter validation should also reject the overflowing group")
	}
}

func TestValidateScenarioWeightErrorOrder(t *testing.T) {
	s := validScenario()
	s.Education = scenario.EducationMix{None: -1, Primary: math.NaN(), Secondary: -2, Higher: math.Inf(1)}
	want := []string{"education.none", "education.primary", "education.secondary", "education.higher", "education"}

	for range 20 {
		r := ValidateScenario(s)
		if len(r.Errors) != len(want) {
			t.Fatalf("expected %d errors, got %d: %v", len(want), len(r.Errors), r.Errors)
		}
		for i, p := range want {
			if r.Errors[i].Path != p {
				t.Fatalf("error %d path = %q, want %q", i, r.Errors[i].Path, p)
			}
		}
	}
}

func TestValidatePopulationLimit(t *testing.T) {
	s := validScenario()
	s.Population = 2_000_000_000

	r := ValidateScenario(s)
	ValidatePopulationLimit(r, s, 1_000_000)
	assertHasError(t, r, "population")

	r = ValidateScenario(s)
	ValidatePopulationLimit(r, s, 0)
	if !r.Valid {
		t.Errorf("a zero limit should disable the cap: %v", r.Errors)
	}

	s.Population = 1_000_000
	r = ValidateScenario(s)
	ValidatePopulationLimit(r, s, 1_000_000)
	if !r.Valid {
		t.Errorf("population at the limit should pass: %v", r.Errors)
	}
}

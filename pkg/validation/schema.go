package validation

import (
	"fmt"
	"math"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/scenario"
)

// ValidateScenario performs schema validation on a parsed Scenario.
// It reports every problem at once, before any sampling.
func ValidateScenario(s *scenario.Scenario) *Report {
	r := NewReport()

	validatePopulation(s, r)
	validateIncome(s, r)
	validateWeightGroup(r, "education", []weight{
		{"none", s.Education.None},
		{"primary", s.Education.Primary},
		{"secondary", s.Education.Secondary},
		{"higher", s.Education.Higher},
	})
	validateWeightGroup(r, "employment", []weight{
		{"employed", s.Employment.Employed},
		{"unemployed", s.Employment.Unemployed},
	})
	validateWeightGroup(r, "social_status", []weight{
		{"single", s.SocialStatus.Single},
		{"family", s.SocialStatus.Family},
	})
	validateRelativesAbroad(s, r)
	validateWorkers(s, r)

	return r
}

func validatePopulation(s *scenario.Scenario, r *Report) {
	if s.Population < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "population must be at least 1",
			Path:        "population",
			ActualValue: s.Population,
			Expected:    ">= 1",
		})
	}
}

// ValidatePopulationLimit reports an error when the scenario asks for more
// individuals than limit. A limit of zero or less disables the check.
func ValidatePopulationLimit(r *Report, s *scenario.Scenario, limit int) {
	if limit <= 0 || s.Population <= limit {
		return
	}
	r.AddError(Result{
		Level:       LevelSchema,
		Message:     fmt.Sprintf("population %d exceeds the configured maximum of %d", s.Population, limit),
		Path:        "population",
		ActualValue: s.Population,
		Expected:    fmt.Sprintf("<= %d", limit),
		Suggestions: []string{"Lower population or raise max_population"},
	})
}

func validateIncome(s *scenario.Scenario, r *Report) {
	if s.Income.Min < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "income.min must be non-negative",
			Path:        "income.min",
			ActualValue: s.Income.Min,
			Expected:    ">= 0",
		})
	}
	if s.Income.Max < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "income.max must be non-negative",
			Path:        "income.max",
			ActualValue: s.Income.Max,
			Expected:    ">= 0",
		})
	}
	if s.Income.Min > s.Income.Max {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("income.min (%d) must not exceed income.max (%d)", s.Income.Min, s.Income.Max),
			Path:         "income.min",
			ActualValue:  s.Income.Min,
			Expected:     fmt.Sprintf("<= %d", s.Income.Max),
			ConflictWith: "income.max",
			Suggestions:  []string{"Swap the bounds or raise income.max"},
		})
	}
}

// weight is one named entry of a weight group, kept in scenario file order.
type weight struct {
	name  string
	value float64
}

// validateWeightGroup checks one group of relative sampling weights.
// Weights need not sum to 1, but a mix that does not is flagged.
func validateWeightGroup(r *Report, group string, weights []weight) {
	sum := 0.0
	for _, w := range weights {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) || w.value < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.%s must be a finite non-negative weight", group, w.name),
				Path:        fmt.Sprintf("%s.%s", group, w.name),
				ActualValue: w.value,
				Expected:    ">= 0",
			})
			continue
		}
		sum += w.value
	}

	if math.IsInf(sum, 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s weights overflow when summed", group),
			Path:        group,
			Expected:    "a finite sum",
			Suggestions: []string{fmt.Sprintf("Scale %s weights down, e.g. to proportions summing to 1.0", group)},
		})
		return
	}
	if sum <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s weights must not all be zero", group),
			Path:        group,
			ActualValue: sum,
			Expected:    "> 0",
		})
		return
	}
	if math.Abs(sum-1.0) > 0.01 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s weights sum to %.4f; they are used as relative weights", group, sum),
			Path:        group,
			ActualValue: sum,
			Expected:    "1.0 (±0.01)",
			Suggestions: []string{fmt.Sprintf("Normalize %s weights so they sum to 1.0", group)},
		})
	}
}

func validateRelativesAbroad(s *scenario.Scenario, r *Report) {
	p := s.RelativesAbroad
	if math.IsNaN(p) || p < 0 || p > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("relatives_abroad %.4f is outside [0, 1]", p),
			Path:        "relatives_abroad",
			ActualValue: p,
			Expected:    "0-1",
		})
	}
}

func validateWorkers(s *scenario.Scenario, r *Report) {
	if s.Workers < 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "workers is negative; generation runs on a single goroutine",
			Path:        "workers",
			ActualValue: s.Workers,
			Expected:    ">= 0",
		})
	}
}

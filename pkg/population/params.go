package population

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidParameter is returned when generation parameters violate a
// precondition. No individuals are sampled when it is returned.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes which parameter was rejected and why.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// Params holds the caller-supplied inputs of a generation run.
type Params struct {
	N                   int       `json:"n"`
	EducationWeights    []float64 `json:"education_weights"`
	EmploymentWeights   []float64 `json:"employment_weights"`
	IncomeMin           int       `json:"income_min"`
	IncomeMax           int       `json:"income_max"`
	SocialStatusWeights []float64 `json:"social_status_weights"`
	RelativesAbroadProb float64   `json:"relatives_abroad_prob"`
}

// DefaultParams returns the baseline scenario for Venezuelan migrants in
// Colombia.
func DefaultParams() Params {
	return Params{
		N:                   10000,
		EducationWeights:    []float64{0.03, 0.26, 0.53, 0.18},
		EmploymentWeights:   []float64{0.5, 0.5},
		IncomeMin:           300,
		IncomeMax:           650,
		SocialStatusWeights: []float64{0.51, 0.49},
		RelativesAbroadProb: 0.18,
	}
}

// Validate checks every precondition of Generate and returns the first
// violation as a *ParameterError.
func (p Params) Validate() error {
	if p.N < 1 {
		return &ParameterError{Field: "n", Value: p.N, Reason: "must be at least 1"}
	}
	if p.IncomeMin > p.IncomeMax {
		return &ParameterError{
			Field:  "income_min",
			Value:  p.IncomeMin,
			Reason: fmt.Sprintf("must not exceed income_max (%d)", p.IncomeMax),
		}
	}
	if err := validateWeights("education_weights", p.EducationWeights, len(EducationLevels)); err != nil {
		return err
	}
	if err := validateWeights("employment_weights", p.EmploymentWeights, len(EmploymentStates)); err != nil {
		return err
	}
	if err := validateWeights("social_status_weights", p.SocialStatusWeights, len(SocialStatuses)); err != nil {
		return err
	}
	if math.IsNaN(p.RelativesAbroadProb) || p.RelativesAbroadProb < 0 || p.RelativesAbroadProb > 1 {
		return &ParameterError{Field: "relatives_abroad_prob", Value: p.RelativesAbroadProb, Reason: "must be within [0, 1]"}
	}
	return nil
}

func validateWeights(field string, w []float64, arity int) error {
	if len(w) != arity {
		return &ParameterError{
			Field:  field,
			Value:  len(w),
			Reason: fmt.Sprintf("expected %d weights", arity),
		}
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &ParameterError{
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Value:  v,
				Reason: "must be a finite non-negative number",
			}
		}
	}
	sum := floats.Sum(w)
	if math.IsInf(sum, 0) {
		return &ParameterError{Field: field, Value: w, Reason: "weights must have a finite sum"}
	}
	if sum <= 0 {
		return &ParameterError{Field: field, Value: w, Reason: "weights must not all be zero"}
	}
	return nil
}

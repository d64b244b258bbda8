package scenario

import "github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"

// Scenario is a named parameter set for one what-if run.
type Scenario struct {
	ScenarioVersion string `yaml:"scenario_version" json:"scenario_version"`
	Name            string `yaml:"name" json:"name"`
	Description     string `yaml:"description" json:"description"`

	Population      int             `yaml:"population" json:"population"`
	Income          IncomeRange     `yaml:"income" json:"income"`
	Education       EducationMix    `yaml:"education" json:"education"`
	Employment      EmploymentMix   `yaml:"employment" json:"employment"`
	SocialStatus    SocialStatusMix `yaml:"social_status" json:"social_status"`
	RelativesAbroad float64         `yaml:"relatives_abroad" json:"relatives_abroad"`

	// Seed makes a run reproducible. Nil means unseeded.
	Seed    *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Workers int     `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// IncomeRange is an inclusive monthly income range in US dollars.
type IncomeRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// EducationMix holds relative sampling weights per education level.
type EducationMix struct {
	None      float64 `yaml:"none" json:"none"`
	Primary   float64 `yaml:"primary" json:"primary"`
	Secondary float64 `yaml:"secondary" json:"secondary"`
	Higher    float64 `yaml:"higher" json:"higher"`
}

// Weights returns the mix in sampling order.
func (m EducationMix) Weights() []float64 {
	return []float64{m.None, m.Primary, m.Secondary, m.Higher}
}

type EmploymentMix struct {
	Employed   float64 `yaml:"employed" json:"employed"`
	Unemployed float64 `yaml:"unemployed" json:"unemployed"`
}

func (m EmploymentMix) Weights() []float64 {
	return []float64{m.Employed, m.Unemployed}
}

type SocialStatusMix struct {
	Single float64 `yaml:"single" json:"single"`
	Family float64 `yaml:"family" json:"family"`
}

func (m SocialStatusMix) Weights() []float64 {
	return []float64{m.Single, m.Family}
}

// Params converts the scenario into generation parameters.
func (s *Scenario) Params() population.Params {
	return population.Params{
		N:                   s.Population,
		EducationWeights:    s.Education.Weights(),
		EmploymentWeights:   s.Employment.Weights(),
		IncomeMin:           s.Income.Min,
		IncomeMax:           s.Income.Max,
		SocialStatusWeights: s.SocialStatus.Weights(),
		RelativesAbroadProb: s.RelativesAbroad,
	}
}

// Source returns the random source the scenario asks for.
func (s *Scenario) Source() population.Source {
	if s.Seed != nil {
		return population.NewSource(*s.Seed)
	}
	return population.NewRandomSource()
}

package analytics

import (
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/resources"
)

// Result is the immutable snapshot of one run handed to renderers.
type Result struct {
	Scenario   string            `json:"scenario,omitempty"`
	Seed       *uint64           `json:"seed,omitempty"`
	Parameters population.Params `json:"parameters"`
	Summary    Summary           `json:"summary"`
	Resources  resources.Totals  `json:"resources"`
}

// Summary describes a generated population.
type Summary struct {
	Population int                       `json:"population"`
	Counts     population.CategoryCounts `json:"counts"`
	Shares     []CategoryShare           `json:"shares"`
	Income     IncomeStats               `json:"income"`
	Attributes AttributeBreakdown        `json:"attributes"`
}

// CategoryShare is one accommodation category's count and percentage.
type CategoryShare struct {
	Category population.Accommodation `json:"category"`
	Count    int                      `json:"count"`
	Percent  float64                  `json:"percent"`
}

// IncomeStats holds sampled income statistics in US dollars.
type IncomeStats struct {
	Mean float64 `json:"mean"`
	Min  int     `json:"min"`
	Max  int     `json:"max"`
}

// AttributeCount is the count of one attribute value.
type AttributeCount struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// AttributeBreakdown tallies the demographic attributes that the
// classification rule does not consult.
type AttributeBreakdown struct {
	AgeBracket      []AttributeCount `json:"age_bracket"`
	Gender          []AttributeCount `json:"gender"`
	Education       []AttributeCount `json:"education"`
	Employment      []AttributeCount `json:"employment"`
	SocialStatus    []AttributeCount `json:"social_status"`
	RelativesAbroad []AttributeCount `json:"relatives_abroad"`
}

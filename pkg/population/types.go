package population

// AgeBracket is the sampled age group of an individual.
type AgeBracket string

const (
	Age15to24 AgeBracket = "15-24"
	Age25to34 AgeBracket = "25-34"
	Age35to44 AgeBracket = "35-44"
	Age45to54 AgeBracket = "45-54"
	Age55Plus AgeBracket = "55+"
)

// Gender is the sampled gender of an individual.
type Gender string

const (
	Female Gender = "Female"
	Male   Gender = "Male"
)

// Education is the highest completed education level.
type Education string

const (
	NoEducation Education = "No education"
	Primary     Education = "Primary"
	Secondary   Education = "Secondary"
	Higher      Education = "Higher"
)

// Employment is the sampled employment status.
type Employment string

const (
	Employed   Employment = "Employed"
	Unemployed Employment = "Unemployed"
)

// SocialStatus distinguishes people migrating alone from households.
type SocialStatus string

const (
	Single SocialStatus = "Single"
	Family SocialStatus = "Family"
)

// RelativesAbroad records whether the individual has relatives abroad.
type RelativesAbroad string

const (
	RelativesYes RelativesAbroad = "Yes"
	RelativesNo  RelativesAbroad = "No"
)

// Accommodation is the housing category an individual is classified into.
type Accommodation string

const (
	LuxuryApartment   Accommodation = "Luxury Apartment"
	House             Accommodation = "House"
	StandardApartment Accommodation = "Standard Apartment"
	SharedHousing     Accommodation = "Shared Housing"
	PublicHousing     Accommodation = "Public Housing"
	Undefined         Accommodation = "Undefined"
)

// Categories lists every accommodation category in chart order.
var Categories = []Accommodation{
	LuxuryApartment,
	StandardApartment,
	SharedHousing,
	House,
	PublicHousing,
	Undefined,
}

// Sampling tables. Age and gender weights are fixed; the other groups take
// caller-supplied weights in the order listed here.
var (
	AgeBrackets      = []AgeBracket{Age15to24, Age25to34, Age35to44, Age45to54, Age55Plus}
	AgeWeights       = []float64{0.48, 0.333, 0.194, 0.099, 0.087}
	Genders          = []Gender{Female, Male}
	GenderWeights    = []float64{0.496, 0.504}
	EducationLevels  = []Education{NoEducation, Primary, Secondary, Higher}
	EmploymentStates = []Employment{Employed, Unemployed}
	SocialStatuses   = []SocialStatus{Single, Family}
)

// Individual is one synthetic migrant. It is a value type; copies never
// share state with the population they came from.
type Individual struct {
	AgeBracket      AgeBracket      `json:"age_bracket"`
	Gender          Gender          `json:"gender"`
	Education       Education       `json:"education"`
	Employment      Employment      `json:"employment"`
	Income          int             `json:"income"`
	SocialStatus    SocialStatus    `json:"social_status"`
	RelativesAbroad RelativesAbroad `json:"relatives_abroad"`
	Accommodation   Accommodation   `json:"accommodation"`
}

// CategoryCounts maps each accommodation category to the number of
// individuals classified into it.
type CategoryCounts map[Accommodation]int

// NewCategoryCounts returns counts with every category present at zero.
func NewCategoryCounts() CategoryCounts {
	c := make(CategoryCounts, len(Categories))
	for _, cat := range Categories {
		c[cat] = 0
	}
	return c
}

// Total returns the sum of all category counts.
func (c CategoryCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// merge adds other into c.
func (c CategoryCounts) merge(other CategoryCounts) {
	for cat, n := range other {
		c[cat] += n
	}
}

// CategoryCount is one row of an ordered count listing.
type CategoryCount struct {
	Category Accommodation `json:"category"`
	Count    int           `json:"count"`
}

// Ordered returns the counts in chart order.
func (c CategoryCounts) Ordered() []CategoryCount {
	rows := make([]CategoryCount, 0, len(Categories))
	for _, cat := range Categories {
		rows = append(rows, CategoryCount{Category: cat, Count: c[cat]})
	}
	return rows
}

// Population is the output of one generation run.
type Population struct {
	Individuals []Individual   `json:"individuals"`
	Counts      CategoryCounts `json:"counts"`
}

// Size returns the number of generated individuals.
func (p *Population) Size() int {
	return len(p.Individuals)
}

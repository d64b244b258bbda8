package population

// Income thresholds of the classification rule.
const (
	HighIncomeThreshold = 650 // strictly above: luxury apartment or house
	LowIncomeThreshold  = 300 // strictly below: shared or public housing
)

// TieBreak chooses uniformly between two accommodation options. It is the
// only random draw of the classification rule, so tests can replace it with
// a deterministic double.
type TieBreak func(src Source, a, b Accommodation) Accommodation

// UniformTieBreak picks a or b with equal probability.
func UniformTieBreak(src Source, a, b Accommodation) Accommodation {
	if src.IntN(2) == 0 {
		return a
	}
	return b
}

// Classify maps income and social status to an accommodation category.
// Branches are evaluated in order and the first match wins. The fourth and
// sixth branches cannot be reached with the current thresholds; they stay so
// the rule remains total if the thresholds stop being contiguous.
func Classify(income int, status SocialStatus, src Source, tb TieBreak) Accommodation {
	switch {
	case income > HighIncomeThreshold:
		return tb(src, LuxuryApartment, House)
	case income >= LowIncomeThreshold && income <= HighIncomeThreshold:
		return StandardApartment
	case income < LowIncomeThreshold && status == Single:
		return tb(src, SharedHousing, PublicHousing)
	case status == Family && income >= LowIncomeThreshold:
		return House
	case income < LowIncomeThreshold && status == Family:
		return PublicHousing
	default:
		return Undefined
	}
}

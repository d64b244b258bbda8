package analytics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
)

// Summarize computes category shares, income statistics, and attribute
// breakdowns for a population.
func Summarize(pop *population.Population) Summary {
	n := pop.Size()
	s := Summary{
		Population: n,
		Counts:     population.NewCategoryCounts(),
	}
	for cat, c := range pop.Counts {
		s.Counts[cat] = c
	}

	s.Shares = make([]CategoryShare, 0, len(population.Categories))
	for _, row := range s.Counts.Ordered() {
		s.Shares = append(s.Shares, CategoryShare{
			Category: row.Category,
			Count:    row.Count,
			Percent:  percent(row.Count, n),
		})
	}

	s.Income = incomeStats(pop.Individuals)
	s.Attributes = breakdown(pop.Individuals)
	return s
}

func incomeStats(people []population.Individual) IncomeStats {
	if len(people) == 0 {
		return IncomeStats{}
	}
	incomes := make([]float64, len(people))
	for i, p := range people {
		incomes[i] = float64(p.Income)
	}
	return IncomeStats{
		Mean: stat.Mean(incomes, nil),
		Min:  int(floats.Min(incomes)),
		Max:  int(floats.Max(incomes)),
	}
}

// breakdown tallies each attribute in sampling order.
func breakdown(people []population.Individual) AttributeBreakdown {
	age := make(map[string]int)
	gender := make(map[string]int)
	edu := make(map[string]int)
	emp := make(map[string]int)
	status := make(map[string]int)
	rel := make(map[string]int)
	for _, p := range people {
		age[string(p.AgeBracket)]++
		gender[string(p.Gender)]++
		edu[string(p.Education)]++
		emp[string(p.Employment)]++
		status[string(p.SocialStatus)]++
		rel[string(p.RelativesAbroad)]++
	}

	n := len(people)
	return AttributeBreakdown{
		AgeBracket:      tally(labels(population.AgeBrackets), age, n),
		Gender:          tally(labels(population.Genders), gender, n),
		Education:       tally(labels(population.EducationLevels), edu, n),
		Employment:      tally(labels(population.EmploymentStates), emp, n),
		SocialStatus:    tally(labels(population.SocialStatuses), status, n),
		RelativesAbroad: tally([]string{string(population.RelativesYes), string(population.RelativesNo)}, rel, n),
	}
}

func labels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func tally(order []string, counts map[string]int, n int) []AttributeCount {
	out := make([]AttributeCount, 0, len(order))
	for _, v := range order {
		ratio := 0.0
		if n > 0 {
			ratio = float64(counts[v]) / float64(n)
		}
		out = append(out, AttributeCount{Value: v, Count: counts[v], Ratio: ratio})
	}
	return out
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}

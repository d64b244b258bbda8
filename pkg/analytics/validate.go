package analytics

import (
	"fmt"
	"strings"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

// validateAnalytical runs post-generation checks on a result.
func validateAnalytical(r *Result, report *validation.Report) {
	validateCountsSum(r, report)
	validateUndefined(r, report)
	validateIncomeBands(r.Parameters, report)
}

func validateCountsSum(r *Result, report *validation.Report) {
	total := r.Summary.Counts.Total()
	if total != r.Parameters.N {
		report.AddError(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("accommodation counts sum to %d but %d individuals were requested", total, r.Parameters.N),
			Path:        "population",
			ActualValue: total,
			Expected:    fmt.Sprintf("%d", r.Parameters.N),
		})
	}
}

func validateUndefined(r *Result, report *validation.Report) {
	if n := r.Summary.Counts[population.Undefined]; n > 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("%d individuals matched no accommodation rule", n),
			Path:        "population",
			ActualValue: n,
			Expected:    "0",
		})
	}
}

// validateIncomeBands notes which classification bands the income range
// can reach.
func validateIncomeBands(p population.Params, report *validation.Report) {
	var bands []string
	if p.IncomeMin < population.LowIncomeThreshold {
		bands = append(bands, "shared/public housing (< 300)")
	}
	if p.IncomeMin <= population.HighIncomeThreshold && p.IncomeMax >= population.LowIncomeThreshold {
		bands = append(bands, "standard apartment (300-650)")
	}
	if p.IncomeMax > population.HighIncomeThreshold {
		bands = append(bands, "luxury apartment/house (> 650)")
	}

	report.AddInfo(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("income range %d-%d reaches %s", p.IncomeMin, p.IncomeMax, strings.Join(bands, ", ")),
		Path:        "income",
		ActualValue: fmt.Sprintf("%d-%d", p.IncomeMin, p.IncomeMax),
	})
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/store"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/resources"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

// barWidth is the length of the longest bar in a chart.
const barWidth = 40

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			if wr.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", wr.Path, wr.ActualValue)
			}
			if wr.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", wr.Expected)
			}
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

// chartRow is one labelled bar.
type chartRow struct {
	label string
	value float64
	text  string
}

func printResult(w io.Writer, r *analytics.Result) {
	if r.Scenario != "" {
		fmt.Fprintf(w, "Scenario: %s\n", r.Scenario)
	}
	if r.Seed != nil {
		fmt.Fprintf(w, "Seed: %d\n", *r.Seed)
	}
	fmt.Fprintln(w)

	printAccommodationChart(w, r.Summary.Population, r.Summary.Counts)
	fmt.Fprintln(w)

	table := resources.DefaultTable()
	printResourceChart(w, "Water (liters)", table, r.Resources.Water)
	fmt.Fprintln(w)
	printResourceChart(w, "Electricity (kWh)", table, r.Resources.Electricity)
	fmt.Fprintln(w)
	printResourceChart(w, "Land (sqkm)", table, r.Resources.Land)
	fmt.Fprintln(w)

	printTotals(w, r.Resources)
	fmt.Fprintln(w)

	income := r.Summary.Income
	fmt.Fprintf(w, "Income: mean $%.2f, min $%d, max $%d\n", income.Mean, income.Min, income.Max)
}

func printAccommodationChart(w io.Writer, n int, counts population.CategoryCounts) {
	fmt.Fprintf(w, "Accommodation Choices of %d People\n", n)
	rows := make([]chartRow, 0, len(population.Categories))
	for _, c := range counts.Ordered() {
		rows = append(rows, chartRow{
			label: string(c.Category),
			value: float64(c.Count),
			text:  fmt.Sprintf("%d", c.Count),
		})
	}
	printChart(w, rows)
}

func printResourceChart(w io.Writer, resource string, table resources.Table, amounts resources.ByCategory) {
	fmt.Fprintf(w, "%s Usage by Accommodation Type\n", resource)
	rows := make([]chartRow, 0, len(table))
	for _, cat := range table.Categories() {
		v := amounts[cat]
		rows = append(rows, chartRow{
			label: string(cat),
			value: v,
			text:  fmt.Sprintf("%.2f", v),
		})
	}
	printChart(w, rows)
}

func printChart(w io.Writer, rows []chartRow) {
	peak := 0.0
	labelWidth := 0
	for _, r := range rows {
		peak = max(peak, r.value)
		labelWidth = max(labelWidth, len(r.label))
	}
	for _, r := range rows {
		n := 0
		if peak > 0 {
			n = int(r.value / peak * barWidth)
		}
		fmt.Fprintf(w, "  %-*s |%-*s %s\n", labelWidth, r.label, barWidth, strings.Repeat("#", n), r.text)
	}
}

func printTotals(w io.Writer, t resources.Totals) {
	fmt.Fprintf(w, "Total Water Usage: %.2f liters per day\n", t.TotalWater)
	fmt.Fprintf(w, "Total Electricity Usage: %.2f kWh per day\n", t.TotalElectricity)
	fmt.Fprintf(w, "Total Land Required: %.2f sqkm\n", t.TotalLand)
}

func printHistory(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return
	}

	fmt.Fprintf(w, "%-36s %-20s %-20s %10s %14s %14s %12s\n",
		"ID", "Created", "Scenario", "Population", "Water (L)", "Power (kWh)", "Land (sqkm)")
	for _, r := range runs {
		name := r.Scenario
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%-36s %-20s %-20s %10d %14.2f %14.2f %12.2f\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), name,
			r.Parameters.N, r.TotalWater, r.TotalElectricity, r.TotalLand)
	}
}

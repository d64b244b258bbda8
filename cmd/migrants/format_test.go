package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/store"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/scenario"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

func standardBandResult(t *testing.T) *analytics.Result {
	t.Helper()
	sc := scenario.Default()
	sc.Population = 1000
	seed := uint64(11)
	sc.Seed = &seed
	result, _, err := analytics.RunScenario(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, standardBandResult(t))
	out := buf.String()

	for _, want := range []string{
		"Accommodation Choices of 1000 People",
		"Water (liters) Usage by Accommodation Type",
		"Electricity (kWh) Usage by Accommodation Type",
		"Land (sqkm) Usage by Accommodation Type",
		"Total Water Usage: 130000.00 liters per day",
		"Total Electricity Usage: 1540.00 kWh per day",
		"Total Land Required: 46000.00 sqkm",
		"Seed: 11",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAccommodationChartOrder(t *testing.T) {
	var buf bytes.Buffer
	printAccommodationChart(&buf, 1000, standardBandResult(t).Summary.Counts)
	out := buf.String()

	order := []string{"Luxury Apartment", "Standard Apartment", "Shared Housing", "House", "Public Housing", "Undefined"}
	last := -1
	for _, label := range order {
		i := strings.Index(out, label)
		if i < 0 {
			t.Fatalf("chart missing %q", label)
		}
		if i < last {
			t.Errorf("%q out of chart order", label)
		}
		last = i
	}
}

func TestPrintValidationReport(t *testing.T) {
	report := validation.NewReport()
	report.AddError(validation.Result{
		Level:       validation.LevelSchema,
		Message:     "income min exceeds max",
		Path:        "income.min",
		ActualValue: 900,
	})

	var buf bytes.Buffer
	printValidationReport(&buf, report)
	out := buf.String()
	if !strings.Contains(out, "ERRORS (1):") || !strings.Contains(out, "-> income.min = 900") {
		t.Errorf("unexpected report output:\n%s", out)
	}
	if !strings.Contains(out, "Result: INVALID") {
		t.Error("expected INVALID result line")
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	if !strings.Contains(buf.String(), "No recorded runs.") {
		t.Errorf("empty history output = %q", buf.String())
	}

	buf.Reset()
	run := store.FromResult(standardBandResult(t), time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	run.ID = uuid.MustParse("6f1c2a3b-0000-4000-8000-000000000001")
	printHistory(&buf, []store.Run{run})
	out := buf.String()
	if !strings.Contains(out, "6f1c2a3b-0000-4000-8000-000000000001") || !strings.Contains(out, "2025-03-01 12:00:00") {
		t.Errorf("history row missing fields:\n%s", out)
	}
}

func TestRunDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := runDefaults(&buf); err != nil {
		t.Fatal(err)
	}
	sc, err := scenario.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("defaults do not parse: %v", err)
	}
	if sc.Population != 10000 {
		t.Errorf("population = %d, want 10000", sc.Population)
	}
}

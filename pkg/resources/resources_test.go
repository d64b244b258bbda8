package resources

import (
	"math"
	"reflect"
	"testing"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
)

func populationOf(counts map[population.Accommodation]int) *population.Population {
	pop := &population.Population{Counts: population.NewCategoryCounts()}
	for _, cat := range population.Categories {
		for range counts[cat] {
			pop.Individuals = append(pop.Individuals, population.Individual{Accommodation: cat})
			pop.Counts[cat]++
		}
	}
	return pop
}

func TestDefaultTableCoversEveryCategory(t *testing.T) {
	table := DefaultTable()
	if len(table) != len(population.Categories) {
		t.Fatalf("table has %d rows, want %d", len(table), len(population.Categories))
	}
	for _, cat := range population.Categories {
		if _, ok := table.Lookup(cat); !ok {
			t.Errorf("missing row for %q", cat)
		}
	}
	undef, _ := table.Lookup(population.Undefined)
	if undef != (Intensity{}) {
		t.Errorf("undefined intensity = %+v, want zero", undef)
	}
	lux, _ := table.Lookup(population.LuxuryApartment)
	if lux.Water != 130 || lux.Electricity != 1.54 || lux.Land != 65 {
		t.Errorf("luxury intensity = %+v", lux)
	}
}

func TestAggregateStandardApartmentScenario(t *testing.T) {
	pop := populationOf(map[population.Accommodation]int{population.StandardApartment: 1000})
	totals := Aggregate(pop)

	if totals.TotalWater != 130000 {
		t.Errorf("total water = %v, want 130000", totals.TotalWater)
	}
	if totals.TotalElectricity != 1540 {
		t.Errorf("total electricity = %v, want 1540", totals.TotalElectricity)
	}
	if totals.TotalLand != 46000 {
		t.Errorf("total land = %v, want 46000", totals.TotalLand)
	}
	for _, cat := range population.Categories {
		if cat == population.StandardApartment {
			continue
		}
		if totals.Water[cat] != 0 || totals.Electricity[cat] != 0 || totals.Land[cat] != 0 {
			t.Errorf("%s should be zero, got %v/%v/%v", cat, totals.Water[cat], totals.Electricity[cat], totals.Land[cat])
		}
	}
}

func TestAggregateMatchesCountTimesIntensity(t *testing.T) {
	counts := map[population.Accommodation]int{
		population.LuxuryApartment:   12,
		population.House:             9,
		population.StandardApartment: 40,
		population.SharedHousing:     7,
		population.PublicHousing:     31,
	}
	pop := populationOf(counts)
	totals := Aggregate(pop)
	table := DefaultTable()

	var wantWater, wantElec, wantLand float64
	for _, r := range table {
		n := float64(counts[r.Category])
		if totals.Water[r.Category] != n*r.Intensity.Water {
			t.Errorf("%s water = %v, want %v", r.Category, totals.Water[r.Category], n*r.Intensity.Water)
		}
		if totals.Electricity[r.Category] != n*r.Intensity.Electricity {
			t.Errorf("%s electricity = %v, want %v", r.Category, totals.Electricity[r.Category], n*r.Intensity.Electricity)
		}
		if totals.Land[r.Category] != n*r.Intensity.Land {
			t.Errorf("%s land = %v, want %v", r.Category, totals.Land[r.Category], n*r.Intensity.Land)
		}
		wantWater += n * r.Intensity.Water
		wantElec += n * r.Intensity.Electricity
		wantLand += n * r.Intensity.Land
	}

	if math.Abs(totals.TotalWater-wantWater) > 1e-9 {
		t.Errorf("total water = %v, want %v", totals.TotalWater, wantWater)
	}
	if math.Abs(totals.TotalElectricity-wantElec) > 1e-9 {
		t.Errorf("total electricity = %v, want %v", totals.TotalElectricity, wantElec)
	}
	if math.Abs(totals.TotalLand-wantLand) > 1e-9 {
		t.Errorf("total land = %v, want %v", totals.TotalLand, wantLand)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	pop, err := population.NewGenerator(population.NewSource(8)).Generate(population.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	before := len(pop.Individuals)

	first := Aggregate(pop)
	second := Aggregate(pop)
	if !reflect.DeepEqual(first, second) {
		t.Error("aggregating the same population twice gave different totals")
	}
	if len(pop.Individuals) != before {
		t.Error("aggregation modified the population")
	}
}

func TestAggregateIgnoresOrdering(t *testing.T) {
	pop := populationOf(map[population.Accommodation]int{
		population.House:         3,
		population.SharedHousing: 5,
	})
	reversed := &population.Population{Counts: pop.Counts}
	for i := len(pop.Individuals) - 1; i >= 0; i-- {
		reversed.Individuals = append(reversed.Individuals, pop.Individuals[i])
	}
	if !reflect.DeepEqual(Aggregate(pop), Aggregate(reversed)) {
		t.Error("totals depend on individual ordering")
	}
}

func TestAggregateCountsEqualsAggregate(t *testing.T) {
	pop, err := population.NewGenerator(population.NewSource(21)).Generate(population.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Aggregate(pop), DefaultTable().AggregateCounts(pop.Counts)) {
		t.Error("aggregating individuals and aggregating counts disagree")
	}
}

func TestAggregateForcedHouseTieBreak(t *testing.T) {
	house := func(_ population.Source, _, b population.Accommodation) population.Accommodation { return b }
	p := population.DefaultParams()
	p.N = 200
	p.IncomeMin, p.IncomeMax = 700, 900

	pop, err := population.NewGenerator(population.NewSource(2), population.WithTieBreak(house)).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	totals := Aggregate(pop)
	if totals.TotalLand != 200*LandHouse {
		t.Errorf("total land = %v, want %v", totals.TotalLand, 200*LandHouse)
	}
	if totals.Land[population.LuxuryApartment] != 0 {
		t.Errorf("luxury land = %v, want 0", totals.Land[population.LuxuryApartment])
	}
}

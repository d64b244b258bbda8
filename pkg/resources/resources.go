package resources

import (
	"gonum.org/v1/gonum/floats"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
)

// Intensity is the per-person daily demand of one accommodation category.
type Intensity struct {
	Water       float64 `json:"water_liters"`
	Electricity float64 `json:"electricity_kwh"`
	Land        float64 `json:"land_sqkm"`
}

// Row pairs a category with its intensity.
type Row struct {
	Category  population.Accommodation `json:"category"`
	Intensity Intensity                `json:"intensity"`
}

// Table is an ordered resource-intensity table.
type Table []Row

// DefaultTable returns the fixed intensity table. Undefined consumes nothing.
func DefaultTable() Table {
	return Table{
		{population.LuxuryApartment, Intensity{WaterLitersPerDay, ElectricityKWhPerDay, LandLuxuryApartment}},
		{population.House, Intensity{WaterLitersPerDay, ElectricityKWhPerDay, LandHouse}},
		{population.StandardApartment, Intensity{WaterLitersPerDay, ElectricityKWhPerDay, LandStandardApartment}},
		{population.SharedHousing, Intensity{WaterLitersPerDay, ElectricityKWhPerDay, LandSharedHousing}},
		{population.PublicHousing, Intensity{WaterLitersPerDay, ElectricityKWhPerDay, LandPublicHousing}},
		{population.Undefined, Intensity{}},
	}
}

// Lookup returns the intensity for a category.
func (t Table) Lookup(cat population.Accommodation) (Intensity, bool) {
	for _, r := range t {
		if r.Category == cat {
			return r.Intensity, true
		}
	}
	return Intensity{}, false
}

// Categories returns the table's categories in row order.
func (t Table) Categories() []population.Accommodation {
	cats := make([]population.Accommodation, len(t))
	for i, r := range t {
		cats[i] = r.Category
	}
	return cats
}

// ByCategory maps each category to an accumulated amount.
type ByCategory map[population.Accommodation]float64

// Totals is the resource demand implied by a population.
type Totals struct {
	Water       ByCategory `json:"water"`
	Electricity ByCategory `json:"electricity"`
	Land        ByCategory `json:"land"`

	TotalWater       float64 `json:"total_water_liters_per_day"`
	TotalElectricity float64 `json:"total_electricity_kwh_per_day"`
	TotalLand        float64 `json:"total_land_sqkm"`
}

// Aggregate computes resource totals for a population using the default table.
func Aggregate(pop *population.Population) Totals {
	return DefaultTable().Aggregate(pop)
}

// Aggregate tallies the population's individuals by category and applies
// the table. It does not read or modify pop.Counts.
func (t Table) Aggregate(pop *population.Population) Totals {
	counts := population.NewCategoryCounts()
	for _, ind := range pop.Individuals {
		counts[ind.Accommodation]++
	}
	return t.AggregateCounts(counts)
}

// AggregateCounts multiplies each category count by its intensity.
// Categories missing from counts contribute zero.
func (t Table) AggregateCounts(counts population.CategoryCounts) Totals {
	totals := Totals{
		Water:       make(ByCategory, len(t)),
		Electricity: make(ByCategory, len(t)),
		Land:        make(ByCategory, len(t)),
	}

	water := make([]float64, len(t))
	elec := make([]float64, len(t))
	land := make([]float64, len(t))
	for i, r := range t {
		n := float64(counts[r.Category])
		water[i] = n * r.Intensity.Water
		elec[i] = n * r.Intensity.Electricity
		land[i] = n * r.Intensity.Land

		totals.Water[r.Category] = water[i]
		totals.Electricity[r.Category] = elec[i]
		totals.Land[r.Category] = land[i]
	}

	totals.TotalWater = floats.Sum(water)
	totals.TotalElectricity = floats.Sum(elec)
	totals.TotalLand = floats.Sum(land)
	return totals
}

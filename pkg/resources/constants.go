package resources

// Daily per-person resource intensity by accommodation type.
// Water and electricity do not vary by housing; land does.
const (
	WaterLitersPerDay    = 130.0 // L/person/day, every occupied category
	ElectricityKWhPerDay = 1.54  // kWh/person/day, every occupied category

	LandLuxuryApartment   = 65.0 // sqkm
	LandHouse             = 55.0
	LandStandardApartment = 46.0
	LandSharedHousing     = 37.0
	LandPublicHousing     = 28.0
)

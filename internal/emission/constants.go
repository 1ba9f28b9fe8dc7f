package emission

// Emission factors in kg CO2 per km travelled.
const (
	// FactorBicycle is exactly zero. Ranking relies on it as the ideal mode.
	FactorBicycle = 0.0

	// FactorCar is roughly 120 g CO2 per km for an average passenger car.
	FactorCar = 0.12

	// FactorBus is roughly 89 g CO2 per km per passenger.
	FactorBus = 0.089

	// FactorTruck is roughly 960 g CO2 per km for a loaded truck.
	FactorTruck = 0.96
)

// Carbon credit economics.
const (
	// KgPerCredit is the mass of CO2 represented by one carbon credit.
	KgPerCredit = 1000.0

	// PriceMinBRL is the lower bound of the credit price band.
	PriceMinBRL = 50.0

	// PriceMaxBRL is the upper bound of the credit price band.
	PriceMaxBRL = 150.0

	// DefaultCurrency is the ISO 4217 code of the price band.
	DefaultCurrency = "BRL"
)

// Package calculator turns a trip distance and transport mode into an
// emission, ranks all modes for the same distance, and prices the emission
// in carbon credits.
//
// Every function is pure: identical inputs and model constants always produce
// identical outputs, and nothing is cached between calls.
package calculator

import (
	"fmt"
	"math"
	"sort"

	"github.com/rshade/carbonroute/internal/emission"
)

// percentScale converts a ratio into a percentage.
const percentScale = 100

// ModeEmission is one entry of the all-modes ranking.
type ModeEmission struct {
	Mode       emission.Mode `json:"mode"`
	EmissionKg float64       `json:"emissionKg"`

	// PercentVsCar is EmissionKg relative to the baseline mode, in percent.
	PercentVsCar float64 `json:"percentVsCar"`
}

// Savings compares an emission against a baseline emission.
type Savings struct {
	// SavedKg is baseline minus actual. It is negative when the actual
	// emission exceeds the baseline.
	SavedKg    float64 `json:"savedKg"`
	Percentage float64 `json:"percentage"`
}

// PriceEstimate is the cost range of offsetting a credit quantity.
type PriceEstimate struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Average  float64 `json:"average"`
	Currency string  `json:"currency"`
}

// Calculator computes emissions over an immutable emission.Model.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	model *emission.Model
}

// New returns a Calculator over model. A nil model selects emission.Default().
func New(model *emission.Model) *Calculator {
	if model == nil {
		model = emission.Default()
	}
	return &Calculator{model: model}
}

// Model returns the emission model the calculator uses.
func (c *Calculator) Model() *emission.Model {
	return c.model
}

// EmissionFor returns distanceKm * factor(mode) in kg CO2, rounded to two
// decimals. It returns ErrInvalidDistance for non-positive or non-finite
// distances and emission.ErrUnknownMode for modes outside the model.
func (c *Calculator) EmissionFor(distanceKm float64, mode emission.Mode) (float64, error) {
	if err := validateDistance(distanceKm); err != nil {
		return 0, err
	}
	factor, err := c.model.FactorFor(mode)
	if err != nil {
		return 0, err
	}
	return Round(distanceKm*factor, DisplayPrecision), nil
}

// AllModesRanked computes the emission of every model mode for distanceKm,
// ordered from lowest to highest emission. Ties keep enumeration order.
// PercentVsCar is measured against the baseline mode and is 0 unless the
// baseline emission is positive.
func (c *Calculator) AllModesRanked(distanceKm float64) ([]ModeEmission, error) {
	baselineKg, err := c.EmissionFor(distanceKm, c.model.BaselineMode())
	if err != nil {
		return nil, err
	}

	modes := c.model.Modes()
	ranked := make([]ModeEmission, 0, len(modes))
	for _, mode := range modes {
		kg, modeErr := c.EmissionFor(distanceKm, mode)
		if modeErr != nil {
			return nil, modeErr
		}

		pct := 0.0
		if baselineKg > 0 {
			pct = kg / baselineKg * percentScale
		}

		ranked = append(ranked, ModeEmission{
			Mode:         mode,
			EmissionKg:   kg,
			PercentVsCar: Round(pct, DisplayPrecision),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EmissionKg < ranked[j].EmissionKg
	})

	return ranked, nil
}

// SavingsVsBaseline compares emissionKg with baselineKg. The percentage is 0
// unless the baseline is positive. Both values are rounded to two decimals.
func (c *Calculator) SavingsVsBaseline(emissionKg, baselineKg float64) Savings {
	saved := baselineKg - emissionKg

	pct := 0.0
	if baselineKg > 0 {
		pct = saved / baselineKg * percentScale
	}

	return Savings{
		SavedKg:    Round(saved, DisplayPrecision),
		Percentage: Round(pct, DisplayPrecision),
	}
}

// CreditsFor converts an emission into a carbon-credit quantity rounded to
// four decimals.
func (c *Calculator) CreditsFor(emissionKg float64) float64 {
	return Round(emissionKg/c.model.CreditConversionRatio(), CreditPrecision)
}

// PriceEstimate prices a credit quantity at both ends of the model's price
// band. Average is the midpoint of the unrounded bounds.
func (c *Calculator) PriceEstimate(credits float64) PriceEstimate {
	band := c.model.PriceBand()
	lo := credits * band.Min
	hi := credits * band.Max

	return PriceEstimate{
		Min:      Round(lo, DisplayPrecision),
		Max:      Round(hi, DisplayPrecision),
		Average:  Round((lo+hi)/2, DisplayPrecision),
		Currency: band.Currency,
	}
}

func validateDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDistance, distanceKm)
	}
	return nil
}

// Package emission holds the per-mode emission factors and the carbon-credit
// economics used to price an emission.
//
// A Model is built once at startup and never mutated afterwards, so a single
// instance can be shared by any number of goroutines without locking.
package emission

import (
	"fmt"
	"math"
	"strings"
)

// Mode identifies a transport mode such as "car" or "bus".
type Mode string

// Known transport modes, in enumeration order.
const (
	ModeBicycle Mode = "bicycle"
	ModeCar     Mode = "car"
	ModeBus     Mode = "bus"
	ModeTruck   Mode = "truck"
)

// String returns the mode identifier.
func (m Mode) String() string {
	return string(m)
}

// Factor binds a mode to its emission factor in kg CO2 per km.
type Factor struct {
	Mode    Mode    `json:"mode"    yaml:"mode"`
	KgPerKm float64 `json:"kgPerKm" yaml:"kg_per_km"`
}

// CreditConfig describes how emissions convert into priced carbon credits.
type CreditConfig struct {
	// KgPerCredit is the mass of CO2 one credit offsets. Must be > 0.
	KgPerCredit float64 `json:"kgPerCredit" yaml:"kg_per_credit"`

	// PriceMin and PriceMax bound the price of one credit. 0 <= min <= max.
	PriceMin float64 `json:"priceMin" yaml:"price_min"`
	PriceMax float64 `json:"priceMax" yaml:"price_max"`

	// Currency is the ISO 4217 code the prices are expressed in.
	Currency string `json:"currency" yaml:"currency"`
}

// PriceBand is the per-credit price range.
type PriceBand struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Config is the input to NewModel.
type Config struct {
	// Factors lists every supported mode. The order is the enumeration order
	// used when fanning out over all modes.
	Factors []Factor

	// Baseline is the reference mode savings and percentages are measured against.
	Baseline Mode

	Credit CreditConfig
}

// Model is the immutable emission model.
type Model struct {
	factors  []Factor
	index    map[Mode]float64
	baseline Mode
	credit   CreditConfig
}

// DefaultFactors returns the compiled-in factor table in enumeration order.
func DefaultFactors() []Factor {
	return []Factor{
		{Mode: ModeBicycle, KgPerKm: FactorBicycle},
		{Mode: ModeCar, KgPerKm: FactorCar},
		{Mode: ModeBus, KgPerKm: FactorBus},
		{Mode: ModeTruck, KgPerKm: FactorTruck},
	}
}

// DefaultCreditConfig returns the compiled-in credit economics.
func DefaultCreditConfig() CreditConfig {
	return CreditConfig{
		KgPerCredit: KgPerCredit,
		PriceMin:    PriceMinBRL,
		PriceMax:    PriceMaxBRL,
		Currency:    DefaultCurrency,
	}
}

// Default returns the compiled-in model with car as the baseline.
func Default() *Model {
	m, err := NewModel(Config{
		Factors:  DefaultFactors(),
		Baseline: ModeCar,
		Credit:   DefaultCreditConfig(),
	})
	if err != nil {
		// The compiled-in tables are covered by tests; failing here is a programming error.
		panic(fmt.Sprintf("emission: default model is invalid: %v", err))
	}
	return m
}

// NewModel validates cfg and returns an immutable Model.
//
// Mode identifiers are normalized to lower case. It returns ErrInvalidModel
// wrapped with a description when the factor set is empty, a mode is blank or
// duplicated, a factor is negative or not finite, bicycle has a non-zero
// factor, the baseline is not part of the set, or the credit economics are
// out of range.
func NewModel(cfg Config) (*Model, error) {
	if len(cfg.Factors) == 0 {
		return nil, fmt.Errorf("%w: no transport modes configured", ErrInvalidModel)
	}

	factors := make([]Factor, 0, len(cfg.Factors))
	index := make(map[Mode]float64, len(cfg.Factors))
	for _, f := range cfg.Factors {
		mode := normalizeMode(string(f.Mode))
		if mode == "" {
			return nil, fmt.Errorf("%w: blank transport mode", ErrInvalidModel)
		}
		if _, dup := index[mode]; dup {
			return nil, fmt.Errorf("%w: duplicate transport mode %q", ErrInvalidModel, mode)
		}
		if math.IsNaN(f.KgPerKm) || math.IsInf(f.KgPerKm, 0) || f.KgPerKm < 0 {
			return nil, fmt.Errorf("%w: factor for %q must be a non-negative number, got %v",
				ErrInvalidModel, mode, f.KgPerKm)
		}
		if mode == ModeBicycle && f.KgPerKm != 0 {
			return nil, fmt.Errorf("%w: bicycle is zero-emission, got %v kg/km", ErrInvalidModel, f.KgPerKm)
		}
		index[mode] = f.KgPerKm
		factors = append(factors, Factor{Mode: mode, KgPerKm: f.KgPerKm})
	}

	baseline := normalizeMode(string(cfg.Baseline))
	if _, ok := index[baseline]; !ok {
		return nil, fmt.Errorf("%w: baseline mode %q is not configured", ErrInvalidModel, cfg.Baseline)
	}

	if err := validateCredit(cfg.Credit); err != nil {
		return nil, err
	}

	return &Model{
		factors:  factors,
		index:    index,
		baseline: baseline,
		credit:   cfg.Credit,
	}, nil
}

func validateCredit(c CreditConfig) error {
	if !(c.KgPerCredit > 0) || math.IsInf(c.KgPerCredit, 0) {
		return fmt.Errorf("%w: kg per credit must be > 0, got %v", ErrInvalidModel, c.KgPerCredit)
	}
	if c.PriceMin < 0 || c.PriceMax < 0 || math.IsNaN(c.PriceMin) || math.IsNaN(c.PriceMax) {
		return fmt.Errorf("%w: credit prices must be >= 0", ErrInvalidModel)
	}
	if c.PriceMin > c.PriceMax {
		return fmt.Errorf("%w: price min %v exceeds price max %v", ErrInvalidModel, c.PriceMin, c.PriceMax)
	}
	return nil
}

// FactorFor returns the emission factor of mode in kg CO2 per km.
// Unknown modes yield ErrUnknownMode; zero is only ever returned for a
// configured zero-emission mode.
func (m *Model) FactorFor(mode Mode) (float64, error) {
	factor, ok := m.index[mode]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return factor, nil
}

// Modes returns every configured mode in enumeration order.
func (m *Model) Modes() []Mode {
	modes := make([]Mode, len(m.factors))
	for i, f := range m.factors {
		modes[i] = f.Mode
	}
	return modes
}

// Factors returns a copy of the factor table in enumeration order.
func (m *Model) Factors() []Factor {
	out := make([]Factor, len(m.factors))
	copy(out, m.factors)
	return out
}

// HasMode reports whether mode is configured.
func (m *Model) HasMode(mode Mode) bool {
	_, ok := m.index[mode]
	return ok
}

// ParseMode resolves a user supplied mode name, ignoring case and surrounding
// whitespace.
func (m *Model) ParseMode(s string) (Mode, error) {
	mode := normalizeMode(s)
	if !m.HasMode(mode) {
		return "", fmt.Errorf("%w: %q (known modes: %s)", ErrUnknownMode, strings.TrimSpace(s), m.modeList())
	}
	return mode, nil
}

// BaselineMode returns the reference mode for savings (car by default).
func (m *Model) BaselineMode() Mode {
	return m.baseline
}

// CreditConversionRatio returns the kg of CO2 per carbon credit.
func (m *Model) CreditConversionRatio() float64 {
	return m.credit.KgPerCredit
}

// PriceBand returns the per-credit price range.
func (m *Model) PriceBand() PriceBand {
	return PriceBand{
		Min:      m.credit.PriceMin,
		Max:      m.credit.PriceMax,
		Currency: m.credit.Currency,
	}
}

func (m *Model) modeList() string {
	names := make([]string, len(m.factors))
	for i, f := range m.factors {
		names[i] = string(f.Mode)
	}
	return strings.Join(names, ", ")
}

func normalizeMode(s string) Mode {
	return Mode(strings.ToLower(strings.TrimSpace(s)))
}

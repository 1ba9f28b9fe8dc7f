// Package greenops puts trip emissions into perspective.
//
// It converts kg CO2e into relatable equivalencies such as kilometres driven
// or smartphones charged, and formats numbers, masses and prices for the
// user's locale.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyKmDriven converts CO2e to kilometres driven in an average passenger vehicle.
	EquivalencyKmDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyKmDriven:
		return "KmDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is a carbon quantity in any recognized unit.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb or their CO2e variants.
	Unit string `json:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is the full sentence for the results card.
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form, e.g. "(≈ 433 km, 6.277 celulares)".
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}

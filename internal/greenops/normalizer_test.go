package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		want    float64
		wantErr error
	}{
		{"grams", 1500, "g", 1.5, nil},
		{"grams co2e mixed case", 1500, "gCO2e", 1.5, nil},
		{"kilograms", 51.6, "kg", 51.6, nil},
		{"empty unit means kg", 51.6, "", 51.6, nil},
		{"tons", 0.5, "t", 500, nil},
		{"tons co2e upper", 2, "TCO2E", 2000, nil},
		{"pounds", 10, "lb", 4.53592, nil},
		{"padded unit", 3, " kg ", 3, nil},
		{"zero", 0, "kg", 0, nil},
		{"negative", -1, "kg", 0, ErrNegativeValue},
		{"unknown unit", 1, "oz", 0, ErrInvalidUnit},
		{"nan", math.NaN(), "kg", 0, ErrCalculationOverflow},
		{"inf", math.Inf(1), "kg", 0, ErrCalculationOverflow},
		{"overflow", math.MaxFloat64, "t", 0, ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, u := range []string{"g", "kg", "t", "lb", "gCO2e", "kgCO2e", "tCO2e", "lbCO2e", "KG"} {
		assert.True(t, IsRecognizedUnit(u), u)
	}
	for _, u := range []string{"oz", "ton", "kilo"} {
		assert.False(t, IsRecognizedUnit(u), u)
	}
}

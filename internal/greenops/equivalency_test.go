package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalencies(t *testing.T) {
	en := mustFormatter(t, "en")

	tests := []struct {
		name       string
		input      CarbonInput
		wantKm     float64
		wantPhones float64
		wantEmpty  bool
		wantErr    error
	}{
		{
			name:       "150kg reference value",
			input:      CarbonInput{Value: 150.0, Unit: "kg"},
			wantKm:     1257.3, // 150 / (0.192 / 1.609344)
			wantPhones: 18248.18,
		},
		{
			name:       "grams normalized",
			input:      CarbonInput{Value: 150000.0, Unit: "g"},
			wantKm:     1257.3,
			wantPhones: 18248.18,
		},
		{
			name:       "car trip sao paulo to rio",
			input:      CarbonInput{Value: 51.6, Unit: "kg"},
			wantKm:     432.5,
			wantPhones: 6277.37,
		},
		{
			name:      "below threshold",
			input:     CarbonInput{Value: 0.5, Unit: "kg"},
			wantEmpty: true,
		},
		{
			name:      "negative value",
			input:     CarbonInput{Value: -1, Unit: "kg"},
			wantEmpty: true,
			wantErr:   ErrNegativeValue,
		},
		{
			name:      "invalid unit",
			input:     CarbonInput{Value: 10, Unit: "stone"},
			wantEmpty: true,
			wantErr:   ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := en.Equivalencies(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantEmpty, got.IsEmpty)
			if tt.wantEmpty {
				assert.Empty(t, got.Results)
				assert.Empty(t, got.String())
				return
			}

			require.Len(t, got.Results, 4)
			assert.Equal(t, EquivalencyKmDriven, got.Results[0].Type)
			assert.InEpsilon(t, tt.wantKm, got.Results[0].Value, 0.01)
			assert.Equal(t, EquivalencySmartphonesCharged, got.Results[1].Type)
			assert.InEpsilon(t, tt.wantPhones, got.Results[1].Value, 0.01)
			assert.Equal(t, EquivalencyTreeSeedlings, got.Results[2].Type)
			assert.Equal(t, EquivalencyHomeDays, got.Results[3].Type)
			assert.Contains(t, got.DisplayText, "Equivalent to driving")
			assert.Equal(t, got.DisplayText, got.String())
		})
	}
}

func TestEquivalencies_Localized(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")

	got, err := pt.Equivalencies(CarbonInput{Value: 51.6, Unit: "kg"})
	require.NoError(t, err)

	assert.Equal(t, "Equivale a dirigir ~433 km ou carregar ~6.277 smartphones", got.DisplayText)
	assert.Equal(t, "(≈ 433 km, 6.277 celulares)", got.CompactText)
	assert.Equal(t, "km dirigidos", got.Results[0].Label)
	assert.Equal(t, "0,9", got.Results[2].FormattedValue)
	assert.Equal(t, "2,8", got.Results[3].FormattedValue)
}

func TestEquivalencies_BlankLocaleUsesDefault(t *testing.T) {
	f, err := NewFormatter("")
	require.NoError(t, err)

	got, err := f.Equivalencies(CarbonInput{Value: 150, Unit: "kgCO2e"})
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "Equivale a dirigir")
	assert.Contains(t, got.DisplayText, "18.248")
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "KmDriven", EquivalencyKmDriven.String())
	assert.Equal(t, "SmartphonesCharged", EquivalencySmartphonesCharged.String())
	assert.Equal(t, "TreeSeedlings", EquivalencyTreeSeedlings.String())
	assert.Equal(t, "HomeDays", EquivalencyHomeDays.String())
	assert.Equal(t, "EquivalencyType(99)", EquivalencyType(99).String())
}

package calculator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonroute/internal/emission"
)

func TestEstimate_BusSaoPauloRio(t *testing.T) {
	calc := New(nil)

	result, err := calc.Estimate(TripRequest{
		Origin:      "São Paulo",
		Destination: "Rio de Janeiro",
		DistanceKm:  430,
		Mode:        emission.ModeBus,
	})
	require.NoError(t, err)

	assert.Equal(t, emission.ModeBus, result.Mode)
	assert.InDelta(t, 38.27, result.EmissionKg, 1e-9)
	assert.Equal(t, emission.ModeCar, result.BaselineMode)
	assert.InDelta(t, 51.6, result.BaselineEmissionKg, 1e-9)

	require.NotNil(t, result.Savings)
	assert.InDelta(t, 13.33, result.Savings.SavedKg, 1e-9)
	assert.InDelta(t, 25.83, result.Savings.Percentage, 1e-9)

	require.Len(t, result.Ranking, 4)
	assert.Equal(t, emission.ModeBicycle, result.Ranking[0].Mode)

	assert.InDelta(t, 0.0383, result.Credits, 1e-12)
	assert.Equal(t, "BRL", result.Price.Currency)
}

func TestEstimate_BaselineHasNoSavings(t *testing.T) {
	result, err := New(nil).Estimate(TripRequest{DistanceKm: 430, Mode: emission.ModeCar})
	require.NoError(t, err)

	assert.Nil(t, result.Savings)
	assert.InDelta(t, 0.0516, result.Credits, 1e-12)
	assert.InDelta(t, 2.58, result.Price.Min, 1e-9)
	assert.InDelta(t, 7.74, result.Price.Max, 1e-9)
	assert.InDelta(t, 5.16, result.Price.Average, 1e-9)
}

func TestEstimate_Errors(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		name    string
		req     TripRequest
		wantErr error
	}{
		{"zero distance", TripRequest{DistanceKm: 0, Mode: emission.ModeCar}, ErrInvalidDistance},
		{"negative distance", TripRequest{DistanceKm: -10, Mode: emission.ModeCar}, ErrInvalidDistance},
		{"missing mode", TripRequest{DistanceKm: 10}, ErrInvalidRequest},
		{"unknown mode", TripRequest{DistanceKm: 10, Mode: "plane"}, emission.ErrUnknownMode},
		{
			"origin too long",
			TripRequest{Origin: strings.Repeat("a", 129), DistanceKm: 10, Mode: emission.ModeCar},
			ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Estimate(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonroute/internal/greenops"
)

func TestCredits_JSON(t *testing.T) {
	isolate(t)

	out := runJSON(t, "credits", "--emission", "51.6")
	assert.InDelta(t, 51.6, out["emissionKg"], 1e-9)
	assert.InDelta(t, 1000, out["kgPerCredit"], 1e-9)
	assert.InDelta(t, 0.0516, out["credits"], 1e-12)

	price := out["price"].(map[string]any)
	assert.InDelta(t, 2.58, price["min"], 1e-9)
	assert.InDelta(t, 7.74, price["max"], 1e-9)
	assert.InDelta(t, 5.16, price["average"], 1e-9)
}

func TestCredits_Tonnes(t *testing.T) {
	isolate(t)

	out := runJSON(t, "credits", "--emission", "2.5", "--unit", "t")
	assert.InDelta(t, 2500, out["emissionKg"], 1e-9)
	assert.InDelta(t, 2.5, out["credits"], 1e-12)
}

func TestCredits_Errors(t *testing.T) {
	t.Run("missing emission", func(t *testing.T) {
		isolate(t)
		_, _, err := run(t, "credits")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "emission")
	})

	t.Run("unknown unit", func(t *testing.T) {
		isolate(t)
		_, _, err := run(t, "credits", "--emission", "1", "--unit", "furlong")
		require.ErrorIs(t, err, greenops.ErrInvalidUnit)
		assert.Contains(t, err.Error(), `"furlong"`)
		assert.Contains(t, err.Error(), "valid: g, kg, t, lb")
	})

	t.Run("negative", func(t *testing.T) {
		isolate(t)
		_, _, err := run(t, "credits", "--emission=-1")
		require.ErrorIs(t, err, greenops.ErrNegativeValue)
	})
}

func TestCredits_Plain(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "credits", "--emission", "51.6", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Créditos de carbono")
	assert.Contains(t, stdout, "0,0516")
	assert.Contains(t, stdout, "R$")
}

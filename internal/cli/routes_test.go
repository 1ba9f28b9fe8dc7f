package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonroute/internal/routes"
)

func TestRoutesFind(t *testing.T) {
	isolate(t)

	out := runJSON(t, "routes", "find", "rio de janeiro, rj", "SÃO PAULO, SP")
	assert.InDelta(t, 430, out["distanceKm"], 1e-9)
	assert.Equal(t, "Rio de Janeiro, RJ", out["origin"], "requested orientation, canonical casing")
	assert.Equal(t, "São Paulo, SP", out["destination"])

	stdout, _, err := run(t, "routes", "find", "Recife, PE", "Olinda, PE")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Recife, PE → Olinda, PE: 8,0 km")
}

func TestRoutesFind_NotFound(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "routes", "find", "São Paulo, SP", "São Paulo, SP")
	require.ErrorIs(t, err, routes.ErrRouteNotFound)
}

func TestRoutesList(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "routes", "list", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, routes.Default().Len())

	var first routes.Route
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Positive(t, first.DistanceKm)

	table, _, err := run(t, "routes", "list", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, table, "Route")
	assert.Contains(t, table, "Niterói, RJ")
}

func TestRoutesList_CustomFile(t *testing.T) {
	home := isolate(t)

	routesFile := filepath.Join(home, "extra.yaml")
	require.NoError(t, os.WriteFile(routesFile, []byte(`routes:
  - origin: Campinas, SP
    destination: Guarujá, SP
    distance_km: 170
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("routes:\n  include_defaults: false\n  files: ["+routesFile+"]\n"), 0o600))

	stdout, _, err := run(t, "routes", "locations", "--output", "json")
	require.NoError(t, err)

	var locations []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &locations))
	assert.Equal(t, []string{"Campinas, SP", "Guarujá, SP"}, locations)

	out := runJSON(t, "trip", "--from", "guarujá, sp", "--to", "campinas, sp", "--mode", "bus")
	assert.InDelta(t, 15.13, out["emissionKg"], 1e-9)
}

func TestRoutesLocations_Sorted(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "routes", "locations")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.NotEmpty(t, lines)
	for i := 1; i < len(lines); i++ {
		assert.Less(t, lines[i-1], lines[i])
	}
}

func TestRoutesList_Paginated(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "routes", "list", "--sort", "distance:desc", "--page", "1", "--page-size", "3", "--output", "json")
	require.NoError(t, err)

	var out struct {
		Routes     []routes.Route `json:"routes"`
		Pagination struct {
			CurrentPage int  `json:"currentPage"`
			TotalItems  int  `json:"totalItems"`
			HasNext     bool `json:"hasNext"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Routes, 3)
	assert.InDelta(t, 2527, out.Routes[0].DistanceKm, 1e-9, "longest seeded route first")
	assert.GreaterOrEqual(t, out.Routes[0].DistanceKm, out.Routes[1].DistanceKm)
	assert.Equal(t, 1, out.Pagination.CurrentPage)
	assert.Equal(t, routes.Default().Len(), out.Pagination.TotalItems)
	assert.True(t, out.Pagination.HasNext)

	_, _, err = run(t, "routes", "list", "--page", "1", "--offset", "2")
	require.Error(t, err)

	_, _, err = run(t, "routes", "list", "--sort", "price")
	require.Error(t, err)
}

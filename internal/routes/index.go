// Package routes provides the read-only table of known trips between named
// locations and their road distances.
//
// Locations compare case-insensitively after trimming surrounding whitespace.
// Routes are symmetric: a route stored as A to B also answers B to A.
package routes

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Route is a known distance between two locations.
type Route struct {
	Origin      string  `json:"origin"      yaml:"origin"      validate:"required,max=128"`
	Destination string  `json:"destination" yaml:"destination" validate:"required,max=128"`
	DistanceKm  float64 `json:"distanceKm"  yaml:"distance_km" validate:"gt=0"`
}

// pairKey is the normalized, orientation-free key of a route.
type pairKey struct {
	a, b string
}

func newPairKey(x, y string) pairKey {
	if y < x {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// Index is an immutable route lookup built once at startup.
// It is safe for concurrent use.
type Index struct {
	routes    []Route
	distances map[pairKey]float64
	canonical map[string]string
	locations []string
}

// Normalize returns the comparison form of a location name.
func Normalize(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// NewIndex validates routes and builds an Index keyed by normalized pair.
//
// Display names keep the casing of their first appearance. A pair listed more
// than once is accepted only when every occurrence carries the same distance;
// the first occurrence wins. Invalid routes are reported with ErrInvalidRoute.
func NewIndex(routes []Route) (*Index, error) {
	idx := &Index{
		routes:    make([]Route, 0, len(routes)),
		distances: make(map[pairKey]float64, len(routes)),
		canonical: make(map[string]string),
	}

	for i, r := range routes {
		origin := strings.TrimSpace(r.Origin)
		destination := strings.TrimSpace(r.Destination)
		if err := validateRoute(origin, destination, r.DistanceKm); err != nil {
			return nil, fmt.Errorf("route %d (%q -> %q): %w", i, r.Origin, r.Destination, err)
		}

		key := newPairKey(Normalize(origin), Normalize(destination))
		if existing, ok := idx.distances[key]; ok {
			if existing != r.DistanceKm {
				return nil, fmt.Errorf("route %d (%q -> %q): %w: conflicting distances %v and %v",
					i, r.Origin, r.Destination, ErrInvalidRoute, existing, r.DistanceKm)
			}
			continue
		}

		idx.distances[key] = r.DistanceKm
		idx.remember(origin)
		idx.remember(destination)
		idx.routes = append(idx.routes, Route{Origin: origin, Destination: destination, DistanceKm: r.DistanceKm})
	}

	idx.locations = make([]string, 0, len(idx.canonical))
	for _, name := range idx.canonical {
		idx.locations = append(idx.locations, name)
	}
	sort.Strings(idx.locations)

	return idx, nil
}

func validateRoute(origin, destination string, distanceKm float64) error {
	if origin == "" || destination == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidRoute)
	}
	if Normalize(origin) == Normalize(destination) {
		return fmt.Errorf("%w: origin and destination are the same location", ErrInvalidRoute)
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm <= 0 {
		return fmt.Errorf("%w: distance must be > 0 km, got %v", ErrInvalidRoute, distanceKm)
	}
	return nil
}

func (idx *Index) remember(name string) {
	key := Normalize(name)
	if _, ok := idx.canonical[key]; !ok {
		idx.canonical[key] = name
	}
}

// AllLocations returns every known location once, in canonical casing,
// sorted ascending. The returned slice is a copy.
func (idx *Index) AllLocations() []string {
	out := make([]string, len(idx.locations))
	copy(out, idx.locations)
	return out
}

// FindDistance returns the distance in km between origin and destination.
// Inputs are trimmed and case-folded, and both orientations match.
// The boolean is false when no route is known, including when both
// locations are the same.
func (idx *Index) FindDistance(origin, destination string) (float64, bool) {
	o, d := Normalize(origin), Normalize(destination)
	if o == "" || d == "" || o == d {
		return 0, false
	}
	km, ok := idx.distances[newPairKey(o, d)]
	return km, ok
}

// Lookup is FindDistance for callers that prefer an error value. The returned
// Route uses canonical location names in the requested orientation.
func (idx *Index) Lookup(origin, destination string) (Route, error) {
	km, ok := idx.FindDistance(origin, destination)
	if !ok {
		return Route{}, fmt.Errorf("%w: %q -> %q", ErrRouteNotFound,
			strings.TrimSpace(origin), strings.TrimSpace(destination))
	}
	return Route{
		Origin:      idx.Canonical(origin),
		Destination: idx.Canonical(destination),
		DistanceKm:  km,
	}, nil
}

// Canonical returns the display form of a known location, or the trimmed
// input when the location is unknown.
func (idx *Index) Canonical(location string) string {
	if name, ok := idx.canonical[Normalize(location)]; ok {
		return name
	}
	return strings.TrimSpace(location)
}

// Routes returns a copy of the indexed routes in insertion order.
func (idx *Index) Routes() []Route {
	out := make([]Route, len(idx.routes))
	copy(out, idx.routes)
	return out
}

// Len returns the number of distinct routes.
func (idx *Index) Len() int {
	return len(idx.routes)
}

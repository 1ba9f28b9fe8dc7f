package pagination

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rshade/carbonroute/internal/routes"
)

// Sorter orders a list by a named field.
type Sorter[T any] interface {
	Sort(items []T, field, order string) ([]T, error)
	ValidFields() []string
}

// RouteSorter sorts routes by origin, destination or distance.
type RouteSorter struct{}

// routeLess compares two routes by one field.
//
//nolint:gochecknoglobals // Read-only lookup table.
var routeLess = map[string]func(a, b routes.Route) bool{
	"origin":      func(a, b routes.Route) bool { return a.Origin < b.Origin },
	"destination": func(a, b routes.Route) bool { return a.Destination < b.Destination },
	"distance":    func(a, b routes.Route) bool { return a.DistanceKm < b.DistanceKm },
}

// ValidFields returns the sortable fields, sorted.
func (RouteSorter) ValidFields() []string {
	fields := make([]string, 0, len(routeLess))
	for f := range routeLess {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of items. Ties keep their input order in both
// directions.
func (s RouteSorter) Sort(items []routes.Route, field, order string) ([]routes.Route, error) {
	less, ok := routeLess[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.ValidFields(), ", "))
	}

	sorted := slices.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}

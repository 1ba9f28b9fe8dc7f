package routes

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonroute/internal/logging"
)

// maxRouteFiles bounds how many route files are read concurrently.
const maxRouteFiles = 8

// routeFile is the on-disk layout of a route table.
//
//	routes:
//	  - origin: "Joinville, SC"
//	    destination: "Florianópolis, SC"
//	    distance_km: 180
type routeFile struct {
	Routes []Route `yaml:"routes" validate:"dive"`
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance is the documented usage.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads and validates a YAML route table.
func LoadFile(path string) ([]Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route file %s: %w", path, err)
	}

	var f routeFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing route file %s: %w", path, err)
	}

	if err = validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("route file %s: %w: %s failed %q", path, ErrInvalidRoute,
				verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("route file %s: %w", path, err)
	}

	return f.Routes, nil
}

// LoadFiles reads every path concurrently and returns the routes in path order.
func LoadFiles(ctx context.Context, paths []string) ([]Route, error) {
	results := make([][]Route, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxRouteFiles)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			loaded, err := LoadFile(path)
			if err != nil {
				return err
			}
			results[i] = loaded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Route
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// BuildIndex assembles an Index from the compiled-in table (when
// includeSeed is true) followed by the routes of every file in paths.
// With no files and the seed included it returns Default().
func BuildIndex(ctx context.Context, paths []string, includeSeed bool) (*Index, error) {
	log := logging.FromContext(ctx)

	if len(paths) == 0 && includeSeed {
		return Default(), nil
	}

	var all []Route
	if includeSeed {
		all = SeedRoutes()
	}

	loaded, err := LoadFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	all = append(all, loaded...)

	idx, err := NewIndex(all)
	if err != nil {
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Str("component", "routes").
		Int("files", len(paths)).
		Bool("include_seed", includeSeed).
		Int("routes", idx.Len()).
		Int("locations", len(idx.locations)).
		Msg("route index built")

	return idx, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/greenops"
	"github.com/rshade/carbonroute/internal/logging"
	"github.com/rshade/carbonroute/internal/routes"
)

// app bundles the immutable services a command needs, built once from the
// global configuration.
type app struct {
	cfg       *config.Config
	index     *routes.Index
	calc      *calculator.Calculator
	formatter *greenops.Formatter
}

// newApp builds the route index, emission model and formatter described by
// the global configuration.
func newApp(ctx context.Context) (*app, error) {
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	model, err := cfg.EmissionModel()
	if err != nil {
		return nil, fmt.Errorf("building emission model: %w", err)
	}

	index, err := routes.BuildIndex(ctx, cfg.Routes.Files, cfg.Routes.IncludeDefaults)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Strs("files", cfg.Routes.Files).Msg("failed to build route index")
		return nil, fmt.Errorf("loading routes: %w", err)
	}

	formatter, err := greenops.NewFormatter(cfg.Output.Locale)
	if err != nil {
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Int("routes", index.Len()).
		Str("locale", formatter.Locale()).
		Str("baseline", model.BaselineMode().String()).
		Msg("services ready")

	return &app{
		cfg:       cfg,
		index:     index,
		calc:      calculator.New(model),
		formatter: formatter,
	}, nil
}

// outputFormat returns the --output flag value or the configured default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use table, json or ndjson)", format)
	}
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output format: table, json or ndjson (default from config)")
}

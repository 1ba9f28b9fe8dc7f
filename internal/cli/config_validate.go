package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/routes"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the config file with any --config
overlay and CARBONROUTE_* overrides applied.

This includes:
- Field constraints (formats, log levels, currency codes, price band)
- The schema_version against the versions this build supports
- The emission factors and baseline mode
- Every route table listed under routes.files`,
		Example: `  # Validate current configuration
  carbonroute config validate

  # Validate and show detailed information
  carbonroute config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	index, err := routes.BuildIndex(cmd.Context(), cfg.Routes.Files, cfg.Routes.IncludeDefaults)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Println("✅ Configuration is valid")

	if verbose {
		model, _ := cfg.EmissionModel()
		band := model.PriceBand()

		cmd.Println()
		cmd.Printf("File:           %s\n", cfg.ConfigPath())
		cmd.Printf("Schema version: %s\n", cfg.SchemaVersion)
		cmd.Printf("Locale:         %s\n", cfg.Output.Locale)
		cmd.Printf("Output format:  %s\n", cfg.Output.DefaultFormat)
		cmd.Printf("Log level:      %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
		cmd.Printf("Routes:         %d (%d locations)\n", index.Len(), len(index.AllLocations()))
		cmd.Printf("Baseline mode:  %s\n", model.BaselineMode())
		for _, f := range model.Factors() {
			cmd.Printf("  %-10s %v kg/km\n", f.Mode, f.KgPerKm)
		}
		cmd.Printf("Credits:        %v kg per credit, %v-%v %s\n",
			model.CreditConversionRatio(), band.Min, band.Max, band.Currency)
	}

	return nil
}

package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonroute CLI.
// It loads configuration, wires up logging and tracing, and registers the
// trip, compare, credits, routes, modes and config command groups.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "carbonroute",
		Short:         "Estimate the CO₂ emission of a trip",
		Long:          "carbonroute: estimate the CO₂ emission of a trip per transport mode and price its offset in carbon credits",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
	}
	closeLog := func() error {
		if logResult == nil {
			return nil
		}
		err := logResult.Close()
		logResult = nil
		return err
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file overlaid on the configuration file")
	cmd.PersistentFlags().String("locale", "", "output locale (pt-BR or en, default from config)")
	cmd.AddCommand(
		NewTripCmd(), NewCompareCmd(), NewCreditsCmd(),
		newRoutesCmd(), NewModesCmd(), newConfigCmd(),
	)
	closeAfterRun(cmd, closeLog)

	return cmd
}

// closeAfterRun wraps every RunE below cmd so closeFn runs once the command
// returns, whether or not it failed. Cobra skips post-run hooks on error.
func closeAfterRun(cmd *cobra.Command, closeFn func() error) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) (err error) {
			defer func() {
				if closeErr := closeFn(); err == nil {
					err = closeErr
				}
			}()
			return run(c, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, closeFn)
	}
}

const rootCmdExample = `  # Emission of a known route by bus
  carbonroute trip --from "São Paulo, SP" --to "Rio de Janeiro, RJ" --mode bus

  # Unknown route with a manual distance
  carbonroute trip --from "Campinas, SP" --to "Guarujá, SP" --distance 170 --mode car

  # Pick a mode interactively
  carbonroute trip --from "Curitiba, PR" --to "São Paulo, SP" --interactive

  # Compare every mode as JSON
  carbonroute compare --distance 430 --output json

  # Credits needed to offset 2.5 tonnes
  carbonroute credits --emission 2.5 --unit t

  # Known routes and locations
  carbonroute routes list
  carbonroute routes find "rio de janeiro, rj" "são paulo, sp"

  # Initialize configuration
  carbonroute config init`

// loadConfig builds the global configuration: defaults, config file, the
// --config overlay and environment overrides, in that order.
func loadConfig(cmd *cobra.Command) error {
	cfg := config.New()
	config.SetGlobalConfig(cfg)

	overlay, _ := cmd.Flags().GetString("config")
	if overlay != "" {
		if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("loading --config overlay: %w", err)
		}
		// The overlay must not hide environment overrides.
		cfg.ApplyEnvOverrides(lookupEnv)
	}

	if cmd.Flags().Changed("locale") {
		cfg.Output.Locale, _ = cmd.Flags().GetString("locale")
	}

	// config commands must run against a broken file to repair it.
	if isConfigCommand(cmd) {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration %s: %w", cfg.ConfigPath(), err)
	}
	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.Parent() != nil && c.Parent().Parent() == nil {
			return true
		}
	}
	return false
}

// newRoutesCmd creates the routes command group.
func newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "routes", Short: "Known routes and locations"}
	cmd.AddCommand(NewRoutesListCmd(), NewRoutesFindCmd(), NewRoutesLocationsCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(), NewConfigPathCmd(),
	)
	return cmd
}

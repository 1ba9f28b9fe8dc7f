package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonroute/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Long:  "Prints the effective value of a dotted key. Sections print as YAML.",
		Example: `  carbonroute config get output.locale
  carbonroute config get credits`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, value)
		},
	}
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value in the config file",
		Long: `Parses value as YAML, assigns it to a dotted key and saves the config file.
The file is left untouched if the result does not validate. Environment
overrides and --config overlays are not written back.`,
		Example: `  carbonroute config set output.locale en
  carbonroute config set credits.price_max 180
  carbonroute config set routes.files '[/etc/carbonroute/routes.yaml]'`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			cmd.Printf("Set %s in %s\n", args[0], cfg.ConfigPath())
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			keys, err := cfg.Keys()
			if err != nil {
				return err
			}
			for _, key := range keys {
				value, getErr := cfg.Get(key)
				if getErr != nil {
					return getErr
				}
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, inlineValue(value)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetGlobalConfig().ConfigPath())
			return err
		},
	}
}

// loadFileConfig returns the defaults overlaid with the config file only.
func loadFileConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.SetConfigPath(config.GetGlobalConfig().ConfigPath())
	if err := cfg.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return cfg, nil
}

func printValue(cmd *cobra.Command, value any) error {
	switch value.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshalling value: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
		return err
	}
}

// inlineValue renders value as single-line YAML flow.
func inlineValue(value any) string {
	if value == nil {
		return ""
	}
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return fmt.Sprint(value)
	}
	setFlow(&node)
	data, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Sprint(value)
	}
	return strings.TrimSpace(string(data))
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}

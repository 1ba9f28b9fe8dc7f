package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/tui"
)

// modeOutput is the JSON shape of one transport mode.
type modeOutput struct {
	Mode     emission.Mode `json:"mode"`
	Label    string        `json:"label"`
	Icon     string        `json:"icon"`
	KgPerKm  float64       `json:"kgPerKm"`
	Baseline bool          `json:"baseline"`
}

// NewModesCmd creates the modes command.
func NewModesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List transport modes and their emission factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			model := a.calc.Model()
			factors := model.Factors()
			out := make([]modeOutput, len(factors))
			for i, fc := range factors {
				out[i] = modeOutput{
					Mode:     fc.Mode,
					Label:    tui.ModeLabel(a.formatter, fc.Mode),
					Icon:     tui.InfoFor(fc.Mode).Icon,
					KgPerKm:  fc.KgPerKm,
					Baseline: fc.Mode == model.BaselineMode(),
				}
			}

			switch format {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), out)
			case config.FormatNDJSON:
				return writeNDJSON(cmd.OutOrStdout(), out)
			}

			rows := make([][]string, len(out))
			for i, m := range out {
				marker := ""
				if m.Baseline {
					marker = "✓"
				}
				rows[i] = []string{
					m.Icon + " " + m.Label,
					m.Mode.String(),
					strconv.FormatFloat(m.KgPerKm, 'f', -1, 64),
					marker,
				}
			}
			t := newTable(a.formatter.T("Mode"), "id", "kg CO₂/km", "baseline").Rows(rows...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	addOutputFlag(cmd)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/greenops"
	"github.com/rshade/carbonroute/internal/tui"
)

// creditsOutput is the JSON shape of a credit estimate.
type creditsOutput struct {
	EmissionKg  float64                  `json:"emissionKg"`
	KgPerCredit float64                  `json:"kgPerCredit"`
	Credits     float64                  `json:"credits"`
	Price       calculator.PriceEstimate `json:"price"`
}

// NewCreditsCmd creates the credits command.
func NewCreditsCmd() *cobra.Command {
	var (
		amount  float64
		unit    string
		plain   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Carbon credits needed to offset an emission",
		Example: `  carbonroute credits --emission 51.6
  carbonroute credits --emission 2.5 --unit t --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			if !greenops.IsRecognizedUnit(unit) {
				return fmt.Errorf("--unit %q: %w (valid: g, kg, t, lb)", unit, greenops.ErrInvalidUnit)
			}
			kg, err := greenops.NormalizeToKg(amount, unit)
			if err != nil {
				return fmt.Errorf("--emission %v %s: %w", amount, unit, err)
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			credits := a.calc.CreditsFor(kg)
			out := creditsOutput{
				EmissionKg:  calculator.Round(kg, calculator.DisplayPrecision),
				KgPerCredit: a.calc.Model().CreditConversionRatio(),
				Credits:     credits,
				Price:       a.calc.PriceEstimate(credits),
			}

			switch format {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), out)
			case config.FormatNDJSON:
				return writeNDJSON(cmd.OutOrStdout(), []creditsOutput{out})
			}

			outMode := tui.DetectOutputMode(false, noColor || a.cfg.Output.NoColor, plain)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCredits(a.formatter, tui.CreditsView{
				EmissionKg:  out.EmissionKg,
				Credits:     out.Credits,
				Price:       out.Price,
				KgPerCredit: out.KgPerCredit,
			}, tui.RenderOptions{Plain: outMode == tui.OutputModePlain}))
			return err
		},
	}

	cmd.Flags().Float64Var(&amount, "emission", 0, "emission to offset")
	cmd.Flags().StringVar(&unit, "unit", "kg", "unit of --emission: g, kg, t or lb")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain text output without borders or colour")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colour")
	addOutputFlag(cmd)
	_ = cmd.MarkFlagRequired("emission")

	return cmd
}

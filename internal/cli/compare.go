package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/tui"
)

// compareOutput is the JSON shape of a comparison.
type compareOutput struct {
	Origin       string                    `json:"origin,omitempty"`
	Destination  string                    `json:"destination,omitempty"`
	DistanceKm   float64                   `json:"distanceKm"`
	SelectedMode emission.Mode             `json:"selectedMode"`
	BaselineMode emission.Mode             `json:"baselineMode"`
	Ranking      []calculator.ModeEmission `json:"ranking"`
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	var flags tripFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank every transport mode for one trip",
		Long: `Computes the emission of every transport mode for the same distance,
lowest first, with each emission as a percentage of the baseline mode.`,
		Example: `  carbonroute compare --from "Belo Horizonte, MG" --to "São Paulo, SP"
  carbonroute compare --distance 430 --output ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runCompare(cmd *cobra.Command, flags *tripFlags) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	selected, err := a.calc.Model().ParseMode(flags.mode)
	if err != nil {
		return err
	}

	trip, err := resolveTrip(cmd, a.index, flags)
	if err != nil {
		return err
	}

	ranking, err := a.calc.AllModesRanked(trip.distanceKm)
	if err != nil {
		return err
	}

	baseline := a.calc.Model().BaselineMode()
	switch format {
	case config.FormatJSON:
		return writeJSON(cmd.OutOrStdout(), compareOutput{
			Origin:       trip.origin,
			Destination:  trip.destination,
			DistanceKm:   trip.distanceKm,
			SelectedMode: selected,
			BaselineMode: baseline,
			Ranking:      ranking,
		})
	case config.FormatNDJSON:
		return writeNDJSON(cmd.OutOrStdout(), ranking)
	}

	outMode := tui.DetectOutputMode(false, flags.noColor || a.cfg.Output.NoColor, flags.plain)
	opts := tui.RenderOptions{Plain: outMode == tui.OutputModePlain}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderComparison(a.formatter, ranking, selected, baseline, opts))
	return err
}

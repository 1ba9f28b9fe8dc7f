package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/greenops"
	"github.com/rshade/carbonroute/internal/logging"
	"github.com/rshade/carbonroute/internal/routes"
	"github.com/rshade/carbonroute/internal/tui"
)

// tripFlags holds the flags shared by trip and compare.
type tripFlags struct {
	from        string
	to          string
	distance    float64
	mode        string
	interactive bool
	plain       bool
	noColor     bool
}

func (f *tripFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "origin location")
	cmd.Flags().StringVar(&f.to, "to", "", "destination location")
	cmd.Flags().Float64Var(&f.distance, "distance", 0, "distance in km, for routes missing from the table")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", emission.ModeCar.String(), "transport mode")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "plain text output without borders or colour")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colour")
	addOutputFlag(cmd)
}

// resolvedTrip is a trip whose distance is known.
type resolvedTrip struct {
	origin      string
	destination string
	distanceKm  float64
	manual      bool
}

// tripOutput is the JSON shape of a trip.
type tripOutput struct {
	*calculator.TripResult

	ManualDistance bool                         `json:"manualDistance"`
	Equivalencies  []greenops.EquivalencyResult `json:"equivalencies,omitempty"`
}

// NewTripCmd creates the trip command.
func NewTripCmd() *cobra.Command {
	var flags tripFlags

	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Estimate the emission of one trip",
		Long: `Looks up the distance between --from and --to, computes the CO₂ emission of
the selected mode, compares it with every other mode and prices the credits
needed to offset it.

Routes missing from the table need --distance. A --distance always wins over
the table.`,
		Example: `  carbonroute trip --from "São Paulo, SP" --to "Rio de Janeiro, RJ" --mode bus
  carbonroute trip --from "Campinas, SP" --to "Guarujá, SP" --distance 170
  carbonroute trip --distance 25 --mode bicycle --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrip(cmd, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "pick the mode from an interactive comparison")

	return cmd
}

func runTrip(cmd *cobra.Command, flags *tripFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	mode, err := a.calc.Model().ParseMode(flags.mode)
	if err != nil {
		return err
	}

	trip, err := resolveTrip(cmd, a.index, flags)
	if err != nil {
		return err
	}

	result, err := a.estimate(trip, mode)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Float64("distance_km", trip.distanceKm).Msg("estimate failed")
		return err
	}

	log.Debug().Ctx(ctx).
		Str("origin", trip.origin).
		Str("destination", trip.destination).
		Float64("distance_km", trip.distanceKm).
		Bool("manual", trip.manual).
		Str("mode", mode.String()).
		Float64("emission_kg", result.EmissionKg).
		Msg("trip estimated")

	switch format {
	case config.FormatJSON:
		return writeJSON(cmd.OutOrStdout(), a.tripOutput(result, trip.manual))
	case config.FormatNDJSON:
		return writeNDJSON(cmd.OutOrStdout(), []tripOutput{a.tripOutput(result, trip.manual)})
	}

	outMode := tui.DetectOutputMode(flags.interactive, flags.noColor || a.cfg.Output.NoColor, flags.plain)
	if outMode == tui.OutputModeInteractive {
		result, err = a.pickInteractively(cmd, trip, result)
		if err != nil {
			return err
		}
		outMode = tui.OutputModeStyled
	}

	opts := tui.RenderOptions{Plain: outMode == tui.OutputModePlain}
	f := a.formatter
	sections := []string{
		tui.RenderResults(f, tui.TripView{Result: result, ManualDistance: trip.manual}, opts),
		tui.RenderComparison(f, result.Ranking, result.Mode, result.BaselineMode, opts),
		tui.RenderCredits(f, tui.CreditsView{
			EmissionKg:  result.EmissionKg,
			Credits:     result.Credits,
			Price:       result.Price,
			KgPerCredit: a.calc.Model().CreditConversionRatio(),
		}, opts),
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sections, "\n\n"))
	return err
}

// resolveTrip turns the location and distance flags into a distance.
func resolveTrip(cmd *cobra.Command, index *routes.Index, flags *tripFlags) (resolvedTrip, error) {
	trip := resolvedTrip{
		origin:      index.Canonical(flags.from),
		destination: index.Canonical(flags.to),
	}

	if cmd.Flags().Changed("distance") {
		trip.distanceKm = flags.distance
		trip.manual = true
		return trip, nil
	}

	if strings.TrimSpace(flags.from) == "" || strings.TrimSpace(flags.to) == "" {
		return trip, errors.New("--from and --to are required unless --distance is given")
	}

	route, err := index.Lookup(flags.from, flags.to)
	if err != nil {
		if errors.Is(err, routes.ErrRouteNotFound) {
			return trip, fmt.Errorf("%w; pass --distance to enter it manually", err)
		}
		return trip, err
	}

	trip.origin = route.Origin
	trip.destination = route.Destination
	trip.distanceKm = route.DistanceKm
	return trip, nil
}

func (a *app) estimate(trip resolvedTrip, mode emission.Mode) (*calculator.TripResult, error) {
	return a.calc.Estimate(calculator.TripRequest{
		Origin:      trip.origin,
		Destination: trip.destination,
		DistanceKm:  trip.distanceKm,
		Mode:        mode,
	})
}

func (a *app) tripOutput(result *calculator.TripResult, manual bool) tripOutput {
	out := tripOutput{TripResult: result, ManualDistance: manual}
	eq, err := a.formatter.Equivalencies(greenops.CarbonInput{Value: result.EmissionKg, Unit: "kg"})
	if err == nil && !eq.IsEmpty {
		out.Equivalencies = eq.Results
	}
	return out
}

// pickInteractively runs the comparison picker and re-estimates the trip
// when the user chooses another mode.
func (a *app) pickInteractively(
	cmd *cobra.Command,
	trip resolvedTrip,
	result *calculator.TripResult,
) (*calculator.TripResult, error) {
	model := tui.NewComparisonModel(a.calc, a.formatter, trip.distanceKm, result.Ranking, result.Mode)
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	chosen, ok := model.Selected()
	if !ok || chosen == result.Mode {
		return result, nil
	}
	return a.estimate(trip, chosen)
}

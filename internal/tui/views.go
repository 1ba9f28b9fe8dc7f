package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/greenops"
)

const borderPadding = 2

// RenderOptions controls card layout.
type RenderOptions struct {
	// Width is the total card width including borders. Zero selects 72.
	Width int

	// Plain drops borders so output pipes cleanly.
	Plain bool
}

func (o RenderOptions) width() int {
	if o.Width <= borderPadding {
		return defaultCardWidth
	}
	return o.Width
}

// TripView is what the results card shows.
type TripView struct {
	Result *calculator.TripResult

	// ManualDistance marks a distance typed by the user instead of looked up.
	ManualDistance bool
}

// RenderResults renders the trip results card: route, distance, emission,
// mode, savings against the baseline and carbon equivalencies.
func RenderResults(f *greenops.Formatter, view TripView, opts RenderOptions) string {
	r := view.Result
	if r == nil {
		return InfoStyle.Render(f.T("No results to display."))
	}

	rows := make([][2]string, 0, 5)
	if r.Origin != "" || r.Destination != "" {
		rows = append(rows, [2]string{f.T("Route"), r.Origin + " → " + r.Destination})
	}

	distance := f.FormatFloat(r.DistanceKm, 1) + " km"
	if view.ManualDistance {
		distance += " " + SubtleStyle.Render("("+f.T("Distance entered manually")+")")
	}
	rows = append(rows,
		[2]string{f.T("Distance"), distance},
		[2]string{f.T("CO₂ emission"), f.FormatKg(r.EmissionKg) + " 🍃"},
		[2]string{f.T("Transport mode"), ModeTitle(f, r.Mode)},
	)

	if r.Savings != nil {
		rows = append(rows, [2]string{
			f.T("Savings vs %s", ModeLabel(f, r.BaselineMode)),
			renderSavings(f, *r.Savings, r.BaselineMode),
		})
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(f.T("Trip results")))
	content.WriteString("\n")
	content.WriteString(renderRows(rows))

	eq, err := f.Equivalencies(greenops.CarbonInput{Value: r.EmissionKg, Unit: "kg"})
	if err == nil && !eq.IsEmpty {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(eq.DisplayText))
	}

	return card(content.String(), opts, false)
}

func renderSavings(f *greenops.Formatter, s calculator.Savings, baseline emission.Mode) string {
	if s.SavedKg < 0 {
		return CriticalStyle.Render(f.T("%s kg more than %s", f.FormatFloat(-s.SavedKg, 2), ModeLabel(f, baseline)))
	}
	return OKStyle.Render(f.T("%s kg saved", f.FormatFloat(s.SavedKg, 2))) + " " +
		LabelStyle.Render("("+f.T("%s%% less emission", f.FormatFloat(s.Percentage, 1))+")")
}

// RenderComparison renders every mode of ranking with its emission, its
// percentage of the baseline and a bar scaled to the largest emission.
// The selected mode carries a badge. A sustainability tip closes the card.
func RenderComparison(
	f *greenops.Formatter,
	ranking []calculator.ModeEmission,
	selected, baseline emission.Mode,
	opts RenderOptions,
) string {
	if len(ranking) == 0 {
		return InfoStyle.Render(f.T("No results to display."))
	}

	maxKg := 0.0
	for _, m := range ranking {
		maxKg = max(maxKg, m.EmissionKg)
	}

	barCells := min(defaultBarCells, opts.width()-borderPadding*2)
	baselineLabel := ModeLabel(f, baseline)

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(f.T("Mode comparison")))
	for _, m := range ranking {
		content.WriteString("\n\n")
		title := ModeTitle(f, m.Mode)
		if m.Mode == selected {
			title += "  " + BadgeStyle.Render(f.T("✓ Selected"))
		}
		content.WriteString(ValueStyle.Render(title))
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render(
			f.FormatKg(m.EmissionKg) + " CO₂   " +
				f.T("%s%% vs %s", f.FormatFloat(m.PercentVsCar, 1), baselineLabel)))
		content.WriteString("\n")
		content.WriteString(RenderBar(BarFraction(m.EmissionKg, maxKg), barCells, BarColor(m.PercentVsCar)))
	}

	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render(
		f.T("💡 Tip: cycling is the most sustainable option! Bus and bicycle emit less than a car.")))

	return card(content.String(), opts, false)
}

// CreditsView is what the credits card shows.
type CreditsView struct {
	EmissionKg  float64
	Credits     float64
	Price       calculator.PriceEstimate
	KgPerCredit float64
}

// RenderCredits renders the credits needed to offset an emission and their
// price band.
func RenderCredits(f *greenops.Formatter, view CreditsView, opts RenderOptions) string {
	kgPerCredit := f.FormatNumber(int64(calculator.Round(view.KgPerCredit, 0)))
	cur := view.Price.Currency

	rows := [][2]string{
		{f.T("CO₂ emission"), f.FormatKg(view.EmissionKg)},
		{f.T("Credits needed"), f.FormatFloat(view.Credits, calculator.CreditPrecision)},
		{f.T("Estimated price"), f.FormatCurrency(view.Price.Average, cur)},
		{"", f.FormatCurrency(view.Price.Min, cur) + " - " + f.FormatCurrency(view.Price.Max, cur)},
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(f.T("Carbon credits")))
	content.WriteString("\n")
	content.WriteString(renderRows(rows))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render(f.T("1 credit = %s kg CO₂", kgPerCredit)))
	content.WriteString("\n\n")
	content.WriteString(LabelStyle.Render(f.T("What are carbon credits?")))
	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Width(opts.width() - borderPadding*2).Render(
		f.T("A carbon credit represents the reduction or removal of %s kg of CO₂ from the atmosphere. "+
			"Credits can be bought to offset your emissions and fund environmental projects.", kgPerCredit)))

	return card(content.String(), opts, true)
}

// renderRows aligns label/value pairs in two columns.
func renderRows(rows [][2]string) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := r[0]
		if label != "" {
			label += ":"
		}
		lines = append(lines, LabelStyle.Width(labelWidth+2).Render(label)+" "+ValueStyle.Render(r[1]))
	}
	return strings.Join(lines, "\n")
}

func card(content string, opts RenderOptions, highlight bool) string {
	if opts.Plain {
		return content
	}
	style := BoxStyle
	if highlight {
		style = HighlightBoxStyle
	}
	return style.Width(opts.width() - borderPadding).Render(content)
}

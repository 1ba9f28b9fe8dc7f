package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/greenops"
)

// Default dimensions for the comparison model.
const (
	comparisonDefaultWidth  = 80
	comparisonDefaultHeight = 8
)

// ComparisonModel is the Bubble Tea model that lets the user browse every
// mode for one distance and pick one. The credits card follows the cursor.
type ComparisonModel struct {
	calc      *calculator.Calculator
	formatter *greenops.Formatter
	distance  float64
	ranking   []calculator.ModeEmission

	table    table.Model
	selected emission.Mode
	chosen   bool
	quitting bool
	width    int
}

// NewComparisonModel builds the model over a precomputed ranking. initial
// positions the cursor on that mode when present.
func NewComparisonModel(
	calc *calculator.Calculator,
	f *greenops.Formatter,
	distanceKm float64,
	ranking []calculator.ModeEmission,
	initial emission.Mode,
) *ComparisonModel {
	columns := []table.Column{
		{Title: f.T("Mode"), Width: 18},              //nolint:mnd // Column width.
		{Title: f.T("Emission (kg CO₂)"), Width: 18}, //nolint:mnd // Column width.
		{Title: "%", Width: 10},                      //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(ranking))
	cursor := 0
	for i, m := range ranking {
		rows[i] = table.Row{
			ModeTitle(f, m.Mode),
			f.FormatFloat(m.EmissionKg, calculator.DisplayPrecision),
			f.FormatFloat(m.PercentVsCar, 1),
		}
		if m.Mode == initial {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(len(rows)+1, comparisonDefaultHeight)),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	t.SetCursor(cursor)

	return &ComparisonModel{
		calc:      calc,
		formatter: f,
		distance:  distanceKm,
		ranking:   ranking,
		table:     t,
		width:     comparisonDefaultWidth,
	}
}

// Init implements tea.Model.
func (m *ComparisonModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ComparisonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if mode, ok := m.Highlighted(); ok {
				m.selected = mode
				m.chosen = true
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ComparisonModel) View() string {
	if m.quitting {
		return ""
	}

	f := m.formatter
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(f.T("Mode comparison")))
	b.WriteString("  ")
	b.WriteString(LabelStyle.Render(f.FormatFloat(m.distance, 1) + " km"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	if mode, ok := m.Highlighted(); ok {
		b.WriteString(m.creditsFor(mode))
		b.WriteString("\n")
	}
	b.WriteString(SubtleStyle.Render(f.T("↑/↓ move • enter select • q quit")))
	return b.String()
}

// Highlighted returns the mode under the cursor.
func (m *ComparisonModel) Highlighted() (emission.Mode, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.ranking) {
		return "", false
	}
	return m.ranking[i].Mode, true
}

// Selected returns the mode chosen with enter, if any.
func (m *ComparisonModel) Selected() (emission.Mode, bool) {
	return m.selected, m.chosen
}

func (m *ComparisonModel) creditsFor(mode emission.Mode) string {
	var kg float64
	for _, r := range m.ranking {
		if r.Mode == mode {
			kg = r.EmissionKg
			break
		}
	}
	credits := m.calc.CreditsFor(kg)
	return RenderCredits(m.formatter, CreditsView{
		EmissionKg:  kg,
		Credits:     credits,
		Price:       m.calc.PriceEstimate(credits),
		KgPerCredit: m.calc.Model().CreditConversionRatio(),
	}, RenderOptions{Width: m.width})
}

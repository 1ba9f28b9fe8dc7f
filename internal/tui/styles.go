package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("#04B575")
	ColorLabel     = lipgloss.Color("#A8A8A8")
	ColorValue     = lipgloss.Color("#FFFFFF")
	ColorMuted     = lipgloss.Color("#626262")
	ColorBorder    = lipgloss.Color("#3C3C3C")
	ColorHighlight = lipgloss.Color("#7D56F4")
	ColorOK        = lipgloss.Color("#00AA00")
	ColorWarning   = lipgloss.Color("#FFB347")
	ColorCritical  = lipgloss.Color("#FF6B6B")
)

// Comparison bar colours by percentage of the baseline emission.
const (
	BarColorLow      = "#00AA00"
	BarColorMedium   = "#FFB347"
	BarColorHigh     = "#FF6B6B"
	BarColorExcess   = "#DC143C"
	BarLowMaxPct     = 25.0
	BarMediumMaxPct  = 75.0
	BarHighMaxPct    = 100.0
	barTrackRune     = "░"
	barFillRune      = "█"
	defaultBarCells  = 30
	defaultCardWidth = 72
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel)

	OKStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorOK)
	WarningStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	BadgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HighlightBoxStyle = BoxStyle.BorderForeground(ColorHighlight)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorValue).
				Background(ColorHighlight)
)

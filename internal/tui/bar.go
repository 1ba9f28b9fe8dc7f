package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarColor returns the hex colour of a comparison bar for an emission that
// is pct percent of the baseline emission.
func BarColor(pct float64) string {
	switch {
	case pct <= BarLowMaxPct:
		return BarColorLow
	case pct <= BarMediumMaxPct:
		return BarColorMedium
	case pct <= BarHighMaxPct:
		return BarColorHigh
	default:
		return BarColorExcess
	}
}

// BarFraction returns emissionKg relative to maxKg in [0, 1]. It is 0 when
// maxKg is not positive.
func BarFraction(emissionKg, maxKg float64) float64 {
	if maxKg <= 0 || emissionKg <= 0 {
		return 0
	}
	return math.Min(emissionKg/maxKg, 1)
}

// RenderBar draws a bar of cells characters filled to fraction.
func RenderBar(fraction float64, cells int, color string) string {
	if cells <= 0 {
		cells = defaultBarCells
	}
	filled := int(math.Round(fraction * float64(cells)))
	if fraction > 0 && filled == 0 {
		filled = 1
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(barFillRune, filled))
	track := SubtleStyle.Render(strings.Repeat(barTrackRune, cells-filled))
	return fill + track
}

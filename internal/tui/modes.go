package tui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/greenops"
)

// ModeInfo is the display metadata of a transport mode.
type ModeInfo struct {
	// Label is the untranslated English name; render it with Formatter.T.
	Label string
	Icon  string
	Color string
}

//nolint:gochecknoglobals // Static display table.
var modeInfo = map[emission.Mode]ModeInfo{
	emission.ModeBicycle: {Label: "Bicycle", Icon: "🚲", Color: "#00AA00"},
	emission.ModeCar:     {Label: "Car", Icon: "🚗", Color: "#FF6B6B"},
	emission.ModeBus:     {Label: "Bus", Icon: "🚌", Color: "#FFB347"},
	emission.ModeTruck:   {Label: "Truck", Icon: "🚚", Color: "#DC143C"},
}

const unknownModeIcon = "🚏"

// InfoFor returns the metadata of mode. Modes added through configuration
// get a title-cased label and a generic icon.
func InfoFor(mode emission.Mode) ModeInfo {
	if info, ok := modeInfo[mode]; ok {
		return info
	}
	return ModeInfo{
		Label: cases.Title(language.Und).String(mode.String()),
		Icon:  unknownModeIcon,
		Color: string(ColorLabel),
	}
}

// ModeLabel returns the translated label of mode, e.g. "Ônibus".
func ModeLabel(f *greenops.Formatter, mode emission.Mode) string {
	return f.T(InfoFor(mode).Label)
}

// ModeTitle returns the icon and translated label, e.g. "🚌 Ônibus".
func ModeTitle(f *greenops.Formatter, mode emission.Mode) string {
	return InfoFor(mode).Icon + " " + ModeLabel(f, mode)
}

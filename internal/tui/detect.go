package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how results are presented on the terminal.
type OutputMode int

const (
	// OutputModePlain writes text without colour or box drawing styles.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss cards.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks an output mode for stdout.
//
// plain forces OutputModePlain. noColor, NO_COLOR, TERM=dumb, CI or a
// non-terminal stdout also select plain output, even when interactive is set.
// Otherwise interactive selects OutputModeInteractive and the default is
// OutputModeStyled.
func DetectOutputMode(interactive, noColor, plain bool) OutputMode {
	return detectOutputMode(interactive, noColor, plain, IsTTY(), os.LookupEnv)
}

func detectOutputMode(
	interactive, noColor, plain, tty bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || noColor || !tty {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, ok := lookupEnv("TERM"); ok && v == "dumb" {
		return OutputModePlain
	}
	if v, ok := lookupEnv("CI"); ok && v != "" && v != "false" {
		return OutputModePlain
	}
	if interactive {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

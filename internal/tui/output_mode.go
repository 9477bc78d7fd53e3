package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results reach the terminal.
type OutputMode int

// Output modes, from richest to plainest.
const (
	// OutputModeInteractive runs the full-screen browser.
	OutputModeInteractive OutputMode = iota
	// OutputModeStyled prints one lipgloss-styled page and exits.
	OutputModeStyled
	// OutputModePlain prints undecorated text.
	OutputModePlain
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minWidth      = 40
)

// String returns the mode name used in logs.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	case OutputModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks the richest mode the environment supports.
// plain always wins; forceColor keeps styling even when stdout is redirected.
// NO_COLOR disables styling and CI disables the interactive browser.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if forceColor {
		if IsTTY() && os.Getenv("CI") == "" {
			return OutputModeInteractive
		}
		return OutputModeStyled
	}
	if !IsTTY() || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the stdout width, or a default when it is unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return defaultWidth
	}
	return width
}

// Package output provides TTY and color profile detection shared by the CLI
// commands.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the color profile to use for interactive environments.
// It checks if NO_COLOR is set, returning Ascii if so. Otherwise it detects
// the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsInteractive reports whether w is attached to a terminal. Plain output
// modes (piped stdout, CI logs) should skip styling entirely.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Styled reports whether output to w should carry ANSI styling: an
// interactive terminal with colors not disabled via NO_COLOR.
func Styled(w io.Writer) bool {
	return IsInteractive(w) && ColorProfile() != termenv.Ascii
}

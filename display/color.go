// Copyright © 2026 The clang-complete authors

package display

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// ParseColorMode parses the value of a --color flag.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, errors.WithHint(
		errors.Newf("invalid color mode %q", s),
		`use "auto", "always", or "never"`)
}

// palette holds the ANSI escape sequences for candidate display.
type palette struct {
	bold   string
	dim    string
	cyan   string
	yellow string
	reset  string
}

var ansiPalette = palette{
	bold:   "\033[1m",
	dim:    "\033[2m",
	cyan:   "\033[36m",
	yellow: "\033[33m",
	reset:  "\033[0m",
}

var noPalette = palette{}

// choosePalette selects the appropriate color palette based on the mode
// and the output file descriptor.
func choosePalette(mode ColorMode, w *os.File) palette {
	switch mode {
	case ColorAlways:
		return ansiPalette
	case ColorNever:
		return noPalette
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return noPalette
		}
		if !isTerminal(w) {
			return noPalette
		}
		return ansiPalette
	}
}

// isTerminal reports whether f is connected to a terminal. Tests replace it.
var isTerminal = fileIsTerminal

func fileIsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Copyright © 2026 The clang-complete authors

// Package input decodes completion candidates produced by an analysis
// engine into completion.Candidate values.
package input

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
)

// Format names an input encoding.
type Format int

const (
	// FormatAuto picks a format from the file extension.
	FormatAuto Format = iota
	// FormatClang is the text printed by clang -cc1 -code-completion-at.
	FormatClang
	// FormatYAML is a YAML (or JSON) list of chunk trees.
	FormatYAML
)

var formatStrings = []string{
	FormatAuto:  "auto",
	FormatClang: "clang",
	FormatYAML:  "yaml",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatStrings) {
		return "unknown"
	}
	return formatStrings[f]
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "clang":
		return FormatClang, nil
	case "yaml", "yml", "json":
		return FormatYAML, nil
	}
	return FormatAuto, errors.WithHint(
		errors.Newf("unknown input format %q", s),
		`valid formats are "auto", "clang" and "yaml"`)
}

// FormatForPath resolves FormatAuto using the extension of path.
func FormatForPath(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML
	default:
		return FormatClang
	}
}

// Decode reads all candidates from r. name is used in error messages.
func Decode(r io.Reader, name string, f Format) ([]completion.Candidate, error) {
	switch FormatForPath(f, name) {
	case FormatYAML:
		return DecodeYAML(r, name)
	default:
		return DecodeClang(r, name)
	}
}

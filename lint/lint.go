// Copyright © 2026 The clang-complete authors

// Package lint checks candidate sets for shapes the completion printer
// silently drops or renders oddly.
//
// Each check is an independent Analyzer that receives the decoded
// candidates of one file and reports diagnostics, in the style of go vet.
// Embedders can define custom checks alongside the built-in set.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
)

// Severity indicates the severity level of a lint diagnostic.
type Severity int

const (
	severityUnset Severity = iota // unexported zero sentinel for default detection
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
// An unset severity (zero value) is marshaled as "warning".
func (s Severity) MarshalJSON() ([]byte, error) {
	if s == severityUnset {
		return json.Marshal("warning")
	}
	return json.Marshal(s.String())
}

// Analyzer defines a single lint check.
type Analyzer struct {
	// Name is a short identifier for this check (e.g. "no-typed-text").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Severity is the default severity for diagnostics from this analyzer.
	Severity Severity

	// Run executes the check. It should call pass.Report() for each finding.
	Run func(pass *Pass) error
}

// Pass provides context to a running analyzer.
type Pass struct {
	// Analyzer is the currently running check.
	Analyzer *Analyzer

	// Filename names the candidate source.
	Filename string

	// Candidates are the decoded candidates in input order.
	Candidates []completion.Candidate

	diagnostics []Diagnostic
}

// Report records a diagnostic finding.
func (p *Pass) Report(d Diagnostic) {
	d.Analyzer = p.Analyzer.Name
	if d.Severity == severityUnset {
		d.Severity = p.Analyzer.Severity
	}
	p.diagnostics = append(p.diagnostics, d)
}

// Reportf reports a diagnostic for the candidate at index.
func (p *Pass) Reportf(index int, format string, args ...interface{}) {
	p.Report(Diagnostic{
		Pos:     Position{File: p.Filename, Candidate: index + 1},
		Message: fmt.Sprintf(format, args...),
	})
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Pos      Position `json:"pos"`
	Message  string   `json:"message"`
	Analyzer string   `json:"analyzer"`
	Severity Severity `json:"severity"`
}

// Position identifies a candidate within a file. Candidate is 1-based.
type Position struct {
	File      string `json:"file"`
	Candidate int    `json:"candidate"`
}

func (p Position) String() string {
	return fmt.Sprintf("%s: candidate %d", p.File, p.Candidate)
}

// String returns the diagnostic in go vet style: pos: message (analyzer).
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Analyzer)
}

// Linter runs a set of analyzers over candidate sets.
type Linter struct {
	Analyzers []*Analyzer
}

// Lint runs every analyzer over candidates and returns the diagnostics
// ordered by candidate.
func (l *Linter) Lint(filename string, candidates []completion.Candidate) ([]Diagnostic, error) {
	var all []Diagnostic
	for _, analyzer := range l.Analyzers {
		pass := &Pass{
			Analyzer:   analyzer,
			Filename:   filename,
			Candidates: candidates,
		}
		if err := analyzer.Run(pass); err != nil {
			return nil, errors.Wrapf(err, "%s: analyzer %s", filename, analyzer.Name)
		}
		all = append(all, pass.diagnostics...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Pos.File != all[j].Pos.File {
			return all[i].Pos.File < all[j].Pos.File
		}
		return all[i].Pos.Candidate < all[j].Pos.Candidate
	})
	return all, nil
}

// FormatText writes diagnostics in go vet text format.
func FormatText(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatJSON writes diagnostics as JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

// DefaultAnalyzers returns the built-in set of lint checks.
func DefaultAnalyzers() []*Analyzer {
	return []*Analyzer{
		AnalyzerNoTypedText,
		AnalyzerMultipleTypedText,
		AnalyzerNestedTypedText,
		AnalyzerEmptyTypedText,
		AnalyzerEmptyOptional,
	}
}

// AnalyzerNames returns the names of the default analyzers.
func AnalyzerNames() []string {
	var names []string
	for _, a := range DefaultAnalyzers() {
		names = append(names, a.Name)
	}
	return names
}

// AnalyzerDoc returns one "name  summary" line per default analyzer.
func AnalyzerDoc() string {
	var b strings.Builder
	for _, a := range DefaultAnalyzers() {
		summary, _, _ := strings.Cut(a.Doc, "\n")
		fmt.Fprintf(&b, "  %-20s %s\n", a.Name, summary)
	}
	return b.String()
}

// SelectAnalyzers returns the default analyzers named in names.
func SelectAnalyzers(names []string) ([]*Analyzer, error) {
	byName := make(map[string]*Analyzer)
	for _, a := range DefaultAnalyzers() {
		byName[a.Name] = a
	}
	var out []*Analyzer
	for _, name := range names {
		a, ok := byName[strings.TrimSpace(name)]
		if !ok {
			return nil, errors.WithHint(
				errors.Newf("unknown check: %s", name),
				"run with --list to see available checks")
		}
		out = append(out, a)
	}
	return out, nil
}

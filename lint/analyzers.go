// Copyright © 2026 The clang-complete authors

package lint

import "github.com/luthersystems/clang-complete/completion"

// AnalyzerNoTypedText reports candidates the printer skips because they
// have no typed text.
var AnalyzerNoTypedText = &Analyzer{
	Name:     "no-typed-text",
	Doc:      "Report candidates without a typed-text chunk.\n\nSuch candidates are never printed. clang emits them for code patterns; anything else usually means the producer lost a chunk.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		for i, c := range pass.Candidates {
			if CountKind(c, completion.KindTypedText) == 0 {
				pass.Reportf(i, "candidate %q has no typed-text chunk and is never printed", completion.Render(c))
			}
		}
		return nil
	},
}

// AnalyzerMultipleTypedText reports candidates with more than one
// top-level typed-text chunk. Only the first one is used.
var AnalyzerMultipleTypedText = &Analyzer{
	Name:     "multiple-typed-text",
	Doc:      "Report candidates with more than one typed-text chunk.\n\nOnly the first typed-text chunk is used for filtering and as the head term.",
	Severity: SeverityError,
	Run: func(pass *Pass) error {
		for i, c := range pass.Candidates {
			if n := CountKind(c, completion.KindTypedText); n > 1 {
				pass.Reportf(i, "candidate has %d typed-text chunks; only %q is used",
					n, completion.FindHeadMatch(c, "").Text)
			}
		}
		return nil
	},
}

// AnalyzerNestedTypedText reports typed text inside optional groups, which
// head lookup never sees.
var AnalyzerNestedTypedText = &Analyzer{
	Name:     "nested-typed-text",
	Doc:      "Report typed-text chunks inside optional groups.\n\nHead lookup only scans top-level chunks.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		for i, c := range pass.Candidates {
			WalkChunks(c, func(chunk completion.Chunk, depth int) {
				if depth > 0 && chunk.Kind == completion.KindTypedText {
					pass.Reportf(i, "typed text %q inside an optional group is ignored", chunk.Text)
				}
			})
		}
		return nil
	},
}

// AnalyzerEmptyTypedText reports empty head terms, which match every
// prefix.
var AnalyzerEmptyTypedText = &Analyzer{
	Name:     "empty-typed-text",
	Doc:      "Report typed-text chunks with empty text.\n\nAn empty head term matches every prefix.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		for i, c := range pass.Candidates {
			m := completion.FindHeadMatch(c, "")
			if m.Result == completion.Matched && m.Text == "" {
				pass.Reportf(i, "typed text is empty and matches every prefix")
			}
		}
		return nil
	},
}

// AnalyzerEmptyOptional reports optional groups with nothing in them.
var AnalyzerEmptyOptional = &Analyzer{
	Name:     "empty-optional",
	Doc:      "Report optional groups without chunks.\n\nThey render as {##} and carry no information.",
	Severity: SeverityInfo,
	Run: func(pass *Pass) error {
		for i, c := range pass.Candidates {
			WalkChunks(c, func(chunk completion.Chunk, _ int) {
				if chunk.Kind == completion.KindOptional && len(chunk.Nested) == 0 {
					pass.Reportf(i, "empty optional group")
				}
			})
		}
		return nil
	},
}

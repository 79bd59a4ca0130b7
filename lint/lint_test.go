// Copyright © 2026 The clang-complete authors

package lint

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/luthersystems/clang-complete/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintCandidates(t *testing.T, analyzer *Analyzer, candidates ...completion.Candidate) []Diagnostic {
	t.Helper()
	l := &Linter{Analyzers: []*Analyzer{analyzer}}
	diags, err := l.Lint("test.txt", candidates)
	require.NoError(t, err)
	return diags
}

func TestNoTypedText(t *testing.T) {
	diags := lintCandidates(t, AnalyzerNoTypedText,
		completion.Candidate{completion.TypedText("ok")},
		completion.Candidate{completion.Text("static_cast<"), completion.Placeholder("type")},
	)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Pos.Candidate)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "static_cast<<#type#>")
}

func TestMultipleTypedText(t *testing.T) {
	diags := lintCandidates(t, AnalyzerMultipleTypedText,
		completion.Candidate{completion.TypedText("a"), completion.TypedText("b")},
		completion.Candidate{completion.TypedText("c"), completion.Optional(completion.TypedText("d"))},
	)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Pos.Candidate)
	assert.Contains(t, diags[0].Message, `"a"`)
}

func TestNestedTypedText(t *testing.T) {
	diags := lintCandidates(t, AnalyzerNestedTypedText,
		completion.Candidate{completion.TypedText("c"), completion.Optional(completion.Optional(completion.TypedText("d")))},
	)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"d"`)
}

func TestEmptyTypedText(t *testing.T) {
	diags := lintCandidates(t, AnalyzerEmptyTypedText,
		completion.Candidate{completion.TypedText("")},
		completion.Candidate{completion.TypedText("x")},
	)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Pos.Candidate)
}

func TestEmptyOptional(t *testing.T) {
	diags := lintCandidates(t, AnalyzerEmptyOptional,
		completion.Candidate{completion.TypedText("f"), completion.Optional(completion.Optional())},
	)
	// The outer group holds the inner one; only the inner group is empty.
	require.Len(t, diags, 1)
	assert.Equal(t, SeverityInfo, diags[0].Severity)
}

func TestLinterOrdersByCandidate(t *testing.T) {
	l := &Linter{Analyzers: DefaultAnalyzers()}
	diags, err := l.Lint("out.txt", []completion.Candidate{
		{completion.TypedText("a"), completion.TypedText("b")},
		{completion.Text("pattern")},
		{completion.TypedText(""), completion.Optional()},
	})
	require.NoError(t, err)
	require.Len(t, diags, 4)
	var got []string
	for _, d := range diags {
		got = append(got, d.Analyzer)
	}
	assert.Equal(t, []string{"multiple-typed-text", "no-typed-text", "empty-typed-text", "empty-optional"}, got)
	assert.Equal(t, "out.txt: candidate 1: candidate has 2 typed-text chunks; only \"a\" is used (multiple-typed-text)", diags[0].String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatJSON(&buf, []Diagnostic{{
		Pos:      Position{File: "f", Candidate: 3},
		Message:  "m",
		Analyzer: "a",
	}}))
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "warning", decoded[0]["severity"])
}

func TestSelectAnalyzers(t *testing.T) {
	got, err := SelectAnalyzers([]string{"empty-optional", " no-typed-text"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Same(t, AnalyzerEmptyOptional, got[0])

	_, err = SelectAnalyzers([]string{"bogus"})
	assert.Error(t, err)

	assert.Len(t, AnalyzerNames(), len(DefaultAnalyzers()))
	assert.True(t, strings.Contains(AnalyzerDoc(), "no-typed-text"))
}

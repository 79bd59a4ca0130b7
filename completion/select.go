// Copyright © 2026 The clang-complete authors

package completion

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// LinePrefix starts every protocol line.
const LinePrefix = "COMPLETION: "

// bodySeparator separates the head term from the rendered chunks.
const bodySeparator = " : "

// MatchResult is the outcome of looking up a candidate's head term.
type MatchResult int

const (
	Matched MatchResult = iota
	NoTypedTextChunk
	PrefixMismatch
)

func (r MatchResult) String() string {
	switch r {
	case Matched:
		return "matched"
	case NoTypedTextChunk:
		return "no-typed-text"
	case PrefixMismatch:
		return "prefix-mismatch"
	default:
		return "unknown"
	}
}

// HeadMatch describes the head term of a candidate. Text and ChunkCount are
// only meaningful when Result is Matched.
type HeadMatch struct {
	Result     MatchResult
	Text       string
	ChunkCount int
}

// FindHeadMatch locates the first TypedText chunk of c and tests it against
// prefix.
func FindHeadMatch(c Candidate, prefix string) HeadMatch {
	for _, chunk := range c {
		if chunk.Kind != KindTypedText {
			continue
		}
		if !HasPrefixFold(prefix, chunk.Text) {
			return HeadMatch{Result: PrefixMismatch}
		}
		return HeadMatch{Result: Matched, Text: chunk.Text, ChunkCount: len(c)}
	}
	return HeadMatch{Result: NoTypedTextChunk}
}

// HasPrefixFold compares prefix and s byte by byte, ignoring ASCII case,
// until the end of the shorter string. It reports false on the first
// unequal pair. An empty prefix always matches, and a prefix longer than s
// matches when s is a prefix of it.
func HasPrefixFold(prefix, s string) bool {
	n := len(prefix)
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		if upper(prefix[i]) != upper(s[i]) {
			return false
		}
	}
	return true
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// WriteCandidateLine writes the protocol line for a matched candidate. The
// body is only written when the candidate has more than its typed text, and
// only such lines are reported as emitted.
func WriteCandidateLine(w io.Writer, c Candidate, head HeadMatch) (bool, error) {
	var b strings.Builder
	b.WriteString(LinePrefix)
	b.WriteString(head.Text)
	emitted := head.ChunkCount > 1
	if emitted {
		b.WriteString(bodySeparator)
		AppendRender(&b, c)
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return false, errors.Wrapf(err, "writing completion %q", head.Text)
	}
	return emitted, nil
}

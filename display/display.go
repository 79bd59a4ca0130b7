// Copyright © 2026 The clang-complete authors

// Package display renders completion candidates for people rather than
// editor clients. Placeholders, result types and optional groups are shown
// with colors instead of the <# #> style markers.
package display

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/luthersystems/clang-complete/completion"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// tail marks a line cut at the display width.
const tail = "…"

// Renderer formats candidates as an aligned two column listing: the typed
// text, then the highlighted signature.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// Width truncates each line to this many cells. Zero disables
	// truncation.
	Width int
}

// Render writes the candidates matching prefix to w, at most max of them,
// and returns how many were written. A max of zero or less means no limit.
func (r *Renderer) Render(w io.Writer, candidates []completion.Candidate, prefix string, max int) (int, error) {
	p := choosePalette(r.Color, fileFromWriter(w))

	type row struct {
		head string
		sig  string
	}
	var rows []row
	headWidth := 0
	for _, c := range candidates {
		if max > 0 && len(rows) >= max {
			break
		}
		m := completion.FindHeadMatch(c, prefix)
		if m.Result != completion.Matched {
			continue
		}
		rows = append(rows, row{head: m.Text, sig: signature(c, p)})
		if n := len([]rune(m.Text)); n > headWidth {
			headWidth = n
		}
	}

	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}
	for _, rw := range rows {
		line := padding.String(p.bold+rw.head+p.reset, uint(headWidth)) + "  " + rw.sig
		if r.Width > 0 {
			line = truncate.StringWithTail(line, uint(r.Width), tail)
		}
		ew.print(strings.TrimRight(line, " "))
		ew.print("\n")
	}
	if ew.err != nil {
		return 0, ew.err
	}
	return len(rows), bw.Flush()
}

// signature returns the human readable signature of c. With an empty
// palette the result is plain text, e.g. "int printf(const char *fmt[, ...])".
func signature(c completion.Candidate, p palette) string {
	var b strings.Builder
	highlight(&b, c, p)
	return b.String()
}

// Plain returns the signature of c without any escape codes.
func Plain(c completion.Candidate) string {
	return signature(c, noPalette)
}

func highlight(b *strings.Builder, c completion.Candidate, p palette) {
	for _, chunk := range c {
		switch chunk.Kind {
		case completion.KindPlaceholder:
			b.WriteString(p.cyan)
			b.WriteString(chunk.Text)
			b.WriteString(p.reset)
		case completion.KindResultType:
			b.WriteString(p.yellow)
			b.WriteString(chunk.Text)
			b.WriteString(p.reset)
			b.WriteByte(' ')
		case completion.KindOptional:
			b.WriteString(p.dim)
			b.WriteByte('[')
			b.WriteString(p.reset)
			highlight(b, chunk.Nested, p)
			b.WriteString(p.dim)
			b.WriteByte(']')
			b.WriteString(p.reset)
		case completion.KindTypedText:
			b.WriteString(p.bold)
			b.WriteString(chunk.Text)
			b.WriteString(p.reset)
		default:
			b.WriteString(chunk.Text)
		}
	}
}

// errWriter wraps a writer and captures the first error, short-circuiting
// subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// fileFromWriter attempts to extract an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

// Copyright © 2026 The clang-complete authors

package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
	parsec "github.com/prataprc/goparsec"
)

// Lines printed by clang for -code-completion-at look like
//
//	COMPLETION: name
//	COMPLETION: name : [#int#]name(<#int x#>{#, <#int y#>#})
//
// The body after " : " follows this grammar:
//
//	seq         := piece*
//	piece       := placeholder | resulttype | optional | text
//	placeholder := '<#' [^#]* '#>'
//	resulttype  := '[#' [^#]* '#]'
//	optional    := '{#' seq '#}'
//	text        := [^<[{#]+ | [<[{]
//
// '#' only appears as part of a group delimiter.

const headSeparator = " : "

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// DecodeClang reads clang completion output. Lines other than COMPLETION
// lines are ignored.
func DecodeClang(r io.Reader, name string) ([]completion.Candidate, error) {
	var out []completion.Candidate
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimRight(sc.Text(), "\r")
		rest, ok := strings.CutPrefix(line, completion.LinePrefix)
		if !ok {
			continue
		}
		c, err := ParseClangLine(rest)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineno)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return out, nil
}

// ParseClangLine parses the text following "COMPLETION: ". The first
// top-level text run that starts with the head term becomes the TypedText
// chunk. Bodies that never spell out the head term, like clang's Pattern
// results, produce a candidate without TypedText.
func ParseClangLine(s string) (completion.Candidate, error) {
	head, body, hasBody := strings.Cut(s, headSeparator)
	if !hasBody {
		return completion.Candidate{completion.TypedText(head)}, nil
	}
	seq, err := ParseBody(body)
	if err != nil {
		return nil, err
	}
	return markTypedText(seq, head), nil
}

// ParseBody parses an annotated chunk string back into chunks. Plain text
// is returned as KindOther chunks.
func ParseBody(body string) (completion.Candidate, error) {
	if body == "" {
		return completion.Candidate{}, nil
	}
	text := []byte(body)
	s := parsec.NewScanner(text)
	root, s := newBodyParser()(s)
	if !s.Endof() {
		pos := s.GetCursor()
		rest := body[pos:]
		if len(rest) > 16 {
			rest = rest[:16] + "..."
		}
		return nil, errors.Newf("column %d: unexpected text in completion body: %s", pos+1, rest)
	}
	seq, ok := root.(completion.Candidate)
	if !ok {
		return nil, errors.Newf("unparsable completion body: %s", body)
	}
	return seq, nil
}

func newBodyParser() parsec.Parser {
	phOpen := parsec.AtomExact(completion.PlaceholderOpen, "PHOPEN")
	phClose := parsec.AtomExact(completion.PlaceholderClose, "PHCLOSE")
	rtOpen := parsec.AtomExact(completion.ResultTypeOpen, "RTOPEN")
	rtClose := parsec.AtomExact(completion.ResultTypeClose, "RTCLOSE")
	optOpen := parsec.AtomExact(completion.OptionalOpen, "OPTOPEN")
	optClose := parsec.AtomExact(completion.OptionalClose, "OPTCLOSE")

	inner := parsec.TokenExact(`[^#]+`, "INNER")
	run := parsec.TokenExact(`[^<\[{#]+`, "TEXT")
	delim := parsec.TokenExact(`[<\[{]`, "TEXT")

	placeholder := parsec.OrdChoice(leaf(completion.KindPlaceholder),
		parsec.And(nil, phOpen, inner, phClose),
		parsec.And(nil, phOpen, phClose),
	)
	resultType := parsec.OrdChoice(leaf(completion.KindResultType),
		parsec.And(nil, rtOpen, inner, rtClose),
		parsec.And(nil, rtOpen, rtClose),
	)

	var seq parsec.Parser // forward declaration for nested optional groups
	optional := parsec.And(optionalNode, optOpen, &seq, optClose)
	piece := parsec.OrdChoice(nil, placeholder, resultType, optional, run, delim)
	seq = parsec.Kleene(seqNode, piece)
	return seq
}

// leaf builds a text-carrying chunk from an open/inner/close match.
func leaf(kind completion.Kind) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		terms := flattenTerminals(nodes)
		var text string
		for _, t := range terms {
			if t.Name == "INNER" {
				text = t.Value
			}
		}
		return completion.Chunk{Kind: kind, Text: text}
	}
}

func optionalNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	for _, n := range nodes {
		if seq, ok := n.(completion.Candidate); ok {
			return completion.Chunk{Kind: completion.KindOptional, Nested: seq}
		}
	}
	return completion.Chunk{Kind: completion.KindOptional, Nested: completion.Candidate{}}
}

// seqNode collects pieces into a Candidate, joining adjacent text pieces.
func seqNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	seq := completion.Candidate{}
	appendText := func(s string) {
		if n := len(seq); n > 0 && seq[n-1].Kind == completion.KindOther {
			seq[n-1].Text += s
			return
		}
		seq = append(seq, completion.Text(s))
	}
	var walk func([]parsec.ParsecNode)
	walk = func(nodes []parsec.ParsecNode) {
		for _, n := range nodes {
			switch n := n.(type) {
			case completion.Chunk:
				seq = append(seq, n)
			case *parsec.Terminal:
				appendText(n.Value)
			case []parsec.ParsecNode:
				walk(n)
			}
		}
	}
	walk(nodes)
	return seq
}

func flattenTerminals(nodes []parsec.ParsecNode) []*parsec.Terminal {
	var out []*parsec.Terminal
	for _, n := range nodes {
		switch n := n.(type) {
		case *parsec.Terminal:
			out = append(out, n)
		case []parsec.ParsecNode:
			out = append(out, flattenTerminals(n)...)
		}
	}
	return out
}

func markTypedText(seq completion.Candidate, head string) completion.Candidate {
	if head == "" {
		return seq
	}
	for i, chunk := range seq {
		if chunk.Kind != completion.KindOther || !strings.HasPrefix(chunk.Text, head) {
			continue
		}
		out := make(completion.Candidate, 0, len(seq)+1)
		out = append(out, seq[:i]...)
		out = append(out, completion.TypedText(head))
		if rest := chunk.Text[len(head):]; rest != "" {
			out = append(out, completion.Text(rest))
		}
		return append(out, seq[i+1:]...)
	}
	return seq
}

// Copyright © 2026 The clang-complete authors

// Package completion renders code-completion candidates into the
// line-oriented protocol read by editor clients:
//
//	COMPLETION: <typed-text>
//	COMPLETION: <typed-text> : <rendered-chunks>
//
// A candidate is an ordered sequence of chunks produced by the analysis
// engine. Rendered chunks use the annotated grammar <#placeholder#>,
// [#result-type#] and {#optional#}, the same grammar clang prints for
// -code-completion-at.
package completion

import "strings"

// Kind identifies how a chunk is rendered.
type Kind int

const (
	// KindOther covers every chunk without special treatment: plain text,
	// keywords, punctuation, informative text.
	KindOther Kind = iota
	KindTypedText
	KindPlaceholder
	KindResultType
	KindOptional
)

var kindStrings = []string{
	KindOther:       "text",
	KindTypedText:   "typed-text",
	KindPlaceholder: "placeholder",
	KindResultType:  "result-type",
	KindOptional:    "optional",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return "text"
	}
	return kindStrings[k]
}

// ParseKind maps a kind name to a Kind. Names are matched case-insensitively
// and underscores are accepted in place of dashes. Unknown names map to
// KindOther because the engine has many more chunk kinds than the renderer
// distinguishes.
func ParseKind(name string) Kind {
	name = strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	switch name {
	case "typed-text", "typedtext":
		return KindTypedText
	case "placeholder":
		return KindPlaceholder
	case "result-type", "resulttype":
		return KindResultType
	case "optional":
		return KindOptional
	default:
		return KindOther
	}
}

// Chunk is one typed fragment of a candidate. Text holds the payload for
// every kind except KindOptional, whose content lives in Nested.
type Chunk struct {
	Kind   Kind
	Text   string
	Nested Candidate
}

// Candidate is one proposed completion. A well formed candidate has exactly
// one KindTypedText chunk.
type Candidate []Chunk

// TypedText returns the chunk holding what the user types.
func TypedText(text string) Chunk { return Chunk{Kind: KindTypedText, Text: text} }

// Placeholder returns a chunk the user is expected to fill in.
func Placeholder(text string) Chunk { return Chunk{Kind: KindPlaceholder, Text: text} }

// ResultType returns a chunk describing the type of the completed entity.
func ResultType(text string) Chunk { return Chunk{Kind: KindResultType, Text: text} }

// Text returns a plain chunk rendered verbatim.
func Text(text string) Chunk { return Chunk{Kind: KindOther, Text: text} }

// Optional returns a chunk grouping an optional sub-sequence.
func Optional(nested ...Chunk) Chunk {
	return Chunk{Kind: KindOptional, Nested: Candidate(nested)}
}

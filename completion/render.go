// Copyright © 2026 The clang-complete authors

package completion

import "strings"

// Grammar delimiters for annotated chunks.
const (
	PlaceholderOpen  = "<#"
	PlaceholderClose = "#>"
	ResultTypeOpen   = "[#"
	ResultTypeClose  = "#]"
	OptionalOpen     = "{#"
	OptionalClose    = "#}"
)

// Render serializes c into the annotated chunk grammar. Adjacent chunks are
// concatenated without separators.
func Render(c Candidate) string {
	var b strings.Builder
	AppendRender(&b, c)
	return b.String()
}

// AppendRender writes the rendering of c to b. Optional chunks recurse into
// their nested sequence.
func AppendRender(b *strings.Builder, c Candidate) {
	for _, chunk := range c {
		switch chunk.Kind {
		case KindPlaceholder:
			b.WriteString(PlaceholderOpen)
			b.WriteString(chunk.Text)
			b.WriteString(PlaceholderClose)
		case KindResultType:
			b.WriteString(ResultTypeOpen)
			b.WriteString(chunk.Text)
			b.WriteString(ResultTypeClose)
		case KindOptional:
			b.WriteString(OptionalOpen)
			AppendRender(b, chunk.Nested)
			b.WriteString(OptionalClose)
		default:
			b.WriteString(chunk.Text)
		}
	}
}

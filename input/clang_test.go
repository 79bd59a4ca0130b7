// Copyright © 2026 The clang-complete authors

package input

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/luthersystems/clang-complete/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClangLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want completion.Candidate
	}{
		{
			name: "bare",
			line: "short",
			want: completion.Candidate{completion.TypedText("short")},
		},
		{
			name: "function",
			line: "printf : [#int#]printf(<#const char *restrict format, ...#>)",
			want: completion.Candidate{
				completion.ResultType("int"),
				completion.TypedText("printf"),
				completion.Text("("),
				completion.Placeholder("const char *restrict format, ..."),
				completion.Text(")"),
			},
		},
		{
			name: "nested optional",
			line: "f : [#void#]f(<#int a#>{#, <#int b#>{#, <#int c#>#}#})",
			want: completion.Candidate{
				completion.ResultType("void"),
				completion.TypedText("f"),
				completion.Text("("),
				completion.Placeholder("int a"),
				completion.Optional(
					completion.Text(", "),
					completion.Placeholder("int b"),
					completion.Optional(completion.Text(", "), completion.Placeholder("int c")),
				),
				completion.Text(")"),
			},
		},
		{
			name: "pattern has no typed text",
			line: "Pattern : static_cast<<#type#>>(<#expression#>)",
			want: completion.Candidate{
				completion.Text("static_cast<"),
				completion.Placeholder("type"),
				completion.Text(">("),
				completion.Placeholder("expression"),
				completion.Text(")"),
			},
		},
		{
			name: "empty groups",
			line: "g : g{##}<##>[##]",
			want: completion.Candidate{
				completion.TypedText("g"),
				completion.Optional(),
				completion.Placeholder(""),
				completion.ResultType(""),
			},
		},
		{
			name: "head equals whole text run",
			line: "size : [#size_t#]size",
			want: completion.Candidate{
				completion.ResultType("size_t"),
				completion.TypedText("size"),
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClangLine(tc.line)
			require.NoError(t, err)
			if diff := cmp.Diff(normalize(tc.want), normalize(got)); diff != "" {
				t.Errorf("ParseClangLine(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

// normalize replaces nil nested sequences with empty ones so cmp treats
// both spellings of an empty optional alike.
func normalize(c completion.Candidate) completion.Candidate {
	out := make(completion.Candidate, 0, len(c))
	for _, chunk := range c {
		if chunk.Kind == completion.KindOptional {
			chunk.Nested = normalize(chunk.Nested)
		}
		out = append(out, chunk)
	}
	return out
}

func TestParseBodyRoundTrip(t *testing.T) {
	bodies := []string{
		"[#int#]printf(<#const char *format, ...#>)",
		"[#void#]resize(<#size_type n#>{#, <#value_type c#>{#, <#alloc a#>#}#})",
		"static_cast<<#type#>>(<#expression#>)",
		"[#std::vector<int>#]v",
		"operator[](<#size_t i#>)",
		"x{##}",
		"a <b {c [d",
		"define <#macro#>",
		"[#size_type#]size()[# const#]",
		"  lead{# <# spaced #> #}trail  ",
	}
	for _, body := range bodies {
		seq, err := ParseBody(body)
		require.NoError(t, err, body)
		assert.Equal(t, body, completion.Render(seq))
	}
}

func TestParseBodyKeepsWhitespace(t *testing.T) {
	seq, err := ParseBody("[#size_type#]size()[# const#]")
	require.NoError(t, err)
	want := completion.Candidate{
		completion.ResultType("size_type"),
		completion.Text("size()"),
		completion.ResultType(" const"),
	}
	if diff := cmp.Diff(want, normalize(seq)); diff != "" {
		t.Errorf("ParseBody() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBodyErrors(t *testing.T) {
	for _, body := range []string{
		"f(<#int x",
		"{#<#a#>",
		"a#}",
		"b#>",
		"#pragma",
	} {
		_, err := ParseBody(body)
		assert.Error(t, err, body)
	}
}

func TestDecodeClang(t *testing.T) {
	src := strings.Join([]string{
		"COMPLETION: short",
		"COMPLETION: static : static",
		"OVERLOAD: [#int#]f(<#int#>)",
		"COMPLETION: Pattern : static_cast<<#type#>>(<#expression#>)",
		"COMPLETION: strlen : [#size_t#]strlen(<#const char *s#>)\r",
		"",
	}, "\n")
	got, err := DecodeClang(strings.NewReader(src), "out.txt")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, completion.Candidate{completion.TypedText("short")}, got[0])
	assert.Equal(t, "[#size_t#]strlen(<#const char *s#>)", completion.Render(got[3]))
	assert.Equal(t, completion.NoTypedTextChunk, completion.FindHeadMatch(got[2], "").Result)
}

func TestDecodeClangErrorHasLine(t *testing.T) {
	src := "COMPLETION: a\nCOMPLETION: b : b(<#x\n"
	_, err := DecodeClang(strings.NewReader(src), "out.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out.txt:2")
}

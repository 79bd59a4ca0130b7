// Copyright © 2026 The clang-complete authors

package repl

import (
	"sort"
	"strings"

	"github.com/luthersystems/clang-complete/completion"
)

// headCompleter implements readline.AutoCompleter by enumerating the head
// terms of the loaded candidates.
type headCompleter struct {
	heads []string
}

func newHeadCompleter(candidates []completion.Candidate) *headCompleter {
	seen := make(map[string]bool)
	var heads []string
	for _, c := range candidates {
		m := completion.FindHeadMatch(c, "")
		if m.Result != completion.Matched || seen[m.Text] {
			continue
		}
		seen[m.Text] = true
		heads = append(heads, m.Text)
	}
	sort.Strings(heads)
	return &headCompleter{heads: heads}
}

func (c *headCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Commands are not completed.
	start := pos
	for start > 0 && line[start-1] != ' ' && line[start-1] != '\t' {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" || strings.HasPrefix(prefix, commandPrefix) {
		return nil, 0
	}

	// Each entry is the suffix to append.
	i := sort.SearchStrings(c.heads, prefix)
	var result [][]rune
	for ; i < len(c.heads) && strings.HasPrefix(c.heads[i], prefix); i++ {
		result = append(result, []rune(c.heads[i][len(prefix):]))
	}
	if len(result) == 0 {
		return nil, 0
	}
	return result, len([]rune(prefix))
}

// Copyright © 2026 The clang-complete authors

package lint

import "github.com/luthersystems/clang-complete/completion"

// WalkChunks calls fn for every chunk of c in depth-first order. depth is 0
// for top-level chunks and grows by one inside each optional group.
func WalkChunks(c completion.Candidate, fn func(chunk completion.Chunk, depth int)) {
	walkChunks(c, 0, fn)
}

func walkChunks(c completion.Candidate, depth int, fn func(completion.Chunk, int)) {
	for _, chunk := range c {
		fn(chunk, depth)
		if chunk.Kind == completion.KindOptional {
			walkChunks(chunk.Nested, depth+1, fn)
		}
	}
}

// CountKind returns how many chunks of kind appear at depth 0.
func CountKind(c completion.Candidate, kind completion.Kind) int {
	n := 0
	for _, chunk := range c {
		if chunk.Kind == kind {
			n++
		}
	}
	return n
}

// Copyright © 2026 The clang-complete authors

package input

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
	"golang.org/x/sync/errgroup"
)

// StdinName is the path argument that selects the loader's stdin.
const StdinName = "-"

// Loader decodes candidate files.
type Loader struct {
	Format Format
	// Stdin is read for the "-" path. It may be read at most once.
	Stdin io.Reader
	// Concurrency bounds how many files are decoded at once. Zero means
	// no limit.
	Concurrency int
}

// Load decodes every path and returns all candidates in argument order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]completion.Candidate, error) {
	stdinUses := 0
	for _, p := range paths {
		if p == StdinName {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return nil, errors.New("stdin can only be named once")
	}

	results := make([][]completion.Candidate, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if l.Concurrency > 0 {
		g.SetLimit(l.Concurrency)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidates, err := l.loadOne(path)
			if err != nil {
				return err
			}
			results[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, r := range results {
		total += len(r)
	}
	out := make([]completion.Candidate, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (l *Loader) loadOne(path string) ([]completion.Candidate, error) {
	if path == StdinName {
		if l.Stdin == nil {
			return nil, errors.New("no stdin available")
		}
		return Decode(l.Stdin, "<stdin>", l.stdinFormat())
	}
	f, err := os.Open(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close() //nolint:errcheck // read-only file
	return Decode(f, path, l.Format)
}

// stdinFormat has no extension to go by, so auto means clang output.
func (l *Loader) stdinFormat() Format {
	if l.Format == FormatAuto {
		return FormatClang
	}
	return l.Format
}

// Copyright © 2026 The clang-complete authors

package cmd

import (
	"context"
	"io"

	"github.com/luthersystems/clang-complete/completion"
	"github.com/luthersystems/clang-complete/input"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loadCandidates reads the files named by args, or stdin when there are
// none, using the configured input format.
func loadCandidates(ctx context.Context, args, excludes []string, stdin io.Reader, log *zap.Logger) ([]completion.Candidate, error) {
	format, err := input.ParseFormat(viper.GetString("format"))
	if err != nil {
		return nil, err
	}
	paths, err := expandArgs(args, excludes)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		paths = []string{input.StdinName}
	}
	loader := &input.Loader{Format: format, Stdin: stdin}
	candidates, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded candidates",
		zap.Strings("files", paths),
		zap.Stringer("format", format),
		zap.Int("count", len(candidates)))
	return candidates, nil
}

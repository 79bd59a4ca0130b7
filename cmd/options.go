// Copyright © 2026 The clang-complete authors

package cmd

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option configures an exported command factory (PrintCommand,
// ExploreCommand, ConvertCommand).
type Option func(*cmdConfig)

type cmdConfig struct {
	logger         *zap.Logger
	tracerProvider trace.TracerProvider
}

// WithLogger injects the logger used by the command instead of one built
// from the --verbose and --log-json flags.
func WithLogger(l *zap.Logger) Option {
	return func(c *cmdConfig) { c.logger = l }
}

// WithTracerProvider injects the tracer provider used for completion spans.
// Without it the global provider is used, which --trace configures.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *cmdConfig) { c.tracerProvider = tp }
}

func newCmdConfig(opts []Option) *cmdConfig {
	var cfg cmdConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &cfg
}

// resolveLogger returns the injected logger or builds one writing to w.
func (c *cmdConfig) resolveLogger(w io.Writer) *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	if w == nil {
		w = os.Stderr
	}
	return newLogger(w, verbose, logJSON)
}

// bindFlags binds local flags of cmd to viper keys of the same name so a
// config file or CLANG_COMPLETE_* variables can provide their defaults.
// Binding happens when the command runs, because several commands share
// key names.
func bindFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return errors.Newf("unknown flag %q", name)
		}
		if err := viper.BindPFlag(name, f); err != nil {
			return errors.Wrapf(err, "binding flag %s", name)
		}
	}
	return nil
}

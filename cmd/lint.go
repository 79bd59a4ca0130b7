// Copyright © 2026 The clang-complete authors

package cmd

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/input"
	"github.com/luthersystems/clang-complete/lint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrLintFindings is returned by the lint command when any check reported
// a problem.
var ErrLintFindings = errors.New("lint: problems found")

// LintCommand creates the "lint" cobra command.
func LintCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		jsonOut  bool
		checks   string
		listAll  bool
		excludes []string
	)

	cmd := &cobra.Command{
		Use:   "lint [flags] [files...]",
		Short: "Check candidate files for entries the printer drops or mangles",
		Long: `Check completion candidates for shapes that "clang-complete print"
silently skips or renders in surprising ways, similar to "go vet".

With no files, reads clang output from stdin. Diagnostics name the file
and the 1-based candidate index. The command fails when any check
reports a problem.

Available checks (use --checks to select specific ones):
` + lint.AnalyzerDoc() + `
Examples:
  clang-complete lint results.txt
  clang-complete lint --json fixtures/...
  clang-complete lint --checks=no-typed-text,empty-optional results.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, "format")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listAll {
				for _, name := range lint.AnalyzerNames() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			analyzers := lint.DefaultAnalyzers()
			if checks != "" {
				var err error
				analyzers, err = lint.SelectAnalyzers(strings.Split(checks, ","))
				if err != nil {
					return err
				}
			}
			l := &lint.Linter{Analyzers: analyzers}

			log := cfg.resolveLogger(cmd.ErrOrStderr())
			defer log.Sync() //nolint:errcheck // best-effort flush

			format, err := input.ParseFormat(viper.GetString("format"))
			if err != nil {
				return err
			}
			paths, err := expandArgs(args, excludes)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				paths = []string{input.StdinName}
			}

			loader := &input.Loader{Format: format, Stdin: cmd.InOrStdin()}
			var all []lint.Diagnostic
			for _, path := range paths {
				candidates, err := loader.Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				name := path
				if path == input.StdinName {
					name = "<stdin>"
				}
				diags, err := l.Lint(name, candidates)
				if err != nil {
					return err
				}
				log.Debug("linted candidates",
					zap.String("file", name),
					zap.Int("candidates", len(candidates)),
					zap.Int("diagnostics", len(diags)))
				all = append(all, diags...)
			}

			if len(all) == 0 {
				return nil
			}
			if jsonOut {
				err = lint.FormatJSON(out, all)
			} else {
				err = lint.FormatText(out, all)
			}
			if err != nil {
				return errors.Wrap(err, "writing diagnostics")
			}
			return errors.WithDetailf(ErrLintFindings, "%d diagnostics", len(all))
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output diagnostics as JSON")
	cmd.Flags().StringVar(&checks, "checks", "", "Comma-separated list of checks to run (default: all)")
	cmd.Flags().BoolVar(&listAll, "list", false, "List available checks and exit")
	cmd.Flags().StringP("format", "f", "auto",
		`Input format: "auto", "clang", or "yaml"`)
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil,
		"Skip files matching this pattern when expanding dir/... (repeatable)")

	return cmd
}

func init() {
	rootCmd.AddCommand(LintCommand())
}

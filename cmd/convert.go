// Copyright © 2026 The clang-complete authors

package cmd

import (
	"bufio"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/input"
	"github.com/spf13/cobra"
)

// ConvertCommand creates the "convert" cobra command.
func ConvertCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	cmd := &cobra.Command{
		Use:   "convert [flags] [files...]",
		Short: "Convert candidates to YAML chunk trees",
		Long: `Read completion candidates and write them as YAML chunk trees, the
format read back by "clang-complete print" for .yaml files. Useful for
capturing clang output as test fixtures.

Examples:
  clang-complete convert results.txt > results.yaml
  clang -cc1 -fsyntax-only -code-completion-at=a.c:3:5 a.c | clang-complete convert`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, "format")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cfg.resolveLogger(cmd.ErrOrStderr())
			defer log.Sync() //nolint:errcheck // best-effort flush

			candidates, err := loadCandidates(cmd.Context(), args, nil, cmd.InOrStdin(), log)
			if err != nil {
				return err
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := input.EncodeYAML(out, candidates); err != nil {
				return err
			}
			return errors.Wrap(out.Flush(), "writing yaml")
		},
	}

	cmd.Flags().StringP("format", "f", "auto",
		`Input format: "auto", "clang", or "yaml"`)

	return cmd
}

func init() {
	rootCmd.AddCommand(ConvertCommand())
}

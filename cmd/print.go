// Copyright © 2026 The clang-complete authors

package cmd

import (
	"bufio"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
	"github.com/luthersystems/clang-complete/display"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// PrintCommand creates the "print" cobra command.
func PrintCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		prefix   string
		pretty   bool
		excludes []string
	)

	cmd := &cobra.Command{
		Use:   "print [flags] [files...]",
		Short: "Write completion protocol lines for a prefix",
		Long: `Read completion candidates and write one protocol line per candidate
whose typed text starts with --prefix (ASCII case-insensitive):

  COMPLETION: <typed-text>                      candidate has nothing else
  COMPLETION: <typed-text> : <rendered-chunks>  all other candidates

Lines are written in input order. Only lines with a body count toward
--max-completions; output stops right after the count goes above it.

With no files, reads clang output from stdin. Files ending in .yaml, .yml
or .json are read as chunk trees, everything else as clang
-code-completion-at output, unless --format says otherwise. A "dir/..."
argument reads every candidate file under dir.

Examples:
  clang-complete print -p st results.txt
  clang -cc1 -fsyntax-only -code-completion-at=a.c:3:5 a.c | clang-complete print -p pr
  clang-complete print --pretty --width 100 -p std results.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, "max-completions", "format", "width")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cfg.resolveLogger(cmd.ErrOrStderr())
			defer log.Sync() //nolint:errcheck // best-effort flush

			candidates, err := loadCandidates(cmd.Context(), args, excludes, cmd.InOrStdin(), log)
			if err != nil {
				return err
			}
			max := viper.GetInt("max-completions")

			if pretty {
				color, err := display.ParseColorMode(viper.GetString("color"))
				if err != nil {
					return err
				}
				// Render buffers itself and needs the raw writer to detect a terminal.
				r := &display.Renderer{Color: color, Width: viper.GetInt("width")}
				_, err = r.Render(cmd.OutOrStdout(), candidates, prefix, max)
				return errors.Wrap(err, "writing display")
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			printer := completion.NewPrinter(
				completion.WithMaxCompletions(max),
				completion.WithLogger(log),
				completion.WithTracerProvider(cfg.tracerProvider),
			)
			n, err := printer.Print(cmd.Context(), out, candidates, prefix)
			if err != nil {
				return err
			}
			log.Info("completions printed", zap.Int("emitted", n), zap.Int("max", max))
			return errors.Wrap(out.Flush(), "writing completions")
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "",
		"Only print candidates whose typed text starts with this prefix")
	cmd.Flags().IntP("max-completions", "n", completion.DefaultMaxCompletions,
		"Stop after this many completion lines with a body")
	cmd.Flags().StringP("format", "f", "auto",
		`Input format: "auto", "clang", or "yaml"`)
	cmd.Flags().BoolVar(&pretty, "pretty", false,
		"Show a highlighted listing instead of protocol lines")
	cmd.Flags().Int("width", 0,
		"Truncate --pretty lines to this many columns (0 = no limit)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil,
		"Skip files matching this pattern when expanding dir/... (repeatable)")

	return cmd
}

func init() {
	rootCmd.AddCommand(PrintCommand())
}

// Copyright © 2026 The clang-complete authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
	"github.com/luthersystems/clang-complete/display"
	"github.com/luthersystems/clang-complete/input"
	"github.com/luthersystems/clang-complete/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExploreCommand creates the "explore" cobra command.
func ExploreCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var pretty bool

	cmd := &cobra.Command{
		Use:   "explore [flags] files...",
		Short: "Try prefixes interactively against a set of candidates",
		Long: `Load completion candidates once and answer prefixes typed at a prompt
with the lines "clang-complete print" would write for them.

Tab completes typed text of the loaded candidates. Commands start with a
colon; :help lists them. Use Ctrl-D or :quit to exit.

Example session:
  explore> str
  COMPLETION: strlen : [#size_t#]strlen(<#const char *s#>)
  COMPLETION: struct
  explore> :pretty
  pretty display on
  explore> str
  strlen  size_t strlen(const char *s)
  struct  struct`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, "max-completions", "format", "width")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				if a == input.StdinName {
					return errors.WithHint(
						errors.New("explore reads prefixes from stdin"),
						"pass candidate files as arguments")
				}
			}
			log := cfg.resolveLogger(cmd.ErrOrStderr())
			defer log.Sync() //nolint:errcheck // best-effort flush

			candidates, err := loadCandidates(cmd.Context(), args, nil, nil, log)
			if err != nil {
				return err
			}
			color, err := display.ParseColorMode(viper.GetString("color"))
			if err != nil {
				return err
			}

			printer := completion.NewPrinter(
				completion.WithMaxCompletions(viper.GetInt("max-completions")),
				completion.WithLogger(log),
				completion.WithTracerProvider(cfg.tracerProvider),
			)
			renderer := &display.Renderer{Color: color, Width: viper.GetInt("width")}
			return repl.Run(cmd.Context(), candidates, filepath.Base(os.Args[0])+"> ",
				repl.WithStdout(cmd.OutOrStdout()),
				repl.WithPrinter(printer),
				repl.WithDisplay(renderer, pretty),
			)
		},
	}

	cmd.Flags().IntP("max-completions", "n", completion.DefaultMaxCompletions,
		"Stop after this many completion lines with a body")
	cmd.Flags().StringP("format", "f", "auto",
		`Input format: "auto", "clang", or "yaml"`)
	cmd.Flags().BoolVar(&pretty, "pretty", false,
		"Start with the highlighted listing")
	cmd.Flags().Int("width", 0,
		"Truncate pretty lines to this many columns (0 = no limit)")

	return cmd
}

func init() {
	rootCmd.AddCommand(ExploreCommand())
}

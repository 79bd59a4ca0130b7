// Copyright © 2026 The clang-complete authors

package cmd

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/docs"
	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Show the completion protocol reference",
	Long: `Print the reference for the completion line protocol, the chunk
rendering rules and the accepted input formats.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := io.WriteString(cmd.OutOrStdout(), docs.ProtocolGuide)
		return errors.Wrap(err, "writing guide")
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
}

// Copyright © 2026 The clang-complete authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix prefixes environment variables read as configuration, e.g.
// CLANG_COMPLETE_MAX_COMPLETIONS.
const envPrefix = "CLANG_COMPLETE"

var (
	cfgFile   string
	colorFlag string
	verbose   bool
	logJSON   bool
	traceFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clang-complete",
	Short: "Format code-completion results for editor clients",
	Long: `clang-complete turns code-completion results into the line protocol read
by editor completion clients:

  COMPLETION: <typed-text>
  COMPLETION: <typed-text> : <rendered-chunks>

Rendered chunks use the clang annotation grammar: <#placeholder#>,
[#result-type#] and {#optional#} groups, nested as deep as needed.
Candidates whose typed text does not start with the requested prefix
(case-insensitive) are skipped, and output stops once more than
--max-completions lines with a body have been written.

Getting started:
  clang-complete print -p st results.txt      Filter clang output by prefix
  clang-complete print results.yaml           Render YAML chunk trees
  clang-complete explore results.txt          Try prefixes interactively
  clang-complete convert results.txt          Convert clang output to YAML

Configuration is read from $HOME/.clang-complete.yaml (or --config) and
from CLANG_COMPLETE_* environment variables, e.g.
CLANG_COMPLETE_MAX_COMPLETIONS=200.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !traceFlag {
			return nil
		}
		return startTracing(cmd.ErrOrStderr())
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		return stopTracing(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.clang-complete.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Write OpenTelemetry spans to stderr")

	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".clang-complete" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".clang-complete")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Package cmd implements the monkey CLI: one file per subcommand.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version, GitCommit, and BuildDate are overridden at build time via
// -ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "monkey is the lexer/parser/evaluator/VM pipeline for the Monkey language",
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics")
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-monkey/internal/repl"
)

var replVM bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-eval-print loop",
	RunE: func(c *cobra.Command, args []string) error {
		repl.Start(os.Stdin, os.Stdout, os.Stderr, replVM)
		return nil
	},
}

func init() {
	replCmd.Flags().BoolVar(&replVM, "vm", false, "evaluate via the bytecode VM instead of the evaluator")
	rootCmd.AddCommand(replCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-monkey/internal/evaluator"
	"github.com/cwbudde/go-monkey/internal/lexer"
	"github.com/cwbudde/go-monkey/internal/object"
	"github.com/cwbudde/go-monkey/internal/parser"
)

var evalEval string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a program with the tree-walking evaluator",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, file, err := readSource(args, evalEval)
		if err != nil {
			return err
		}

		p := parser.New(lexer.New(src))
		program, err := p.ParseProgram()
		if err != nil {
			return renderError(err, src, file)
		}

		result, err := evaluator.Eval(program, object.NewEnvironment())
		if err != nil {
			return renderError(err, src, file)
		}
		if result != nil {
			fmt.Println(result.Display())
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalEval, "eval", "e", "", "inline source instead of a file")
	rootCmd.AddCommand(evalCmd)
}

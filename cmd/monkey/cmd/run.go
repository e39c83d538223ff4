package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-monkey/internal/bytecode"
	"github.com/cwbudde/go-monkey/internal/evaluator"
	"github.com/cwbudde/go-monkey/internal/lexer"
	"github.com/cwbudde/go-monkey/internal/object"
	"github.com/cwbudde/go-monkey/internal/parser"
)

var (
	runEval string
	runVM   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program with the tree-walking evaluator or the bytecode VM",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, file, err := readSource(args, runEval)
		if err != nil {
			return err
		}

		p := parser.New(lexer.New(src))
		program, err := p.ParseProgram()
		if err != nil {
			return renderError(err, src, file)
		}

		var result object.Object
		if runVM {
			if verbose {
				fmt.Fprintln(c.ErrOrStderr(), "engine: bytecode VM")
			}
			comp := bytecode.New()
			if err := comp.Compile(program); err != nil {
				return err
			}
			vm := bytecode.NewVM(comp.Bytecode())
			if err := vm.Run(); err != nil {
				return renderError(err, src, file)
			}
			result = vm.LastPoppedStackElem()
		} else {
			if verbose {
				fmt.Fprintln(c.ErrOrStderr(), "engine: tree-walking evaluator")
			}
			result, err = evaluator.Eval(program, object.NewEnvironment())
			if err != nil {
				return renderError(err, src, file)
			}
		}

		if result != nil {
			fmt.Println(result.Display())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "inline source instead of a file")
	runCmd.Flags().BoolVar(&runVM, "vm", false, "execute via the bytecode VM instead of the evaluator")
	rootCmd.AddCommand(runCmd)
}

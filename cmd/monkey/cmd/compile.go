package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-monkey/internal/bytecode"
	"github.com/cwbudde/go-monkey/internal/lexer"
	"github.com/cwbudde/go-monkey/internal/parser"
)

var (
	compileEval string
	compileDump bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile source to bytecode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, file, err := readSource(args, compileEval)
		if err != nil {
			return err
		}

		p := parser.New(lexer.New(src))
		program, err := p.ParseProgram()
		if err != nil {
			return renderError(err, src, file)
		}

		comp := bytecode.New()
		if err := comp.Compile(program); err != nil {
			return err
		}

		bc := comp.Bytecode()
		if compileDump {
			fmt.Print(bytecode.Disassemble(bc.Instructions, bc.Constants))
			return nil
		}
		fmt.Printf("% x\n", []byte(bc.Instructions))
		return nil
	},
}

func init() {
	compileCmd.Flags().StringVarP(&compileEval, "eval", "e", "", "inline source instead of a file")
	compileCmd.Flags().BoolVar(&compileDump, "dump", false, "disassemble instead of printing raw bytes")
	rootCmd.AddCommand(compileCmd)
}

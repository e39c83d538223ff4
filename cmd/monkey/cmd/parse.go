package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-monkey/internal/lexer"
	"github.com/cwbudde/go-monkey/internal/parser"
)

var (
	parseEval    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the resulting program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, file, err := readSource(args, parseEval)
		if err != nil {
			return err
		}

		p := parser.New(lexer.New(src))
		program, err := p.ParseProgram()
		if err != nil {
			return renderError(err, src, file)
		}

		if parseDumpAST {
			fmt.Printf("%#v\n", program)
			return nil
		}
		fmt.Println(program.String())
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "inline source instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print the raw AST instead of re-printed source")
	rootCmd.AddCommand(parseCmd)
}

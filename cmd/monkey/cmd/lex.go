package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-monkey/internal/lexer"
	"github.com/cwbudde/go-monkey/internal/token"
)

var lexEval string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, _, err := readSource(args, lexEval)
		if err != nil {
			return err
		}

		l := lexer.New(src)
		for {
			tok := l.NextToken()
			printToken(tok)
			if tok.Type == token.EOF {
				break
			}
		}
		return nil
	},
}

func printToken(tok token.Token) {
	fmt.Printf("%d:%d\t%-10s %q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
}

func init() {
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "inline source instead of a file")
	rootCmd.AddCommand(lexCmd)
}

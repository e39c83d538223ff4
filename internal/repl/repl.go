// Package repl is the read-eval-print driver over the language
// pipeline: one parser per input line, one long-lived root environment
// for the whole session.
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/cwbudde/go-monkey/internal/ast"
	"github.com/cwbudde/go-monkey/internal/bytecode"
	"github.com/cwbudde/go-monkey/internal/errors"
	"github.com/cwbudde/go-monkey/internal/evaluator"
	"github.com/cwbudde/go-monkey/internal/lexer"
	"github.com/cwbudde/go-monkey/internal/object"
	"github.com/cwbudde/go-monkey/internal/parser"
)

const (
	prompt = ">> "
	banner = "Welcome to the Monkey REPL!\nType some code!\n"
)

// Start runs the REPL loop against in/out/errOut until in is exhausted.
// Each line is parsed into its own Program, which is retained in an
// append-only arena (programs) for as long as the REPL runs, so that
// closures created on one line can safely keep borrowing function bodies
// parsed on an earlier one. useVM selects the bytecode path instead of
// the tree-walking evaluator; both must agree on every scalar result.
func Start(in io.Reader, out, errOut io.Writer, useVM bool) {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	var programs []*ast.Program

	fmt.Fprint(out, banner)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		l := lexer.New(line)
		p := parser.New(l)
		program, err := p.ParseProgram()
		if err != nil {
			printError(errOut, err, line)
			continue
		}
		programs = append(programs, program)

		if useVM {
			runVM(program, line, out, errOut)
			continue
		}

		result, err := evaluator.Eval(program, env)
		if err != nil {
			printError(errOut, err, line)
			continue
		}
		printResult(out, result)
	}
}

func runVM(program *ast.Program, line string, out, errOut io.Writer) {
	comp := bytecode.New()
	if err := comp.Compile(program); err != nil {
		fmt.Fprintln(errOut, err.Error())
		return
	}

	vm := bytecode.NewVM(comp.Bytecode())
	if err := vm.Run(); err != nil {
		printError(errOut, err, line)
		return
	}
	printResult(out, vm.LastPoppedStackElem())
}

// printError renders a pipeline error with the offending line and a
// caret; anything else falls back to the bare message.
func printError(errOut io.Writer, err error, src string) {
	var pe errors.PipelineError
	if stderrors.As(err, &pe) {
		ce := &errors.CompilerError{Err: pe, Source: src}
		fmt.Fprintln(errOut, ce.Format(false))
		return
	}
	fmt.Fprintln(errOut, err.Error())
}

func printResult(out io.Writer, obj object.Object) {
	if obj == nil {
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintln(out, obj.Display())
}

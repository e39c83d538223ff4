// Package errors gives the three pipeline error taxonomies (parser,
// evaluator, VM) a shared type plus a source-annotated presentation
// layer for the CLI and REPL: a CompilerError pairs an error with its
// source and renders a source line with a caret under the failing
// column.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-monkey/internal/token"
)

// PipelineError is implemented by every error the lexer/parser/evaluator/
// VM can produce. Error() always yields the exact user-visible string
// contract; Position and a human label are exposed for callers that want
// structured access instead of string-sniffing.
type PipelineError interface {
	error
	Position() token.Position
	Label() string
}

// ParserErrorKind distinguishes the two parser failure shapes.
type ParserErrorKind int

const (
	InvalidExpression ParserErrorKind = iota
	UnexpectedToken
)

// ParserError reports the first (and only) parse failure.
type ParserError struct {
	Pos     token.Position
	Kind    ParserErrorKind
	Message string
}

func (e *ParserError) Error() string            { return "Parser error: " + e.Message }
func (e *ParserError) Position() token.Position { return e.Pos }
func (e *ParserError) Label() string            { return "Parser error" }

// NewInvalidExpression builds the ParserError for a token that cannot
// begin an expression.
func NewInvalidExpression(tok token.Token) *ParserError {
	return &ParserError{
		Pos:     tok.Pos,
		Kind:    InvalidExpression,
		Message: fmt.Sprintf("An expression cannot begin with token type %s", tok.Type),
	}
}

// NewUnexpectedToken builds the ParserError for a mismatched expectPeek.
func NewUnexpectedToken(expected token.Type, actual token.Token) *ParserError {
	return &ParserError{
		Pos:     actual.Pos,
		Kind:    UnexpectedToken,
		Message: fmt.Sprintf("Unexpected token. Expected %s, got %s", expected, actual.Type),
	}
}

// EvalError is the evaluator's single, opaque runtime-error variant: the
// tree walker flattens every runtime issue (unbound identifier, type
// mismatch, arity) into one string-bearing error.
type EvalError struct {
	Pos     token.Position
	Message string
}

func (e *EvalError) Error() string            { return "Eval error: " + e.Message }
func (e *EvalError) Position() token.Position { return e.Pos }
func (e *EvalError) Label() string            { return "Eval error" }

// NewEvalError builds an EvalError with a formatted detail message.
func NewEvalError(pos token.Position, format string, args ...interface{}) *EvalError {
	return &EvalError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// VMErrorKind distinguishes stack underflow from every other VM failure.
type VMErrorKind int

const (
	PopEmptyStack VMErrorKind = iota
	VMMisc
)

// VMError is raised by the stack VM's dispatch loop.
type VMError struct {
	Kind    VMErrorKind
	Message string
}

func (e *VMError) Error() string            { return "VM Error: " + e.Message }
func (e *VMError) Position() token.Position { return token.Position{} }
func (e *VMError) Label() string            { return "VM Error" }

// ErrPopEmptyStack is the VM's fixed stack-underflow error.
var ErrPopEmptyStack = &VMError{Kind: PopEmptyStack, Message: "Cannot pop from an empty stack"}

// NewVMError builds a VMMisc VMError with a formatted detail message.
func NewVMError(format string, args ...interface{}) *VMError {
	return &VMError{Kind: VMMisc, Message: fmt.Sprintf(format, args...)}
}

// CompilerError pairs a PipelineError with the source it came from so the
// CLI and REPL can render a line-and-caret view instead of a bare string.
type CompilerError struct {
	Err    PipelineError
	Source string
	File   string
}

// Format renders the error message followed by the offending source line
// and a caret under the failing column. color enables ANSI highlighting
// of the caret line.
func (ce *CompilerError) Format(color bool) string {
	var out strings.Builder
	out.WriteString(ce.Err.Error())

	pos := ce.Err.Position()
	lines := strings.Split(ce.Source, "\n")
	if pos.Line >= 1 && pos.Line <= len(lines) {
		line := lines[pos.Line-1]
		out.WriteString("\n")
		if ce.File != "" {
			fmt.Fprintf(&out, "  --> %s:%d:%d\n", ce.File, pos.Line, pos.Column)
		}
		out.WriteString("  " + line + "\n")
		caretCol := pos.Column
		if caretCol < 1 {
			caretCol = 1
		}
		caret := strings.Repeat(" ", caretCol-1) + "^"
		if color {
			caret = "\033[31m" + caret + "\033[0m"
		}
		out.WriteString("  " + caret)
	}
	return out.String()
}

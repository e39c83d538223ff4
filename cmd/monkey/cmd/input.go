package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-monkey/internal/errors"
)

// readSource resolves a subcommand's source argument: the -e/--eval flag
// wins if set, otherwise the positional file argument, otherwise stdin.
// The second return value names the source for error rendering.
func readSource(args []string, eval string) (string, string, error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "<stdin>", nil
}

// renderError prints a pipeline error to stderr with its source line and
// a caret under the failing column, then returns a short error so cobra
// exits nonzero without repeating the detail. Errors outside the
// pipeline taxonomy pass through unchanged.
func renderError(err error, src, file string) error {
	var pe errors.PipelineError
	if !stderrors.As(err, &pe) {
		return err
	}
	ce := &errors.CompilerError{Err: pe, Source: src, File: file}
	fmt.Fprintln(os.Stderr, ce.Format(true))
	return fmt.Errorf("execution failed")
}

package evaluator

import (
	"fmt"

	"github.com/cwbudde/go-monkey/internal/object"
)

// Builtins is the fixed built-in function table consulted only when
// identifier lookup in the environment chain fails — so user code can
// shadow len/print with its own `let` binding, intentionally.
var Builtins = map[string]*object.Builtin{
	"len": {Fn: func(args ...object.Object) (object.Object, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("len takes exactly 1 argument")
		}
		str, ok := args[0].(*object.String)
		if !ok {
			return nil, fmt.Errorf("Only strings can be passed to len")
		}
		return &object.Integer{Value: int64(len(str.Value))}, nil
	}},
	"print": {Fn: func(args ...object.Object) (object.Object, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("print takes exactly 1 argument")
		}
		fmt.Println(args[0].Display())
		return object.NULL, nil
	}},
}

// Package evaluator is the recursive tree-walking interpreter: it
// threads an Environment through the AST, propagates early returns via
// object.ReturnValue, and delegates operator semantics to object.EvalPrefix
// / object.EvalInfix so its results agree with the bytecode VM.
package evaluator

import (
	"github.com/cwbudde/go-monkey/internal/ast"
	"github.com/cwbudde/go-monkey/internal/errors"
	"github.com/cwbudde/go-monkey/internal/object"
)

// Eval evaluates a single AST node against env.
func Eval(node ast.Node, env *object.Environment) (object.Object, error) {
	switch node := node.(type) {
	case *ast.Program:
		return evalProgram(node, env)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	case *ast.BlockStatement:
		// A block reached as an expression (or an if-branch) opens its
		// own scope, so `let` bindings inside it never leak outward.
		// Function bodies bypass this case: evalCallExpression calls
		// evalBlockStatement directly with the call frame's environment.
		return evalBlockStatement(node, object.NewEnclosedEnvironment(env))

	case *ast.ReturnStatement:
		val, err := Eval(node.ReturnValue, env)
		if err != nil {
			return nil, err
		}
		return &object.ReturnValue{Value: val}, nil

	case *ast.LetStatement:
		val, err := Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(node.Name.Value, val)
		return nil, nil

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}, nil

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}, nil

	case *ast.Boolean:
		return object.NativeBool(node.Value), nil

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right, err := Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		result, err := object.EvalPrefix(node.Operator, right)
		if err != nil {
			return nil, errors.NewEvalError(node.Pos(), "%s", err.Error())
		}
		return result, nil

	case *ast.InfixExpression:
		left, err := Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		result, err := object.EvalInfix(left, node.Operator, right)
		if err != nil {
			return nil, errors.NewEvalError(node.Pos(), "%s", err.Error())
		}
		return result, nil

	case *ast.IfExpression:
		return evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}, nil

	case *ast.CallExpression:
		return evalCallExpression(node, env)
	}

	return nil, errors.NewEvalError(node.Pos(), "cannot evaluate node %T", node)
}

// evalProgram runs every top-level statement, returning the last value
// evaluated. An outermost ReturnValue is unwrapped here: a top-level
// `return` is accepted, intentionally, and its payload becomes the
// program's result.
func evalProgram(program *ast.Program, env *object.Environment) (object.Object, error) {
	var result object.Object
	for _, stmt := range program.Statements {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if val == nil {
			result = nil
			continue
		}
		if rv, ok := val.(*object.ReturnValue); ok {
			return rv.Value, nil
		}
		result = val
	}
	return result, nil
}

// evalBlockStatement runs each statement in order but, unlike
// evalProgram, does NOT unwrap a ReturnValue it encounters — it surfaces
// it unevaluated so an enclosing call frame (or the program boundary)
// can do so instead, letting return propagate through arbitrarily nested
// blocks.
func evalBlockStatement(block *ast.BlockStatement, env *object.Environment) (object.Object, error) {
	var result object.Object
	for _, stmt := range block.Statements {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
		if val != nil {
			if _, ok := val.(*object.ReturnValue); ok {
				return val, nil
			}
		}
	}
	return result, nil
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) (object.Object, error) {
	if val, ok := env.Get(node.Value); ok {
		return val, nil
	}
	if builtin, ok := Builtins[node.Value]; ok {
		return builtin, nil
	}
	return nil, errors.NewEvalError(node.Pos(), "The identifier '%s' has not been bound", node.Value)
}

func evalIfExpression(ie *ast.IfExpression, env *object.Environment) (object.Object, error) {
	cond, err := Eval(ie.Condition, env)
	if err != nil {
		return nil, err
	}

	condBool, ok := cond.(*object.Boolean)
	if !ok {
		return nil, errors.NewEvalError(ie.Pos(), "The condition in an if statement must be a bool. Got %s", cond.Type())
	}

	// The chosen branch is a BlockStatement, so Eval encloses it in a
	// fresh environment.
	if condBool.Value {
		return Eval(ie.Consequence, env)
	}
	if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}
	return object.NULL, nil
}

func evalCallExpression(ce *ast.CallExpression, env *object.Environment) (object.Object, error) {
	fn, err := Eval(ce.Function, env)
	if err != nil {
		return nil, err
	}

	args := make([]object.Object, len(ce.Arguments))
	for i, a := range ce.Arguments {
		val, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	switch fn := fn.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return nil, errors.NewEvalError(ce.Pos(), "Expected %d args, got %d", len(fn.Parameters), len(args))
		}
		callEnv := object.NewEnclosedEnvironment(fn.Env)
		for i, p := range fn.Parameters {
			callEnv.Set(p.Value, args[i])
		}
		result, err := evalBlockStatement(fn.Body, callEnv)
		if err != nil {
			return nil, err
		}
		if rv, ok := result.(*object.ReturnValue); ok {
			return rv.Value, nil
		}
		if result == nil {
			return object.NULL, nil
		}
		return result, nil

	case *object.Builtin:
		result, err := fn.Fn(args...)
		if err != nil {
			return nil, errors.NewEvalError(ce.Pos(), "%s", err.Error())
		}
		return result, nil

	default:
		return nil, errors.NewEvalError(ce.Pos(), "Cannot call %s", fn.Display())
	}
}

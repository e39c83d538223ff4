package bytecode

import (
	"fmt"

	"github.com/cwbudde/go-monkey/internal/ast"
	"github.com/cwbudde/go-monkey/internal/object"
)

// Bytecode is a compiler's complete output: the instruction stream plus
// the constant pool it indexes into.
type Bytecode struct {
	Instructions Instructions
	Constants    []object.Object
}

// SymbolTable is compiler-internal plumbing for a later identifier/let
// lowering pass. It is kept, global-scope only, as the concrete home for
// the "reserved opcode slots" note in the instruction set — it does not
// change any user-visible behavior: the compiler still refuses
// identifier/let/call/fn/if below.
type SymbolTable struct {
	symbols map[string]int
	count   int
}

// NewSymbolTable creates an empty global symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]int)}
}

// Define assigns the next free slot index to name.
func (s *SymbolTable) Define(name string) int {
	idx := s.count
	s.symbols[name] = idx
	s.count++
	return idx
}

// Resolve reports the slot index for name, if it has been defined.
func (s *SymbolTable) Resolve(name string) (int, bool) {
	idx, ok := s.symbols[name]
	return idx, ok
}

// UnsupportedError reports a construct the compiler deliberately does
// not lower. Identifier/let/call/fn-literal/if are reserved for a future
// compiler pass; the VM opcode set already carries JumpFalse/Jump for
// if, but nothing wires them up yet, so compiling one is a fatal error
// rather than silently emitting wrong code.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("compiler: %s is not supported in this compiler", e.Construct)
}

// Compiler lowers an AST into a Bytecode value. It has no error path for
// the constructs it does support — only unimplemented productions fail.
type Compiler struct {
	instructions Instructions
	constants    []object.Object
	symbols      *SymbolTable
}

// New creates an empty Compiler with a fresh constant pool.
func New() *Compiler {
	return &Compiler{symbols: NewSymbolTable()}
}

// Bytecode returns everything Compile has emitted so far.
func (c *Compiler) Bytecode() *Bytecode {
	return &Bytecode{Instructions: c.instructions, Constants: c.constants}
}

// Compile lowers node, appending to the instruction stream and constant
// pool in place.
func (c *Compiler) Compile(node ast.Node) error {
	switch node := node.(type) {
	case *ast.Program:
		for _, stmt := range node.Statements {
			if err := c.Compile(stmt); err != nil {
				return err
			}
		}

	case *ast.BlockStatement:
		for _, stmt := range node.Statements {
			if err := c.Compile(stmt); err != nil {
				return err
			}
		}

	case *ast.ExpressionStatement:
		if err := c.Compile(node.Expression); err != nil {
			return err
		}
		c.emit(OpPop)

	case *ast.IntegerLiteral:
		idx := c.addConstant(&object.Integer{Value: node.Value})
		c.emit(OpConstant, idx)

	case *ast.Boolean:
		if node.Value {
			c.emit(OpTrue)
		} else {
			c.emit(OpFalse)
		}

	case *ast.PrefixExpression:
		if err := c.Compile(node.Right); err != nil {
			return err
		}
		switch node.Operator {
		case "-":
			c.emit(OpMinus)
		case "!":
			c.emit(OpBang)
		default:
			return &UnsupportedError{Construct: fmt.Sprintf("prefix operator %q", node.Operator)}
		}

	case *ast.InfixExpression:
		return c.compileInfix(node)

	case *ast.LetStatement:
		return &UnsupportedError{Construct: "let statements"}
	case *ast.ReturnStatement:
		return &UnsupportedError{Construct: "return statements"}
	case *ast.Identifier:
		return &UnsupportedError{Construct: "identifiers"}
	case *ast.CallExpression:
		return &UnsupportedError{Construct: "call expressions"}
	case *ast.FunctionLiteral:
		return &UnsupportedError{Construct: "function literals"}
	case *ast.IfExpression:
		return &UnsupportedError{Construct: "if expressions"}

	default:
		return &UnsupportedError{Construct: fmt.Sprintf("%T", node)}
	}
	return nil
}

// compileInfix emits the operator's opcode after compiling its operands
// left-then-right, except `<`, which is lowered to GreaterThan by
// compiling the operands right-then-left. This is the only asymmetric
// operand order in the instruction set; it keeps the VM free of a
// LessThan opcode.
func (c *Compiler) compileInfix(node *ast.InfixExpression) error {
	if node.Operator == "<" {
		if err := c.Compile(node.Right); err != nil {
			return err
		}
		if err := c.Compile(node.Left); err != nil {
			return err
		}
		c.emit(OpGreaterThan)
		return nil
	}

	if err := c.Compile(node.Left); err != nil {
		return err
	}
	if err := c.Compile(node.Right); err != nil {
		return err
	}

	switch node.Operator {
	case "+":
		c.emit(OpAdd)
	case "-":
		c.emit(OpSub)
	case "*":
		c.emit(OpMul)
	case "/":
		c.emit(OpDiv)
	case "==":
		c.emit(OpEqual)
	case "!=":
		c.emit(OpNotEqual)
	case ">":
		c.emit(OpGreaterThan)
	default:
		return &UnsupportedError{Construct: fmt.Sprintf("infix operator %q", node.Operator)}
	}
	return nil
}

func (c *Compiler) addConstant(obj object.Object) int {
	c.constants = append(c.constants, obj)
	return len(c.constants) - 1
}

func (c *Compiler) emit(op Opcode, operands ...int) int {
	ins := Make(op, operands...)
	pos := len(c.instructions)
	c.instructions = append(c.instructions, ins...)
	return pos
}

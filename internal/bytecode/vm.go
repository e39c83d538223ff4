package bytecode

import (
	"github.com/cwbudde/go-monkey/internal/errors"
	"github.com/cwbudde/go-monkey/internal/object"
)

// StackSize bounds the VM's value stack; exceeding it is an error rather
// than growing unbounded.
const StackSize = 2048

// VM is a fetch-decode-execute loop over a value stack. Its single
// register is an implicit instruction cursor; it halts when the cursor
// reaches the end of the instruction stream.
type VM struct {
	constants    []object.Object
	instructions Instructions

	stack [StackSize]object.Object
	sp    int // stack[sp-1] is the top of the stack

	lastPopped object.Object
}

// NewVM creates a VM ready to run bc.
func NewVM(bc *Bytecode) *VM {
	return &VM{constants: bc.Constants, instructions: bc.Instructions}
}

// LastPoppedStackElem returns the value most recently removed by Pop, or
// nil if nothing was ever popped.
func (vm *VM) LastPoppedStackElem() object.Object {
	return vm.lastPopped
}

// Run executes the instruction stream to completion or the first error.
func (vm *VM) Run() error {
	for ip := 0; ip < len(vm.instructions); {
		op := Opcode(vm.instructions[ip])
		def, err := Lookup(op)
		if err != nil {
			return errors.NewVMError("unknown opcode %d", byte(op))
		}
		operands, read := ReadOperands(def, vm.instructions[ip+1:])
		ip += 1 + read

		switch op {
		case OpConstant:
			if err := vm.push(vm.constants[operands[0]]); err != nil {
				return err
			}

		case OpTrue:
			if err := vm.push(object.TRUE); err != nil {
				return err
			}
		case OpFalse:
			if err := vm.push(object.FALSE); err != nil {
				return err
			}

		case OpAdd, OpSub, OpMul, OpDiv, OpEqual, OpNotEqual, OpGreaterThan:
			if err := vm.executeBinary(op); err != nil {
				return err
			}

		case OpMinus, OpBang:
			if err := vm.executeUnary(op); err != nil {
				return err
			}

		case OpPop:
			if _, err := vm.pop(); err != nil {
				return err
			}

		case OpJumpNotTruthy:
			cond, err := vm.pop()
			if err != nil {
				return err
			}
			b, ok := cond.(*object.Boolean)
			if !ok {
				return errors.NewVMError("JumpFalse requires a bool operand, got %s", cond.Type())
			}
			if !b.Value {
				ip = operands[0]
			}

		case OpJump:
			ip = operands[0]

		default:
			return errors.NewVMError("unhandled opcode %s", def.Name)
		}
	}
	return nil
}

func (vm *VM) push(obj object.Object) error {
	if vm.sp >= StackSize {
		return errors.NewVMError("stack overflow")
	}
	vm.stack[vm.sp] = obj
	vm.sp++
	return nil
}

func (vm *VM) pop() (object.Object, error) {
	if vm.sp == 0 {
		return nil, errors.ErrPopEmptyStack
	}
	obj := vm.stack[vm.sp-1]
	vm.sp--
	vm.lastPopped = obj
	return obj, nil
}

func opSymbol(op Opcode) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpGreaterThan:
		return ">"
	case OpMinus:
		return "-"
	case OpBang:
		return "!"
	}
	return "?"
}

// executeBinary pops right then left (order matters for non-commutative
// operators), computes the result via the shared operator core, and
// pushes it back.
func (vm *VM) executeBinary(op Opcode) error {
	right, err := vm.pop()
	if err != nil {
		return err
	}
	left, err := vm.pop()
	if err != nil {
		return err
	}

	result, err := object.EvalInfix(left, opSymbol(op), right)
	if err != nil {
		return errors.NewVMError("%s", err.Error())
	}
	return vm.push(result)
}

func (vm *VM) executeUnary(op Opcode) error {
	operand, err := vm.pop()
	if err != nil {
		return err
	}

	result, err := object.EvalPrefix(opSymbol(op), operand)
	if err != nil {
		return errors.NewVMError("%s", err.Error())
	}
	return vm.push(result)
}

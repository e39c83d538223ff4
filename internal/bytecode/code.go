// Package bytecode defines the byte-addressed instruction encoding
// shared by the compiler and the stack VM: one opcode byte followed by
// a fixed number of big-endian operand bytes, with encoding/binary
// doing the codec work.
package bytecode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cwbudde/go-monkey/internal/object"
)

// Instructions is a contiguous buffer of encoded instructions.
type Instructions []byte

// Opcode is the single-byte tag of an instruction.
type Opcode byte

const (
	OpConstant Opcode = iota
	OpAdd
	OpSub
	OpPop
	OpMul
	OpDiv
	OpTrue
	OpFalse
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpMinus
	OpBang
	OpJumpNotTruthy
	OpJump
)

// Definition describes an opcode's name (for disassembly) and the byte
// width of each of its operands, in order.
type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	OpConstant:      {"Constant", []int{2}},
	OpAdd:           {"Add", nil},
	OpSub:           {"Sub", nil},
	OpPop:           {"Pop", nil},
	OpMul:           {"Mul", nil},
	OpDiv:           {"Div", nil},
	OpTrue:          {"True", nil},
	OpFalse:         {"False", nil},
	OpEqual:         {"Equal", nil},
	OpNotEqual:      {"NotEqual", nil},
	OpGreaterThan:   {"GreaterThan", nil},
	OpMinus:         {"Minus", nil},
	OpBang:          {"Bang", nil},
	OpJumpNotTruthy: {"JumpFalse", []int{2}},
	OpJump:          {"Jump", []int{2}},
}

// Lookup returns the Definition for op, or an error for an unknown byte.
func Lookup(op Opcode) (*Definition, error) {
	def, ok := definitions[op]
	if !ok {
		return nil, fmt.Errorf("opcode %d undefined", op)
	}
	return def, nil
}

// Make encodes a single instruction: op's byte followed by its operands,
// each truncated/widened to the width Definition declares.
func Make(op Opcode, operands ...int) Instructions {
	def, ok := definitions[op]
	if !ok {
		return Instructions{}
	}

	length := 1
	for _, w := range def.OperandWidths {
		length += w
	}

	instruction := make(Instructions, length)
	instruction[0] = byte(op)

	offset := 1
	for i, operand := range operands {
		width := def.OperandWidths[i]
		switch width {
		case 2:
			binary.BigEndian.PutUint16(instruction[offset:], uint16(operand))
		}
		offset += width
	}
	return instruction
}

// ReadUint16 decodes a big-endian u16 operand at the start of ins.
func ReadUint16(ins Instructions) uint16 {
	return binary.BigEndian.Uint16(ins)
}

// ReadOperands decodes every operand of def starting at ins[0], returning
// the decoded values and how many bytes they occupied.
func ReadOperands(def *Definition, ins Instructions) ([]int, int) {
	operands := make([]int, len(def.OperandWidths))
	offset := 0

	for i, width := range def.OperandWidths {
		switch width {
		case 2:
			operands[i] = int(ReadUint16(ins[offset:]))
		}
		offset += width
	}
	return operands, offset
}

// Disassemble renders ins as human-readable text, one instruction per
// line, resolving Constant operands against consts so constant pushes
// show their payload instead of a bare index.
func Disassemble(ins Instructions, consts []object.Object) string {
	var out strings.Builder
	i := 0
	for i < len(ins) {
		def, err := Lookup(Opcode(ins[i]))
		if err != nil {
			fmt.Fprintf(&out, "%04d ERROR: %s\n", i, err)
			i++
			continue
		}

		operands, read := ReadOperands(def, ins[i+1:])
		fmt.Fprintf(&out, "%04d %s", i, def.Name)
		for j, operand := range operands {
			if def.Name == "Constant" && j == 0 && operand < len(consts) {
				fmt.Fprintf(&out, " %d (%s)", operand, consts[operand].Display())
			} else {
				fmt.Fprintf(&out, " %d", operand)
			}
		}
		out.WriteString("\n")

		i += 1 + read
	}
	return out.String()
}

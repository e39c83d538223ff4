package bytecode

import "testing"

func TestMakeConstant(t *testing.T) {
	tests := []struct {
		op       Opcode
		operands []int
		expected []byte
	}{
		{OpConstant, []int{65534}, []byte{byte(OpConstant), 0xFF, 0xFE}},
		{OpAdd, nil, []byte{byte(OpAdd)}},
		{OpJumpNotTruthy, []int{0}, []byte{byte(OpJumpNotTruthy), 0, 0}},
	}

	for _, tt := range tests {
		ins := Make(tt.op, tt.operands...)
		if len(ins) != len(tt.expected) {
			t.Fatalf("instruction has wrong length. want=%d, got=%d", len(tt.expected), len(ins))
		}
		for i, b := range tt.expected {
			if ins[i] != b {
				t.Errorf("byte %d mismatch. want=%d, got=%d", i, b, ins[i])
			}
		}
	}
}

func TestReadOperandsRoundTrip(t *testing.T) {
	tests := []struct {
		op        Opcode
		operands  []int
		bytesRead int
	}{
		{OpConstant, []int{65535}, 2},
		{OpJump, []int{1234}, 2},
	}

	for _, tt := range tests {
		ins := Make(tt.op, tt.operands...)
		def, err := Lookup(tt.op)
		if err != nil {
			t.Fatalf("Lookup error: %v", err)
		}

		operandsRead, n := ReadOperands(def, ins[1:])
		if n != tt.bytesRead {
			t.Fatalf("n wrong. want=%d, got=%d", tt.bytesRead, n)
		}
		for i, want := range tt.operands {
			if operandsRead[i] != want {
				t.Errorf("operand %d wrong. want=%d, got=%d", i, want, operandsRead[i])
			}
		}
	}
}

func TestDisassemble(t *testing.T) {
	instructions := []Instructions{
		Make(OpConstant, 1),
		Make(OpAdd),
		Make(OpConstant, 65535),
	}

	var concatted Instructions
	for _, ins := range instructions {
		concatted = append(concatted, ins...)
	}

	out := Disassemble(concatted, nil)
	expected := "0000 Constant 1\n0003 Add\n0004 Constant 65535\n"
	if out != expected {
		t.Errorf("disassembly mismatch.\nwant:\n%s\ngot:\n%s", expected, out)
	}
}

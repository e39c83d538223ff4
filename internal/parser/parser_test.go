package parser

import (
	"fmt"
	"testing"

	"github.com/cwbudde/go-monkey/internal/ast"
	"github.com/cwbudde/go-monkey/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	return program
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
		expectedValue      interface{}
	}{
		{"let x = 5;", "x", int64(5)},
		{"let y = true;", "y", true},
		{"let foobar = y;", "foobar", "y"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("expected 1 statement, got %d", len(program.Statements))
		}
		stmt, ok := program.Statements[0].(*ast.LetStatement)
		if !ok {
			t.Fatalf("expected *ast.LetStatement, got %T", program.Statements[0])
		}
		if stmt.Name.Value != tt.expectedIdentifier {
			t.Errorf("expected name %s, got %s", tt.expectedIdentifier, stmt.Name.Value)
		}
		testLiteralExpression(t, stmt.Value, tt.expectedValue)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5;")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected *ast.ReturnStatement, got %T", program.Statements[0])
	}
	testLiteralExpression(t, stmt.ReturnValue, int64(5))
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a + b + c", "((a + b) + c)"},
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if got := program.String(); got != tt.expected {
			t.Errorf("input %q: expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

// TestPrinterReparseFixedPoint checks that the pretty-printed form of a
// parsed program is a fixed point: re-parsing it and printing again
// yields the same string. Block-bodied constructs (if, fn) are excluded
// since String() prints their bodies without braces.
func TestPrinterReparseFixedPoint(t *testing.T) {
	inputs := []string{
		"let x = 5;",
		"return 5;",
		"a + b * c",
		"-a * b",
		"!(true == true)",
		"add(a, b, 1, 2 * 3)",
		`"foo" + "bar"`,
	}
	for _, input := range inputs {
		first := parseProgram(t, input).String()
		second := parseProgram(t, first).String()
		if first != second {
			t.Errorf("%q: printed form %q re-printed as %q", input, first, second)
		}
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	if !ok {
		t.Fatalf("expected *ast.IfExpression, got %T", stmt.Expression)
	}
	if len(exp.Consequence.Statements) != 1 {
		t.Fatalf("expected 1 consequence statement, got %d", len(exp.Consequence.Statements))
	}
	if exp.Alternative != nil {
		t.Fatalf("expected nil alternative, got %+v", exp.Alternative)
	}
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected *ast.FunctionLiteral, got %T", stmt.Expression)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Statements))
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected *ast.CallExpression, got %T", stmt.Expression)
	}
	if len(call.Arguments) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(call.Arguments))
	}
}

func TestParserErrorAbortsOnFirstFailure(t *testing.T) {
	p := New(lexer.New("let = 5;"))
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected a parser error, got nil")
	}
	if got := err.Error(); got != "Parser error: Unexpected token. Expected IDENT, got =" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestInvalidExpressionError(t *testing.T) {
	p := New(lexer.New(");"))
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected a parser error, got nil")
	}
	want := "Parser error: An expression cannot begin with token type )"
	if got := err.Error(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func testLiteralExpression(t *testing.T, exp ast.Expression, expected interface{}) {
	t.Helper()
	switch v := expected.(type) {
	case int64:
		il, ok := exp.(*ast.IntegerLiteral)
		if !ok || il.Value != v {
			t.Errorf("expected integer literal %d, got %#v", v, exp)
		}
	case bool:
		b, ok := exp.(*ast.Boolean)
		if !ok || b.Value != v {
			t.Errorf("expected boolean %t, got %#v", v, exp)
		}
	case string:
		id, ok := exp.(*ast.Identifier)
		if !ok || id.Value != v {
			t.Errorf("expected identifier %s, got %#v", v, exp)
		}
	default:
		t.Fatalf("unsupported expected type %s", fmt.Sprintf("%T", expected))
	}
}

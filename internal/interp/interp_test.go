package interp_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/reidenong/crafting-interpreters/internal/ast"
	"github.com/reidenong/crafting-interpreters/internal/diag"
	"github.com/reidenong/crafting-interpreters/internal/interp"
	"github.com/reidenong/crafting-interpreters/internal/lexer"
	"github.com/reidenong/crafting-interpreters/internal/parser"
	"github.com/reidenong/crafting-interpreters/internal/value"
)

// parseProgram parses src into statements, failing the test on syntax errors.
func parseProgram(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	rep := diag.NewReporter(nil)
	toks := lexer.NewFromString(src, rep).ScanTokens()
	stmts := parser.Parse(toks, rep)
	if rep.HadError() {
		t.Fatalf("parse error in %q", src)
	}
	return stmts
}

// eval evaluates src as a single expression.
func eval(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	stmts := parseProgram(t, src+";")
	es, ok := stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement = %T, want *ast.ExprStmt", stmts[0])
	}
	ev := interp.New(nil, diag.NewReporter(nil))
	return ev.Eval(es.Expr)
}

// evalOK evaluates src and fails the test on a runtime error.
func evalOK(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := eval(t, src)
	if err != nil {
		t.Fatalf("eval(%q) error = %v", src, err)
	}
	return v
}

func TestEvalLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want value.Value
	}{
		{"1", value.Num(1)},
		{"2.5", value.Num(2.5)},
		{`"hi"`, value.Str("hi")},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"nil", value.Nil()},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalOK(t, tt.src); !value.Equal(got, tt.want) {
				t.Errorf("eval(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestEvalGrouping(t *testing.T) {
	if got := evalOK(t, "(1 + 2) * 3"); got.AsNum() != 9 {
		t.Errorf("eval = %v, want 9", got)
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1 + 2", 3},
		{"5 - 3", 2},
		{"4 * 2.5", 10},
		{"7 / 2", 3.5},
		{"-5", -5},
		{"--5", 5},
		{"1 + 2 * 3", 7},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evalOK(t, tt.src)
			if !got.IsNum() || got.AsNum() != tt.want {
				t.Errorf("eval(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

// Division by zero is not guarded; IEEE rules apply.
func TestEvalDivisionByZero(t *testing.T) {
	if got := evalOK(t, "1 / 0"); !math.IsInf(got.AsNum(), 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	if got := evalOK(t, "-1 / 0"); !math.IsInf(got.AsNum(), -1) {
		t.Errorf("-1/0 = %v, want -Inf", got)
	}
	if got := evalOK(t, "0 / 0"); !math.IsNaN(got.AsNum()) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
}

func TestEvalStringConcat(t *testing.T) {
	got := evalOK(t, `"one" + "two"`)
	if !got.IsStr() || got.AsStr() != "onetwo" {
		t.Errorf("eval = %v, want Str(\"onetwo\")", got)
	}
}

func TestEvalTruthiness(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false},
		{`!""`, false},
		{"!1", false},
		{`!"x"`, false},
		{"!!nil", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evalOK(t, tt.src)
			if !got.IsBool() || got.AsBool() != tt.want {
				t.Errorf("eval(%q) = %v, want %t", tt.src, got, tt.want)
			}
		})
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 <= 2", true},
		{"3 > 2", true},
		{"2 >= 3", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evalOK(t, tt.src)
			if !got.IsBool() || got.AsBool() != tt.want {
				t.Errorf("eval(%q) = %v, want %t", tt.src, got, tt.want)
			}
		})
	}
}

// Equality is structural with no coercion; differing types are unequal,
// never a type error.
func TestEvalEquality(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1 == 1", true},
		{"1 == 2", false},
		{`1 == "1"`, false},
		{`"a" == "a"`, true},
		{"nil == nil", true},
		{"nil == false", false},
		{"true == 1", false},
		{"1 != 2", true},
		{`1 != "1"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evalOK(t, tt.src)
			if !got.IsBool() || got.AsBool() != tt.want {
				t.Errorf("eval(%q) = %v, want %t", tt.src, got, tt.want)
			}
		})
	}
}

func TestEvalTypeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"negate string", `-"abc"`, "Operand(s) must be numbers."},
		{"negate nil", "-nil", "Operand(s) must be numbers."},
		{"negate bool", "-true", "Operand(s) must be numbers."},
		{"subtract string", `1 - "a"`, "Operand(s) must be numbers."},
		{"multiply bool", "true * 2", "Operand(s) must be numbers."},
		{"divide nil", "nil / 1", "Operand(s) must be numbers."},
		{"compare string", `"a" < "b"`, "Operand(s) must be numbers."},
		{"compare mixed", `1 > "0"`, "Operand(s) must be numbers."},
		{"add mismatched", `"a" + 1`, "Operands must be two numbers or two strings."},
		{"add nil", "nil + nil", "Operands must be two numbers or two strings."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval(t, tt.src)
			rte, ok := err.(*interp.RuntimeError)
			if !ok {
				t.Fatalf("err = %v, want *interp.RuntimeError", err)
			}
			if rte.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", rte.Message, tt.wantMsg)
			}
		})
	}
}

// A runtime error is tagged with the operator token, so its line matches
// the operator's source line.
func TestRuntimeErrorLine(t *testing.T) {
	_, err := eval(t, "1 +\n2 +\n-\"abc\"")
	rte, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("err = %v, want *interp.RuntimeError", err)
	}
	if rte.Tok.Line != 3 {
		t.Errorf("Line = %d, want 3", rte.Tok.Line)
	}
	if rte.Tok.Lexeme != "-" {
		t.Errorf("Lexeme = %q, want %q", rte.Tok.Lexeme, "-")
	}
}

func TestPrintStringify(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"print 3.0;", "3\n"},
		{"print 3.5;", "3.5\n"},
		{"print nil;", "nil\n"},
		{"print 2 + 1;", "3\n"},
		{"print true;", "true\n"},
		{"print 1 / 0;", "Infinity\n"},
		{`print "hi";`, "\"hi\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var out bytes.Buffer
			ev := interp.New(&out, diag.NewReporter(nil))
			if err := ev.Interpret(parseProgram(t, tt.src)); err != nil {
				t.Fatalf("Interpret() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

// A runtime error halts execution: statements after the failing one do not
// run, and the error is reported once with the offending token's line.
func TestInterpretHaltsOnRuntimeError(t *testing.T) {
	var out, errOut bytes.Buffer
	rep := diag.NewReporter(&errOut)
	ev := interp.New(&out, rep)

	err := ev.Interpret(parseProgram(t, "print 1;\n-\"x\";\nprint 2;"))
	if err == nil {
		t.Fatal("Interpret() error = nil, want runtime error")
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
	if !rep.HadRuntimeError() {
		t.Error("HadRuntimeError() = false, want true")
	}
	if !strings.Contains(errOut.String(), "Operand(s) must be numbers. [line 2]") {
		t.Errorf("diagnostic = %q, want message with line 2", errOut.String())
	}
}

// Expression statements evaluate and discard their result.
func TestExpressionStatement(t *testing.T) {
	var out bytes.Buffer
	ev := interp.New(&out, diag.NewReporter(nil))
	if err := ev.Interpret(parseProgram(t, "1 + 2;")); err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if out.String() != "" {
		t.Errorf("output = %q, want empty", out.String())
	}
}

// Var declarations evaluate their initializer for effect only.
func TestVarStatement(t *testing.T) {
	ev := interp.New(nil, diag.NewReporter(nil))

	if err := ev.Interpret(parseProgram(t, "var x;")); err != nil {
		t.Errorf("var without initializer: error = %v", err)
	}
	if err := ev.Interpret(parseProgram(t, "var x = 1 + 2;")); err != nil {
		t.Errorf("var with initializer: error = %v", err)
	}

	// A failing initializer is still a runtime error.
	err := ev.Interpret(parseProgram(t, `var x = -"abc";`))
	if _, ok := err.(*interp.RuntimeError); !ok {
		t.Errorf("var with failing initializer: error = %v, want *interp.RuntimeError", err)
	}
}

// Reading a variable has no storage to resolve against yet.
func TestVariableReferenceUnbound(t *testing.T) {
	_, err := eval(t, "x")
	rte, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("err = %v, want *interp.RuntimeError", err)
	}
	if rte.Message != "Undefined variable 'x'." {
		t.Errorf("Message = %q, want undefined variable message", rte.Message)
	}
}

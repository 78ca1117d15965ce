package interp

import (
	"fmt"
	"io"

	"github.com/reidenong/crafting-interpreters/internal/ast"
	"github.com/reidenong/crafting-interpreters/internal/diag"
	"github.com/reidenong/crafting-interpreters/internal/token"
	"github.com/reidenong/crafting-interpreters/internal/value"
)

// result carries the outcome of evaluating one expression node: a value or
// a runtime error. Errors travel up as explicit values, not panics, so the
// single catch point in Interpret is an ordinary check.
type result struct {
	v   value.Value
	err error
}

func ok(v value.Value) result {
	return result{v: v}
}

func fail(err error) result {
	return result{err: err}
}

// Interp is a tree-walking evaluator. It dispatches one evaluation rule per
// AST variant over the value domain of number, string, boolean, and nil.
// The AST is only traversed, never mutated.
type Interp struct {
	out io.Writer      // Destination for print statements
	rep *diag.Reporter // Runtime error sink
}

var (
	_ ast.ExprVisitor[result] = (*Interp)(nil)
	_ ast.StmtVisitor[error]  = (*Interp)(nil)
)

// New creates an Interp writing print output to out.
func New(out io.Writer, rep *diag.Reporter) *Interp {
	if out == nil {
		out = io.Discard
	}
	return &Interp{out: out, rep: rep}
}

// Interpret executes statements in order. A runtime error raised by any
// statement is caught here, reported with the offending token's line, and
// halts execution of the remaining statements. The caught error is also
// returned for embedding callers.
func (i *Interp) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if rte, isRTE := err.(*RuntimeError); isRTE {
				i.rep.RuntimeError(rte.Tok, rte.Message)
			}
			return err
		}
	}
	return nil
}

// Eval evaluates a single expression. Used by expression-level tests and
// the embedding API.
func (i *Interp) Eval(expr ast.Expr) (value.Value, error) {
	return i.evaluate(expr)
}

func (i *Interp) execute(stmt ast.Stmt) error {
	return ast.VisitStmt[error](i, stmt)
}

func (i *Interp) evaluate(expr ast.Expr) (value.Value, error) {
	r := ast.VisitExpr[result](i, expr)
	return r.v, r.err
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// VisitPrintStmt evaluates the expression and writes its stringified value
// as one line to the output channel.
func (i *Interp) VisitPrintStmt(n *ast.PrintStmt) error {
	v, err := i.evaluate(n.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, v.Stringify())
	return nil
}

// VisitExprStmt evaluates the expression and discards the result.
func (i *Interp) VisitExprStmt(n *ast.ExprStmt) error {
	_, err := i.evaluate(n.Expr)
	return err
}

// VisitVarStmt evaluates the optional initializer for its effects.
// Binding the name to storage is a collaborator concern; no environment
// exists yet.
func (i *Interp) VisitVarStmt(n *ast.VarStmt) error {
	if n.Init == nil {
		return nil
	}
	_, err := i.evaluate(n.Init)
	return err
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// VisitLiteral returns the stored value unchanged.
func (i *Interp) VisitLiteral(n *ast.Literal) result {
	return ok(value.From(n.Value))
}

// VisitGrouping evaluates the inner expression.
func (i *Interp) VisitGrouping(n *ast.Grouping) result {
	v, err := i.evaluate(n.Expr)
	if err != nil {
		return fail(err)
	}
	return ok(v)
}

// VisitVariable has no storage to resolve the name against yet; reading an
// unbound variable is a runtime error.
func (i *Interp) VisitVariable(n *ast.Variable) result {
	return fail(runtimeError(n.Name, fmt.Sprintf("Undefined variable '%s'.", n.Name.Lexeme)))
}

func (i *Interp) VisitUnary(n *ast.Unary) result {
	right, err := i.evaluate(n.Right)
	if err != nil {
		return fail(err)
	}

	switch n.Op.Type {
	case token.SUB:
		if err := checkNumberOperands(n.Op, right); err != nil {
			return fail(err)
		}
		return ok(value.Num(-right.AsNum()))
	case token.NOT:
		return ok(value.Bool(!right.Truthy()))
	}

	// Unreachable: the parser only builds Unary with SUB or NOT.
	return fail(runtimeError(n.Op, "Invalid unary operator."))
}

func (i *Interp) VisitBinary(n *ast.Binary) result {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return fail(err)
	}
	right, err := i.evaluate(n.Right)
	if err != nil {
		return fail(err)
	}

	switch n.Op.Type {
	case token.SUB, token.MUL, token.DIV:
		if err := checkNumberOperands(n.Op, left, right); err != nil {
			return fail(err)
		}
		// Division by zero is not guarded; IEEE rules apply.
		switch n.Op.Type {
		case token.SUB:
			return ok(value.Num(left.AsNum() - right.AsNum()))
		case token.MUL:
			return ok(value.Num(left.AsNum() * right.AsNum()))
		default:
			return ok(value.Num(left.AsNum() / right.AsNum()))
		}

	case token.ADD:
		if left.IsNum() && right.IsNum() {
			return ok(value.Num(left.AsNum() + right.AsNum()))
		}
		if left.IsStr() && right.IsStr() {
			return ok(value.Str(left.AsStr() + right.AsStr()))
		}
		return fail(runtimeError(n.Op, "Operands must be two numbers or two strings."))

	case token.GREATER, token.GTE, token.LESS, token.LTE:
		if err := checkNumberOperands(n.Op, left, right); err != nil {
			return fail(err)
		}
		switch n.Op.Type {
		case token.GREATER:
			return ok(value.Bool(left.AsNum() > right.AsNum()))
		case token.GTE:
			return ok(value.Bool(left.AsNum() >= right.AsNum()))
		case token.LESS:
			return ok(value.Bool(left.AsNum() < right.AsNum()))
		default:
			return ok(value.Bool(left.AsNum() <= right.AsNum()))
		}

	case token.EQUALS:
		return ok(value.Bool(value.Equal(left, right)))
	case token.NOT_EQUALS:
		return ok(value.Bool(!value.Equal(left, right)))
	}

	// Unreachable: the parser only builds Binary with the operators above.
	return fail(runtimeError(n.Op, "Invalid binary operator."))
}

// checkNumberOperands raises a runtime error tagged with the operator token
// unless every operand is numeric.
func checkNumberOperands(op token.Token, operands ...value.Value) error {
	for _, v := range operands {
		if !v.IsNum() {
			return runtimeError(op, "Operand(s) must be numbers.")
		}
	}
	return nil
}

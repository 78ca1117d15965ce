package ast

import (
	"fmt"
	"strings"

	"github.com/reidenong/crafting-interpreters/internal/value"
)

// Printer renders AST nodes in a parenthesized prefix notation suitable for
// debugging: "1 + 2 * 3" renders as "(+ 1 (* 2 3))".
type Printer struct{}

var (
	_ ExprVisitor[string] = (*Printer)(nil)
	_ StmtVisitor[string] = (*Printer)(nil)
)

// PrintExpr returns the prefix rendering of an expression.
func (p *Printer) PrintExpr(e Expr) string {
	return VisitExpr[string](p, e)
}

// PrintStmt returns the prefix rendering of a statement.
func (p *Printer) PrintStmt(s Stmt) string {
	return VisitStmt[string](p, s)
}

// PrintProgram returns the rendering of a statement sequence, one per line.
func (p *Printer) PrintProgram(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(p.PrintStmt(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Printer) VisitLiteral(n *Literal) string {
	return value.From(n.Value).Stringify()
}

func (p *Printer) VisitGrouping(n *Grouping) string {
	return p.parenthesize("group", n.Expr)
}

func (p *Printer) VisitUnary(n *Unary) string {
	return p.parenthesize(n.Op.Lexeme, n.Right)
}

func (p *Printer) VisitBinary(n *Binary) string {
	return p.parenthesize(n.Op.Lexeme, n.Left, n.Right)
}

func (p *Printer) VisitVariable(n *Variable) string {
	return n.Name.Lexeme
}

func (p *Printer) VisitExprStmt(n *ExprStmt) string {
	return p.parenthesize("expr", n.Expr)
}

func (p *Printer) VisitPrintStmt(n *PrintStmt) string {
	return p.parenthesize("print", n.Expr)
}

func (p *Printer) VisitVarStmt(n *VarStmt) string {
	if n.Init == nil {
		return fmt.Sprintf("(var %s)", n.Name.Lexeme)
	}
	return fmt.Sprintf("(var %s %s)", n.Name.Lexeme, p.PrintExpr(n.Init))
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(p.PrintExpr(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

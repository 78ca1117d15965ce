package ast

import "fmt"

// ExprVisitor defines the generic visitor pattern for expression traversal.
// Type parameter T is the return type of visit methods.
//
// Example usage for evaluation:
//
//	type Evaluator struct{}
//	func (e *Evaluator) VisitLiteral(n *ast.Literal) value.Value { ... }
//	// ... other methods
type ExprVisitor[T any] interface {
	VisitLiteral(*Literal) T
	VisitGrouping(*Grouping) T
	VisitUnary(*Unary) T
	VisitBinary(*Binary) T
	VisitVariable(*Variable) T
}

// StmtVisitor defines the generic visitor pattern for statement traversal.
type StmtVisitor[T any] interface {
	VisitExprStmt(*ExprStmt) T
	VisitPrintStmt(*PrintStmt) T
	VisitVarStmt(*VarStmt) T
}

// VisitExpr dispatches an expression to the matching visitor method.
// The node set is closed, so the type switch is exhaustive.
func VisitExpr[T any](v ExprVisitor[T], e Expr) T {
	switch n := e.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Variable:
		return v.VisitVariable(n)
	default:
		panic(fmt.Sprintf("ast: unknown expression type %T", e))
	}
}

// VisitStmt dispatches a statement to the matching visitor method.
func VisitStmt[T any](v StmtVisitor[T], s Stmt) T {
	switch n := s.(type) {
	case *ExprStmt:
		return v.VisitExprStmt(n)
	case *PrintStmt:
		return v.VisitPrintStmt(n)
	case *VarStmt:
		return v.VisitVarStmt(n)
	default:
		panic(fmt.Sprintf("ast: unknown statement type %T", s))
	}
}

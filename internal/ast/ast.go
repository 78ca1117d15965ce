// Package ast defines the abstract syntax tree for Lox programs.
//
// The AST is a strict immutable tree: nodes are built bottom-up by the
// parser and only traversed afterwards, never mutated. There are two node
// families:
//
//	Expr (interface) - expressions that produce values
//	├── Literal, Grouping, Unary, Binary - operations
//	└── Variable - references
//	Stmt (interface) - statements that perform actions
//	└── ExprStmt, PrintStmt, VarStmt
//
// Evaluation and printing dispatch over the closed node set via the generic
// visitor in visitor.go.
package ast

import "github.com/reidenong/crafting-interpreters/internal/token"

// Expr is the interface for all expression nodes.
type Expr interface {
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	stmtNode() // marker method to prevent external implementations
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// Literal represents a literal value.
// The value is a float64, string, bool, or nil, as stored by the lexer.
// Examples: 42, "hello", true, nil
type Literal struct {
	Value any
}

// Grouping represents a parenthesized expression.
// Example: (a + b)
type Grouping struct {
	Expr Expr // Inner expression
}

// Unary represents a prefix unary operation.
// Examples: -x, !flag
type Unary struct {
	Op    token.Token // Operator token (SUB or NOT)
	Right Expr        // Operand
}

// Binary represents a binary operation.
// Examples: a + b, x == y
type Binary struct {
	Left  Expr        // Left operand
	Op    token.Token // Operator token
	Right Expr        // Right operand
}

// Variable represents a variable reference.
// The name is carried as a token; resolution against storage is a
// collaborator concern.
type Variable struct {
	Name token.Token // IDENT token
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// ExprStmt represents an expression used as a statement.
// Example: 1 + 2;
type ExprStmt struct {
	Expr Expr // Expression to evaluate for its side effects
}

// PrintStmt represents a print statement.
// Example: print "hello";
type PrintStmt struct {
	Expr Expr // Expression whose value is printed
}

// VarStmt represents a variable declaration with optional initializer.
// Examples: var x; var x = 1 + 2;
type VarStmt struct {
	Name token.Token // IDENT token
	Init Expr        // Initializer expression (nil if absent)
}

// -----------------------------------------------------------------------------
// Marker methods and compile-time checks
// -----------------------------------------------------------------------------

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Variable) exprNode() {}

func (*ExprStmt) stmtNode()  {}
func (*PrintStmt) stmtNode() {}
func (*VarStmt) stmtNode()   {}

// Ensure all node types implement their family interface.
var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Variable)(nil)

	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*VarStmt)(nil)
)

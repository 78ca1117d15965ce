package parser

import (
	"github.com/reidenong/crafting-interpreters/internal/ast"
	"github.com/reidenong/crafting-interpreters/internal/diag"
	"github.com/reidenong/crafting-interpreters/internal/token"
)

// Parser is a recursive descent parser for Lox programs.
// It exclusively owns the cursor over the token sequence; the cursor only
// moves forward, with one token of lookahead plus access to the previous
// token.
type Parser struct {
	tokens []token.Token  // Token sequence, EOF-terminated
	curr   int            // Cursor into tokens
	rep    *diag.Reporter // Error sink
	errors ErrorList      // Accumulated errors
}

// New creates a Parser over an EOF-terminated token sequence.
func New(tokens []token.Token, rep *diag.Reporter) *Parser {
	return &Parser{tokens: tokens, rep: rep}
}

// Parse parses the token sequence into a top-level statement sequence.
// A statement that fails to parse is reported, discarded, and parsing
// resumes at the next statement boundary, so the result may be shorter
// than the source but is never nil on error.
func Parse(tokens []token.Token, rep *diag.Reporter) []ast.Stmt {
	return New(tokens, rep).Parse()
}

// Parse runs the top-level loop, invoking declaration until EOF.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Errors returns the parse errors accumulated so far.
func (p *Parser) Errors() ErrorList {
	return p.errors
}

// ParseExpr parses a single expression from source tokens.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.expression()
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// declaration parses one declaration or statement. It is the recovery
// boundary for parse errors: on error it synchronizes to the next statement
// boundary and yields no node.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var err error

	if p.match(token.VAR) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// varDeclaration parses: "var" IDENTIFIER ("=" expression)? ";"
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.match(token.ASSIGN) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Init: init}, nil
}

// statement parses: "print" expression ";" | expression ";"
func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(token.PRINT) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: expr}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// expression parses a full expression: expression -> equality
func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

// equality parses: comparison (("!="|"==") comparison)*
func (p *Parser) equality() (ast.Expr, error) {
	return p.binaryLeft(p.comparison, token.NOT_EQUALS, token.EQUALS)
}

// comparison parses: term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.binaryLeft(p.term, token.GREATER, token.GTE, token.LESS, token.LTE)
}

// term parses: factor (("+"|"-") factor)*
func (p *Parser) term() (ast.Expr, error) {
	return p.binaryLeft(p.factor, token.ADD, token.SUB)
}

// factor parses: unary (("*"|"/") unary)*
func (p *Parser) factor() (ast.Expr, error) {
	return p.binaryLeft(p.unary, token.MUL, token.DIV)
}

// binaryLeft parses a left-associative binary precedence level by iterative
// absorption of operators at this level.
func (p *Parser) binaryLeft(higher func() (ast.Expr, error), ops ...token.Type) (ast.Expr, error) {
	expr, err := higher()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()
		right, err := higher()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary parses: ("!"|"-") unary | primary
// Unary operators are right-associative via direct recursion.
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.NOT, token.SUB) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

// primary parses: NUMBER | STRING | "true" | "false" | "nil"
// | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}, nil
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}, nil

	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}, nil

	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}, nil

	case p.match(token.LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expr: expr}, nil
	}

	return nil, p.error(p.peek(), "Expect expression.")
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// consume advances past the expected token type or raises a parse error
// tagged with the current, not-yet-consumed token and the message.
func (p *Parser) consume(typ token.Type, message string) (token.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return token.Token{}, p.error(p.peek(), message)
}

// error reports a parse error and returns it for propagation.
func (p *Parser) error(tok token.Token, message string) *ParseError {
	p.rep.ErrorAt(tok, message)
	err := &ParseError{Tok: tok, Message: message}
	p.errors = append(p.errors, err)
	return err
}

// synchronize discards tokens until a likely statement boundary: just past
// a ';', or just before a token that begins a new statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}

// match consumes the current token if it matches any of the given types.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// check returns true if the current token matches, without consuming.
func (p *Parser) check(typ token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == typ
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.curr++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token {
	return p.tokens[p.curr]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	return p.tokens[p.curr-1]
}

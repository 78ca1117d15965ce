// Package token defines lexical tokens for Lox.
package token

import "fmt"

// Type represents a lexical token type.
type Type uint8

const (
	// Special tokens
	ILLEGAL Type = iota // <illegal>
	EOF                 // EOF

	// Single-character tokens
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	SUB       // -
	ADD       // +
	SEMICOLON // ;
	DIV       // /
	MUL       // *

	// One or two character tokens
	NOT        // !
	NOT_EQUALS // !=
	ASSIGN     // =
	EQUALS     // ==
	GREATER    // >
	GTE        // >=
	LESS       // <
	LTE        // <=

	// Literals
	IDENT  // identifier
	STRING // string
	NUMBER // number

	// Keywords
	keywordStart
	AND    // and
	CLASS  // class
	ELSE   // else
	FALSE  // false
	FUN    // fun
	FOR    // for
	IF     // if
	NIL    // nil
	OR     // or
	PRINT  // print
	RETURN // return
	SUPER  // super
	THIS   // this
	TRUE   // true
	VAR    // var
	WHILE  // while
	keywordEnd
)

// IsKeyword returns true if the token type is a keyword.
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token type is a literal (identifier, number, string).
func (t Type) IsLiteral() bool {
	return t == IDENT || t == NUMBER || t == STRING
}

var typeNames = map[Type]string{
	ILLEGAL:    "illegal",
	EOF:        "end of file",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	COMMA:      ",",
	DOT:        ".",
	SUB:        "-",
	ADD:        "+",
	SEMICOLON:  ";",
	DIV:        "/",
	MUL:        "*",
	NOT:        "!",
	NOT_EQUALS: "!=",
	ASSIGN:     "=",
	EQUALS:     "==",
	GREATER:    ">",
	GTE:        ">=",
	LESS:       "<",
	LTE:        "<=",
	IDENT:      "identifier",
	STRING:     "string",
	NUMBER:     "number",
	AND:        "and",
	CLASS:      "class",
	ELSE:       "else",
	FALSE:      "false",
	FUN:        "fun",
	FOR:        "for",
	IF:         "if",
	NIL:        "nil",
	OR:         "or",
	PRINT:      "print",
	RETURN:     "return",
	SUPER:      "super",
	THIS:       "this",
	TRUE:       "true",
	VAR:        "var",
	WHILE:      "while",
}

// String returns a human-readable name for the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", t)
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if found, otherwise IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token represents a scanned token: its type, the exact source text it was
// scanned from, the literal value for NUMBER and STRING tokens (float64 or
// string, nil otherwise), and the 1-based source line it starts on.
// Tokens are created once by the lexer and never mutated.
type Token struct {
	Type    Type
	Lexeme  string
	Literal any
	Line    int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

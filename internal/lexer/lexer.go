// Package lexer provides Lox source code tokenization.
package lexer

import (
	"strconv"

	"github.com/reidenong/crafting-interpreters/internal/diag"
	"github.com/reidenong/crafting-interpreters/internal/token"
)

// singleChar maps unambiguous single-character lexemes to their token types.
// Characters that can start a longer operator ('!', '=', '<', '>') and '/'
// (which can start a comment) are handled separately.
var singleChar = map[byte]token.Type{
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.SUB,
	'+': token.ADD,
	';': token.SEMICOLON,
	'*': token.MUL,
}

// Lexer tokenizes Lox source code in a single forward pass.
type Lexer struct {
	src    []byte         // Source code
	start  int            // Start offset of the token being scanned
	offset int            // Current byte offset
	line   int            // Current 1-based line
	tokens []token.Token  // Scanned tokens
	rep    *diag.Reporter // Error sink; lexical errors are non-fatal
}

// New creates a new Lexer for the given source code.
func New(src []byte, rep *diag.Reporter) *Lexer {
	return &Lexer{src: src, line: 1, rep: rep}
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string, rep *diag.Reporter) *Lexer {
	return New([]byte(src), rep)
}

// ScanTokens scans the entire source and returns the token sequence,
// terminated by a synthetic EOF token. Lexical errors are reported through
// the reporter and scanning continues with the next character.
func (l *Lexer) ScanTokens() []token.Token {
	for !l.atEnd() {
		l.start = l.offset
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.Token{Type: token.EOF, Line: l.line})
	return l.tokens
}

func (l *Lexer) scanToken() {
	ch := l.next()

	if typ, ok := singleChar[ch]; ok {
		l.add(typ)
		return
	}

	switch ch {
	case '!':
		if l.match('=') {
			l.add(token.NOT_EQUALS)
		} else {
			l.add(token.NOT)
		}
	case '=':
		if l.match('=') {
			l.add(token.EQUALS)
		} else {
			l.add(token.ASSIGN)
		}
	case '<':
		if l.match('=') {
			l.add(token.LTE)
		} else {
			l.add(token.LESS)
		}
	case '>':
		if l.match('=') {
			l.add(token.GTE)
		} else {
			l.add(token.GREATER)
		}

	case '/':
		if l.match('/') {
			// Line comment, consumed without emitting a token.
			for !l.atEnd() && l.peek() != '\n' {
				l.next()
			}
		} else {
			l.add(token.DIV)
		}

	case ' ', '\r', '\t':
		// Whitespace is discarded.

	case '\n':
		l.line++

	case '"':
		l.scanString()

	default:
		switch {
		case isDigit(ch):
			l.scanNumber()
		case isIdentStart(ch):
			l.scanIdent()
		default:
			l.rep.Error(l.line, "Unexpected character.")
		}
	}
}

// scanString scans a double-quoted string literal.
// Content is taken verbatim (no escape processing); strings may span lines.
func (l *Lexer) scanString() {
	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.next()
	}

	if l.atEnd() {
		l.rep.Error(l.line, "Unterminated string.")
		return
	}

	l.next() // closing quote
	l.addLiteral(token.STRING, string(l.src[l.start+1:l.offset-1]))
}

// scanNumber scans a numeric literal: digits with an optional fraction.
// The '.' is only consumed when a digit follows it, so "123." scans as the
// number 123 followed by a DOT token.
func (l *Lexer) scanNumber() {
	for !l.atEnd() && isDigit(l.peek()) {
		l.next()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.next()
		for !l.atEnd() && isDigit(l.peek()) {
			l.next()
		}
	}

	n, _ := strconv.ParseFloat(string(l.src[l.start:l.offset]), 64)
	l.addLiteral(token.NUMBER, n)
}

func (l *Lexer) scanIdent() {
	for !l.atEnd() && isIdentContinue(l.peek()) {
		l.next()
	}
	name := string(l.src[l.start:l.offset])
	l.add(token.LookupIdent(name))
}

// Cursor primitives

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.src)
}

// next consumes and returns the current character.
func (l *Lexer) next() byte {
	ch := l.src[l.offset]
	l.offset++
	return ch
}

// peek returns the current character without consuming it, 0 at EOF.
func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.offset]
}

// peekNext returns the character after the current one, 0 at EOF.
func (l *Lexer) peekNext() byte {
	if l.offset+1 >= len(l.src) {
		return 0
	}
	return l.src[l.offset+1]
}

// match consumes the current character if it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.offset] != expected {
		return false
	}
	l.offset++
	return true
}

func (l *Lexer) add(typ token.Type) {
	l.addLiteral(typ, nil)
}

func (l *Lexer) addLiteral(typ token.Type, literal any) {
	l.tokens = append(l.tokens, token.Token{
		Type:    typ,
		Lexeme:  string(l.src[l.start:l.offset]),
		Literal: literal,
		Line:    l.line,
	})
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// Package parser provides a Lox recursive descent parser.
package parser

import (
	"fmt"

	"github.com/reidenong/crafting-interpreters/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// It is tagged with the token the parser was looking at when the error was
// raised. ParseError values travel up the call chain only for control flow:
// reporting happens once, at raise time, and the nearest declaration-level
// caller recovers by synchronizing.
type ParseError struct {
	Tok     token.Token // Token where the error occurred
	Message string      // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Tok.Type == token.EOF {
		return fmt.Sprintf("line %d at end: %s", e.Tok.Line, e.Message)
	}
	return fmt.Sprintf("line %d at '%s': %s", e.Tok.Line, e.Tok.Lexeme, e.Message)
}

// ErrorList is a list of parse errors.
type ErrorList []*ParseError

// Error returns a combined error message for all errors.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Err returns an error if there are any errors, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

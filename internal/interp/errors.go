// Package interp provides a tree-walking evaluator for Lox programs.
package interp

import (
	"fmt"

	"github.com/reidenong/crafting-interpreters/internal/token"
)

// RuntimeError represents an error raised during evaluation, tagged with
// the offending operator or identifier token. It propagates up to exactly
// one catch point, the top-level Interpret call.
type RuntimeError struct {
	Tok     token.Token // Offending token
	Message string      // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [line %d]", e.Message, e.Tok.Line)
}

// runtimeError creates a RuntimeError tagged with the given token.
func runtimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: message}
}

package lox

import (
	"fmt"
)

// ParseError represents a syntax error in Lox source code.
// It describes the first error encountered; when diagnostics are enabled,
// every error is printed in scan order.
type ParseError struct {
	Line    int    // 1-based line number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// RuntimeError represents an error during Lox evaluation.
type RuntimeError struct {
	Line    int    // 1-based line number of the offending token
	Message string // Error description
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at line %d: %s", e.Line, e.Message)
}

// Exit codes for the conventional interpreter exit-code contract.
const (
	ExitOK      = 0  // Successful run
	ExitUsage   = 64 // Command line usage error
	ExitSyntax  = 65 // Syntax error in the source
	ExitRuntime = 70 // Runtime error during evaluation
)

// ExitCode maps an error returned by Run, Exec, or Program.Run to the
// conventional interpreter exit code: 65 for syntax errors, 70 for runtime
// errors, 0 for nil.
func ExitCode(err error) int {
	switch err.(type) {
	case nil:
		return ExitOK
	case *ParseError:
		return ExitSyntax
	case *RuntimeError:
		return ExitRuntime
	default:
		return 1
	}
}

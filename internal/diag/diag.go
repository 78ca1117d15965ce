// Package diag provides diagnostic reporting for the Lox pipeline.
//
// A Reporter is shared by the lexer, parser, and interpreter for one run.
// It writes formatted diagnostics to an error writer and tracks two flags
// the embedding driver maps to exit codes: HadError for compile-time
// errors and HadRuntimeError for evaluation errors.
package diag

import (
	"fmt"
	"io"

	"github.com/reidenong/crafting-interpreters/internal/token"
)

// Reporter accumulates and reports diagnostics.
// It is owned by the caller for the lifetime of one run; interactive
// drivers call Reset between lines.
type Reporter struct {
	w               io.Writer
	hadError        bool
	hadRuntimeError bool
	firstLine       int
	firstMsg        string
}

// NewReporter creates a Reporter writing to w.
// A nil writer discards diagnostics but still tracks the flags.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

// Error reports a bare line-numbered compile-time error.
// Used by the lexer, which has no token to attach.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAt reports a compile-time error attached to a token.
func (r *Reporter) ErrorAt(tok token.Token, message string) {
	if tok.Type == token.EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

// RuntimeError reports an evaluation error attached to a token.
func (r *Reporter) RuntimeError(tok token.Token, message string) {
	fmt.Fprintf(r.w, "%s [line %d]\n", message, tok.Line)
	r.hadRuntimeError = true
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.w, "[line %d] Error%s: %s\n", line, where, message)
	if !r.hadError {
		r.firstLine = line
		r.firstMsg = message
	}
	r.hadError = true
}

// First returns the line and message of the first compile-time error
// reported since the last Reset.
func (r *Reporter) First() (line int, message string) {
	return r.firstLine, r.firstMsg
}

// HadError returns true if any compile-time error was reported.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// HadRuntimeError returns true if a runtime error was reported.
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntimeError
}

// Reset clears the compile-time error flag.
// Interactive drivers call this between lines so one bad line does not
// poison the session.
func (r *Reporter) Reset() {
	r.hadError = false
	r.firstLine = 0
	r.firstMsg = ""
}

package lox

import (
	"bytes"

	"github.com/reidenong/crafting-interpreters/internal/ast"
	"github.com/reidenong/crafting-interpreters/internal/diag"
	"github.com/reidenong/crafting-interpreters/internal/interp"
)

// Program represents a parsed Lox program ready for evaluation.
// The underlying AST is immutable, so a Program is safe for concurrent
// use; each call to Run creates an independent evaluator.
type Program struct {
	stmts  []ast.Stmt
	source string // Original source for debugging
}

// Run evaluates the program with the given configuration.
// Returns the print output as a string, or a *RuntimeError if evaluation
// fails. If config.Output is set, output is written there and the returned
// string will be empty.
func (p *Program) Run(config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}

	var outputBuf *bytes.Buffer
	output := config.Output
	if output == nil {
		outputBuf = &bytes.Buffer{}
		output = outputBuf
	}

	rep := diag.NewReporter(config.Stderr)
	ev := interp.New(output, rep)

	if err := ev.Interpret(p.stmts); err != nil {
		if rte, ok := err.(*interp.RuntimeError); ok {
			return "", &RuntimeError{Line: rte.Tok.Line, Message: rte.Message}
		}
		return "", err
	}

	if outputBuf != nil {
		return outputBuf.String(), nil
	}
	return "", nil
}

// AST returns a human-readable rendering of the parsed tree, one statement
// per line in parenthesized prefix notation. Useful for debugging.
func (p *Program) AST() string {
	var pr ast.Printer
	return pr.PrintProgram(p.stmts)
}

// Source returns the original Lox source code.
func (p *Program) Source() string {
	return p.source
}

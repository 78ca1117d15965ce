package lox

import (
	"io"

	"github.com/reidenong/crafting-interpreters/internal/diag"
	"github.com/reidenong/crafting-interpreters/internal/lexer"
	"github.com/reidenong/crafting-interpreters/internal/parser"
)

// Version is the lox version string.
const Version = "0.1.0"

// Run scans, parses, and evaluates Lox source code.
// This is a convenience function for one-off execution. For repeated
// execution, use Compile followed by Program.Run.
//
// Returns the print output as a string, or an error if scanning, parsing,
// or evaluation fails. Diagnostics are also written to config.Stderr when
// set.
//
// Example:
//
//	output, err := lox.Run(`print 1 + 2;`, nil)
//	// output: "3\n"
func Run(src string, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}

	prog, err := compile(src, config.Stderr)
	if err != nil {
		return "", err
	}
	return prog.Run(config)
}

// Exec runs a Lox program writing print output to output.
// Useful for integration with I/O pipelines where the caller owns the
// output writer.
//
// Example:
//
//	err := lox.Exec(`print "hello";`, os.Stdout, nil)
func Exec(src string, output io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	config.Output = output

	_, err := Run(src, config)
	return err
}

// Compile scans and parses a Lox program without evaluating it.
// The returned Program can be executed multiple times. Diagnostics are not
// printed; syntax errors are returned as a *ParseError describing the
// first error encountered.
func Compile(src string) (*Program, error) {
	return compile(src, nil)
}

// MustCompile is like Compile but panics if the program has syntax errors.
// It simplifies initialization of global program variables.
func MustCompile(src string) *Program {
	prog, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return prog
}

// compile runs the lexer and parser, writing diagnostics to stderr if
// non-nil. Parsing recovers per statement, so on error the partial
// statement sequence still exists but is not returned.
func compile(src string, stderr io.Writer) (*Program, error) {
	rep := diag.NewReporter(stderr)

	tokens := lexer.NewFromString(src, rep).ScanTokens()
	stmts := parser.Parse(tokens, rep)

	if rep.HadError() {
		line, msg := rep.First()
		return nil, &ParseError{Line: line, Message: msg}
	}

	return &Program{stmts: stmts, source: src}, nil
}

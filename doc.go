// Package lox provides the front end and evaluator for the Lox scripting
// language: a hand-rolled lexer, a recursive descent parser, and a
// tree-walking evaluator.
//
// The language covered here is the expression-and-statement core of Lox:
// number, string, boolean, and nil literals, unary and binary operators
// under the usual precedence grammar, grouping, variable references,
// print statements, expression statements, and var declarations.
//
// # Quick Start
//
// For simple one-off execution:
//
//	output, err := lox.Run(`print 1 + 2 * 3;`, nil)
//	// output: "7\n"
//
// # Compiled Programs
//
// For repeated execution of the same program:
//
//	prog, err := lox.Compile(`print "hello";`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, _ := prog.Run(nil)
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: lexical or syntax errors in Lox source
//   - [RuntimeError]: type errors during evaluation
//
// [ExitCode] maps these to the conventional interpreter exit codes
// (65 for syntax errors, 70 for runtime errors). Parsing recovers per
// statement: one malformed statement is reported and discarded without
// abandoning the statements that follow it.
//
// # Diagnostics
//
// When [Config].Stderr is set, diagnostics are printed in the classic
// format as they are encountered:
//
//	[line 1] Error at ')': Expect expression.
//	Operand(s) must be numbers. [line 3]
//
// # Thread Safety
//
// Compiled [Program] objects are immutable and safe for concurrent use.
// Each call to [Program.Run] creates an independent evaluator.
package lox

package lox

import "io"

// Config holds configuration options for Lox execution.
type Config struct {
	// Output is the writer for print statements.
	// If nil, output is captured and returned from Run.
	Output io.Writer

	// Stderr is the writer for diagnostics.
	// If nil, diagnostics are discarded; errors are still returned as
	// typed values.
	Stderr io.Writer
}

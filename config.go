package ucore

import "io"

// Config holds configuration options for CORE execution.
type Config struct {
	// Output is the writer for the "name = value" lines emitted by
	// write statements. If nil, output is captured and returned
	// from Run.
	Output io.Writer
}

// Package ucore provides a front-to-back processor for the CORE
// teaching language: lexical scanning, recursive-descent parsing,
// canonical pretty-printing, and tree-walking execution against an
// external input-data stream.
//
// # Quick Start
//
// For simple one-off execution:
//
//	output, err := ucore.Run(
//	    "program int X; begin read X; write X; end",
//	    strings.NewReader("42"), nil)
//	// output: "X = 42\n"
//
// # Compiled Programs
//
// For repeated execution of the same program:
//
//	prog, err := ucore.Compile(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, data := range inputs {
//	    output, err := prog.Run(strings.NewReader(data), nil)
//	    // ...
//	}
//
// [Program.Print] returns the canonical pretty-printed rendering of a
// compiled program, which reparses to a structurally equal tree.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: lexical, syntactic, and declaration errors
//   - [RuntimeError]: errors during execution
//
// Both unwrap to one of the exported sentinel errors (ErrIllegalLexeme,
// ErrUnexpectedToken, ErrDuplicateDeclaration, ErrUndeclaredIdentifier,
// ErrUninitializedRead, ErrInsufficientInput), so callers can
// discriminate error kinds with errors.Is.
//
// # Thread Safety
//
// Compiled [Program] objects are safe for concurrent use. Each call to
// [Program.Run] clones the symbol table and owns a fresh input stream.
// Evaluation itself has no cancellation mechanism: a non-terminating
// while loop in the CORE program runs forever, so callers wanting a
// timeout must enforce one externally.
package ucore

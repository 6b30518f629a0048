package ucore

import (
	"bytes"
	"io"

	"github.com/kolkov/ucore/internal/ast"
	"github.com/kolkov/ucore/internal/interp"
	"github.com/kolkov/ucore/internal/runtime"
	"github.com/kolkov/ucore/internal/semantic"
)

// Program represents a compiled CORE program ready for execution.
// It is safe for concurrent use; each call to Run clones the symbol
// table and owns a fresh input-data stream.
type Program struct {
	tree   *ast.Program
	syms   *semantic.SymbolTable
	source string // Original source for debugging
}

// Run executes the compiled program against the given input data.
// Returns the ordered "name = value" lines emitted by write statements
// as a string, or a *RuntimeError if execution fails.
//
// A nil input means empty input data. If config.Output is set, output
// is written there and the returned string will be empty.
func (p *Program) Run(input io.Reader, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}

	data, err := runtime.ReadInputData(input)
	if err != nil {
		return "", &RuntimeError{Message: err.Error()}
	}

	var outputBuf *bytes.Buffer
	output := config.Output
	if output == nil {
		outputBuf = &bytes.Buffer{}
		output = outputBuf
	}

	// Each run starts from the declared-but-uninitialized state.
	it := interp.New(p.syms.Clone(), data, output)
	if err := it.Run(p.tree); err != nil {
		return "", wrapRuntimeError(err)
	}

	if outputBuf != nil {
		return outputBuf.String(), nil
	}
	return "", nil
}

// Print returns the canonical pretty-printed rendering of the program:
// reserved words lowercase, one statement per line, nested blocks
// indented by four columns per level. The rendering reparses to a
// tree structurally equal to the compiled one.
func (p *Program) Print() string {
	return ast.Sprint(p.tree)
}

// Source returns the original CORE source code.
func (p *Program) Source() string {
	return p.source
}

// Idents returns the declared identifier names in no particular order.
func (p *Program) Idents() []string {
	return p.syms.Names()
}

// Unused returns the names of identifiers that are declared but never
// referenced in the statement section, sorted alphabetically.
func (p *Program) Unused() []string {
	return semantic.Unused(p.tree)
}

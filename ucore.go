package ucore

import (
	"io"

	"github.com/kolkov/ucore/internal/lexer"
	"github.com/kolkov/ucore/internal/parser"
)

// Version is the ucore version string.
const Version = "0.1.0"

// Compile parses a CORE program and returns it ready for execution.
// Returns a *ParseError on any lexical, syntactic, or declaration
// failure; a failed parse means execution can never start.
func Compile(src string) (*Program, error) {
	tree, syms, err := parser.Parse(src)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return &Program{tree: tree, syms: syms, source: src}, nil
}

// MustCompile is like Compile but panics on error.
// It simplifies safe initialization of global program variables.
func MustCompile(src string) *Program {
	prog, err := Compile(src)
	if err != nil {
		panic(`ucore: Compile: ` + err.Error())
	}
	return prog
}

// Run compiles and executes a CORE program with the given input data.
// This is a convenience function for one-off execution; for repeated
// execution of the same program, use Compile followed by Program.Run.
//
// Returns the program output as a string, or an error if parsing or
// execution fails.
//
// Example:
//
//	output, err := ucore.Run(
//	    "program int X; begin read X; write X; end",
//	    strings.NewReader("42"), nil)
//	// output: "X = 42\n"
func Run(src string, input io.Reader, config *Config) (string, error) {
	prog, err := Compile(src)
	if err != nil {
		return "", err
	}
	return prog.Run(input, config)
}

// Exec compiles and executes a CORE program, writing output to the
// given writer. A pipeline convenience around Run.
func Exec(src string, input io.Reader, output io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	config.Output = output
	_, err := Run(src, input, config)
	return err
}

// Lexeme is one classified unit of source text, as reported by
// Tokenize. ID is the stable numeric lexeme kind; Seq counts lexemes
// from the start of the scan (1-based).
type Lexeme struct {
	ID   int
	Kind string
	Text string
	Seq  int
}

// Tokenize scans a CORE program and returns its lexeme stream,
// including the trailing EOF sentinel. Diagnostic helper behind the
// "ucore lex" command. Returns a *ParseError wrapping
// ErrIllegalLexeme when no rule matches at some position.
func Tokenize(src string) ([]Lexeme, error) {
	raw, err := lexer.Tokenize(src)
	if err != nil {
		return nil, wrapParseError(err)
	}
	lexemes := make([]Lexeme, len(raw))
	for i, lx := range raw {
		lexemes[i] = Lexeme{
			ID:   int(lx.Kind),
			Kind: lx.Kind.String(),
			Text: lx.Text,
			Seq:  lx.Seq,
		}
	}
	return lexemes, nil
}

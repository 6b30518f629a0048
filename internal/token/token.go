// Package token defines lexeme kinds for the CORE language.
package token

import "strconv"

// Kind identifies the lexical class of a lexeme.
//
// The numeric values are part of the language's external interface and
// are stable: tests and the lexeme-dump tooling assert on them.
type Kind uint8

const (
	// ILLEGAL is the zero value; no well-formed lexeme carries it.
	ILLEGAL Kind = iota

	// Reserved words (ids 1-11)
	PROGRAM // program
	BEGIN   // begin
	END     // end
	INT     // int
	IF      // if
	THEN    // then
	ELSE    // else
	WHILE   // while
	LOOP    // loop
	READ    // read
	WRITE   // write

	// Symbols (ids 12-30)
	SEMICOLON  // ;
	COMMA      // ,
	ASSIGN     // =
	NOT        // !
	LBRACKET   // [
	RBRACKET   // ]
	AND        // &&
	OR         // ||
	LPAREN     // (
	RPAREN     // )
	ADD        // +
	SUB        // -
	MUL        // *
	NOT_EQUALS // !=
	EQUALS     // ==
	LESS       // <
	GREATER    // >
	LTE        // <=
	GTE        // >=

	// Literals (ids 31-32)
	INTEGER // integer
	IDENT   // identifier

	// EOF (id 33) is returned once the source buffer is exhausted.
	EOF
)

var names = [...]string{
	ILLEGAL:    "<illegal>",
	PROGRAM:    "program",
	BEGIN:      "begin",
	END:        "end",
	INT:        "int",
	IF:         "if",
	THEN:       "then",
	ELSE:       "else",
	WHILE:      "while",
	LOOP:       "loop",
	READ:       "read",
	WRITE:      "write",
	SEMICOLON:  ";",
	COMMA:      ",",
	ASSIGN:     "=",
	NOT:        "!",
	LBRACKET:   "[",
	RBRACKET:   "]",
	AND:        "&&",
	OR:         "||",
	LPAREN:     "(",
	RPAREN:     ")",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	NOT_EQUALS: "!=",
	EQUALS:     "==",
	LESS:       "<",
	GREATER:    ">",
	LTE:        "<=",
	GTE:        ">=",
	INTEGER:    "integer",
	IDENT:      "identifier",
	EOF:        "EOF",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword returns true if the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= PROGRAM && k <= WRITE
}

// IsSymbol returns true if the kind is a punctuation or operator symbol.
func (k Kind) IsSymbol() bool {
	return k >= SEMICOLON && k <= GTE
}

// IsCompareOp returns true if the kind is one of the six relational
// operators allowed in a comparison condition.
func (k Kind) IsCompareOp() bool {
	switch k {
	case NOT_EQUALS, EQUALS, LESS, GREATER, LTE, GTE:
		return true
	}
	return false
}

// IsLiteral returns true if the kind is an integer or identifier lexeme.
func (k Kind) IsLiteral() bool {
	return k == INTEGER || k == IDENT
}

// Package parser provides a recursive descent parser for CORE programs.
package parser

import (
	"fmt"
	"strings"

	"github.com/kolkov/ucore/internal/token"
)

// UnexpectedTokenError reports a lookahead lexeme that matches none of
// the alternatives the current grammar production allows. Seq is the
// sequence number of the offending lexeme.
type UnexpectedTokenError struct {
	Seq  int
	Want []token.Kind
	Got  token.Kind
}

func (e *UnexpectedTokenError) Error() string {
	want := make([]string, len(e.Want))
	for i, k := range e.Want {
		want[i] = fmt.Sprintf("%q", k.String())
	}
	return fmt.Sprintf("expected %s, got %q (at lexeme #%d)",
		strings.Join(want, " or "), e.Got.String(), e.Seq)
}

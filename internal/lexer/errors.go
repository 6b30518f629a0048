package lexer

import "fmt"

// IllegalLexemeError reports that no registered rule matched at the
// current scan position. Seq is the number of lexemes successfully
// consumed before the failure; Rest is the offending remaining text.
type IllegalLexemeError struct {
	Seq  int
	Rest string
}

func (e *IllegalLexemeError) Error() string {
	return fmt.Sprintf("illegal lexeme after lexeme #%d: %q", e.Seq, e.Rest)
}

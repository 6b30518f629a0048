package lexer

import (
	"testing"

	"github.com/kolkov/ucore/internal/token"
)

// FuzzNext tests that the lexer handles arbitrary input without
// panicking: every scan either terminates at EOF, reports an illegal
// lexeme, or keeps producing valid lexeme kinds.
func FuzzNext(f *testing.F) {
	seeds := []string{
		// Valid programs
		"program int A; begin A = 1; end",
		"program int X, Y; begin read X; write Y; end",
		"program int A; begin if (A == 1) then A = 2; else A = 3; end; end",
		"program int X; begin while (X < 3) loop X = X + 1; end; end",
		"program int A, B, C; begin if [(A == B) || !(B < C)] then write A; end; end",

		// Fragments
		"AB12=3;",
		"X = 1 + 2 * 3 ;",
		"[ ( A == A ) && ( B != C ) ]",
		"<= >= == != < > = !",

		// Length-cap and illegal edges
		"12345678",
		"123456789",
		"ABCDEFGHI",
		"x",
		"?",
		"",
		"   \t\n  ",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		l := New(src)

		// Every match consumes at least one byte, so the scan is
		// bounded by the input length.
		maxLexemes := len(src) + 2
		for i := 0; i < maxLexemes; i++ {
			lx, err := l.Next()
			if err != nil {
				return // Illegal lexeme is a valid outcome
			}
			if lx.Kind == token.EOF {
				return
			}
			if lx.Kind == token.ILLEGAL || lx.Kind > token.EOF {
				t.Fatalf("invalid lexeme kind %d for %q", lx.Kind, lx.Text)
			}
			if lx.Text == "" {
				t.Fatalf("empty lexeme text for kind %v", lx.Kind)
			}
		}
		t.Fatalf("scan did not terminate within %d lexemes", maxLexemes)
	})
}

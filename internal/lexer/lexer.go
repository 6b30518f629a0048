// Package lexer provides CORE source code tokenization.
//
// The lexer is rule-table driven: an ordered list of pattern rules is
// tried at the current scan position and the first rule that matches a
// prefix of the remaining input wins. Rule order is therefore part of
// the language's disambiguation contract; reserved words are registered
// before the identifier rule, and two-character operators before the
// single-character symbols that are prefixes of them.
package lexer

import (
	"strings"

	"github.com/kolkov/ucore/internal/runtime"
	"github.com/kolkov/ucore/internal/token"
)

// maxLexemeLen caps the text length of integer and identifier lexemes.
const maxLexemeLen = 8

// Rule is one entry of the lexer's ordered rule table: a lexeme kind,
// a pattern matched only at the current scan position, and an optional
// maximum lexeme length (0 = unlimited).
type Rule struct {
	Kind    token.Kind
	Pattern *runtime.Regex
	MaxLen  int
}

// match attempts a zero-offset match of the rule against s.
// Matches longer than the rule's length cap do not count.
func (r *Rule) match(s string) (text string, ok bool) {
	text, ok = r.Pattern.MatchPrefix(s)
	if !ok || (r.MaxLen > 0 && len(text) > r.MaxLen) {
		return "", false
	}
	return text, true
}

// coreRules is the rule table for the CORE language, in registration
// order: reserved words, multi-character symbols, then the bare symbols
// that are prefixes of them, then integer and identifier literals.
var coreRules = []Rule{
	// Reserved words
	{Kind: token.PROGRAM, Pattern: runtime.MustCompile(`program`)},
	{Kind: token.BEGIN, Pattern: runtime.MustCompile(`begin`)},
	{Kind: token.END, Pattern: runtime.MustCompile(`end`)},
	{Kind: token.INT, Pattern: runtime.MustCompile(`int`)},
	{Kind: token.IF, Pattern: runtime.MustCompile(`if`)},
	{Kind: token.THEN, Pattern: runtime.MustCompile(`then`)},
	{Kind: token.ELSE, Pattern: runtime.MustCompile(`else`)},
	{Kind: token.WHILE, Pattern: runtime.MustCompile(`while`)},
	{Kind: token.LOOP, Pattern: runtime.MustCompile(`loop`)},
	{Kind: token.READ, Pattern: runtime.MustCompile(`read`)},
	{Kind: token.WRITE, Pattern: runtime.MustCompile(`write`)},

	// Symbols
	{Kind: token.SEMICOLON, Pattern: runtime.MustCompile(`;`)},
	{Kind: token.COMMA, Pattern: runtime.MustCompile(`,`)},
	{Kind: token.LBRACKET, Pattern: runtime.MustCompile(`\[`)},
	{Kind: token.RBRACKET, Pattern: runtime.MustCompile(`\]`)},
	{Kind: token.AND, Pattern: runtime.MustCompile(`&&`)},
	{Kind: token.OR, Pattern: runtime.MustCompile(`\|\|`)},
	{Kind: token.LPAREN, Pattern: runtime.MustCompile(`\(`)},
	{Kind: token.RPAREN, Pattern: runtime.MustCompile(`\)`)},
	{Kind: token.ADD, Pattern: runtime.MustCompile(`\+`)},
	{Kind: token.SUB, Pattern: runtime.MustCompile(`-`)},
	{Kind: token.MUL, Pattern: runtime.MustCompile(`\*`)},
	{Kind: token.NOT_EQUALS, Pattern: runtime.MustCompile(`!=`)},
	{Kind: token.EQUALS, Pattern: runtime.MustCompile(`==`)},
	{Kind: token.LTE, Pattern: runtime.MustCompile(`<=`)},
	{Kind: token.GTE, Pattern: runtime.MustCompile(`>=`)},

	// Single-character symbols that are prefixes of the above
	{Kind: token.ASSIGN, Pattern: runtime.MustCompile(`=`)},
	{Kind: token.NOT, Pattern: runtime.MustCompile(`!`)},
	{Kind: token.LESS, Pattern: runtime.MustCompile(`<`)},
	{Kind: token.GREATER, Pattern: runtime.MustCompile(`>`)},

	// Literals
	{Kind: token.INTEGER, Pattern: runtime.MustCompile(`[0-9]+`), MaxLen: maxLexemeLen},
	{Kind: token.IDENT, Pattern: runtime.MustCompile(`[A-Z][A-Z0-9]*`), MaxLen: maxLexemeLen},
}

// Lexeme is one classified unit of source text.
// Seq counts lexemes consumed since the start of the scan (1-based)
// and is used only for diagnostics.
type Lexeme struct {
	Kind token.Kind
	Text string
	Seq  int
}

// Lexer tokenizes CORE source code on demand.
// It exclusively owns the scan state for one program text.
type Lexer struct {
	rules []Rule
	rest  string // Unconsumed source text
	seq   int    // Lexemes consumed so far
}

// New creates a new Lexer for the given source code.
// Leading whitespace is discarded before the first match.
func New(src string) *Lexer {
	l := &Lexer{rules: coreRules, rest: src}
	l.skipWhitespace()
	return l
}

// Next consumes and returns the next lexeme.
// Once the buffer is exhausted it returns the EOF lexeme, repeatably.
// If no rule matches at the current position it returns an
// *IllegalLexemeError carrying the lexeme count so far and the
// offending remaining text.
func (l *Lexer) Next() (Lexeme, error) {
	if len(l.rest) == 0 {
		return Lexeme{Kind: token.EOF, Seq: l.seq + 1}, nil
	}
	for i := range l.rules {
		text, ok := l.rules[i].match(l.rest)
		if !ok {
			continue
		}
		l.rest = l.rest[len(text):]
		l.skipWhitespace()
		l.seq++
		return Lexeme{Kind: l.rules[i].Kind, Text: text, Seq: l.seq}, nil
	}
	return Lexeme{}, &IllegalLexemeError{Seq: l.seq, Rest: l.rest}
}

// Rest returns the unconsumed source text. Used by tests and the
// illegal-lexeme diagnostic.
func (l *Lexer) Rest() string {
	return l.rest
}

func (l *Lexer) skipWhitespace() {
	l.rest = strings.TrimLeft(l.rest, " \t\r\n\v\f")
}

// Tokenize scans the whole source and returns every lexeme up to and
// including the EOF sentinel. Diagnostic helper for the lexeme dump.
func Tokenize(src string) ([]Lexeme, error) {
	l := New(src)
	var lexemes []Lexeme
	for {
		lx, err := l.Next()
		if err != nil {
			return nil, err
		}
		lexemes = append(lexemes, lx)
		if lx.Kind == token.EOF {
			return lexemes, nil
		}
	}
}

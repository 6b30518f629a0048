// Package runtime provides execution support for CORE programs: the
// regex engine wrapper shared by the lexer and the evaluator, and the
// input-data stream consumed by read statements.
package runtime

import "github.com/coregx/coregex"

// Regex wraps coregex for CORE pattern matching.
// Compiled once and reused; safe for concurrent use.
type Regex struct {
	pattern string
	re      *coregex.Regexp
}

// Compile creates a new Regex from pattern.
// Leftmost-longest matching is enabled so repetition operators consume
// maximal runs (an integer lexeme takes the whole digit run).
func Compile(pattern string) (*Regex, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	re.Longest()
	return &Regex{pattern: pattern, re: re}, nil
}

// MustCompile creates a Regex, panicking on error.
// Intended for the fixed rule tables built at package init.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the original pattern string.
func (r *Regex) Pattern() string {
	return r.pattern
}

// MatchPrefix returns the text matched at the very start of s.
// A match anywhere past offset 0 does not count; ok is false then.
func (r *Regex) MatchPrefix(s string) (text string, ok bool) {
	loc := r.re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return s[:loc[1]], true
}

// FindStringIndex returns the start and end of the first match
// anywhere in s, or nil if there is none.
func (r *Regex) FindStringIndex(s string) []int {
	return r.re.FindStringIndex(s)
}

package ucore

import (
	"errors"
	"fmt"

	"github.com/kolkov/ucore/internal/interp"
	"github.com/kolkov/ucore/internal/lexer"
	"github.com/kolkov/ucore/internal/parser"
	"github.com/kolkov/ucore/internal/semantic"
)

// Sentinel errors identifying the kind of a ParseError or RuntimeError.
// Use errors.Is to discriminate without importing internal packages.
var (
	ErrIllegalLexeme        = errors.New("illegal lexeme")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
	ErrUndeclaredIdentifier = errors.New("undeclared identifier")
	ErrUninitializedRead    = errors.New("uninitialized read")
	ErrInsufficientInput    = errors.New("insufficient input data")
)

// ParseError represents a lexical, syntactic, or declaration error in
// CORE source code. Lexeme is the sequence number of the lexeme at
// which the failure was detected, or 0 when no position applies.
type ParseError struct {
	Lexeme  int    // 1-based lexeme sequence number, 0 if unknown
	Message string // Error description
	kind    error  // One of the sentinel errors, or nil
}

func (e *ParseError) Error() string {
	if e.Lexeme > 0 {
		return fmt.Sprintf("parse error at lexeme #%d: %s", e.Lexeme, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap returns the sentinel error identifying the failure kind.
func (e *ParseError) Unwrap() error {
	return e.kind
}

// RuntimeError represents an error during CORE execution.
type RuntimeError struct {
	Message string // Error description
	kind    error  // One of the sentinel errors, or nil
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Message)
}

// Unwrap returns the sentinel error identifying the failure kind.
func (e *RuntimeError) Unwrap() error {
	return e.kind
}

// wrapParseError converts an internal compile-phase error into the
// public ParseError, classifying it against the sentinel kinds.
func wrapParseError(err error) *ParseError {
	pe := &ParseError{Message: err.Error()}

	var illegalErr *lexer.IllegalLexemeError
	var tokenErr *parser.UnexpectedTokenError
	var dupErr *semantic.DuplicateDeclarationError
	var undeclErr *semantic.UndeclaredIdentifierError

	switch {
	case errors.As(err, &illegalErr):
		pe.kind = ErrIllegalLexeme
		pe.Lexeme = illegalErr.Seq
	case errors.As(err, &tokenErr):
		pe.kind = ErrUnexpectedToken
		pe.Lexeme = tokenErr.Seq
	case errors.As(err, &dupErr):
		pe.kind = ErrDuplicateDeclaration
	case errors.As(err, &undeclErr):
		pe.kind = ErrUndeclaredIdentifier
	}
	return pe
}

// wrapRuntimeError converts an internal execution error into the
// public RuntimeError.
func wrapRuntimeError(err error) *RuntimeError {
	re := &RuntimeError{Message: err.Error()}

	var uninitErr *semantic.UninitializedReadError
	var undeclErr *semantic.UndeclaredIdentifierError
	var inputErr *interp.InputError

	switch {
	case errors.As(err, &uninitErr):
		re.kind = ErrUninitializedRead
	case errors.As(err, &inputErr):
		re.kind = ErrInsufficientInput
	case errors.As(err, &undeclErr):
		re.kind = ErrUndeclaredIdentifier
	}
	return re
}

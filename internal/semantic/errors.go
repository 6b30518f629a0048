package semantic

import "fmt"

// DuplicateDeclarationError reports a second declaration of the same
// identifier anywhere in the declaration section.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("identifier already declared: %s", e.Name)
}

// UndeclaredIdentifierError reports a reference to an identifier that
// was never declared.
type UndeclaredIdentifierError struct {
	Name string
}

func (e *UndeclaredIdentifierError) Error() string {
	return fmt.Sprintf("undeclared identifier: %s", e.Name)
}

// UninitializedReadError reports a read of a declared identifier that
// was never assigned a value.
type UninitializedReadError struct {
	Name string
}

func (e *UninitializedReadError) Error() string {
	return fmt.Sprintf("read of uninitialized identifier: %s", e.Name)
}

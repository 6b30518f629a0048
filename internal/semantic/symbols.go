// Package semantic provides the CORE symbol table and the semantic
// error kinds raised around it.
//
// CORE has a single flat scope: every identifier is declared exactly
// once in the declaration section and keeps its entry for the whole
// run. An entry has three meaningful states: absent (never declared),
// present-uninitialized (declared, value null), present-initialized.
package semantic

import "github.com/kolkov/ucore/internal/types"

// SymbolTable maps identifier names to their current value.
// Shared by the parser (existence checks) and the evaluator
// (read/write of values). Single-threaded; no locking.
type SymbolTable struct {
	vars map[string]types.Value
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: make(map[string]types.Value)}
}

// Declare creates a present-uninitialized entry for name.
// Returns *DuplicateDeclarationError if name already has an entry.
func (st *SymbolTable) Declare(name string) error {
	if _, exists := st.vars[name]; exists {
		return &DuplicateDeclarationError{Name: name}
	}
	st.vars[name] = types.Null()
	return nil
}

// IsDeclared reports whether name has an entry. Pure existence check
// used by the parser to enforce declare-before-use.
func (st *SymbolTable) IsDeclared(name string) bool {
	_, ok := st.vars[name]
	return ok
}

// Read returns the current value of name.
// Returns *UninitializedReadError if the entry is present but was
// never assigned, and *UndeclaredIdentifierError if there is no entry
// at all (cannot happen after a successful parse; kept for internal
// consistency).
func (st *SymbolTable) Read(name string) (int64, error) {
	v, ok := st.vars[name]
	if !ok {
		return 0, &UndeclaredIdentifierError{Name: name}
	}
	if v.IsNull() {
		return 0, &UninitializedReadError{Name: name}
	}
	return v.Int(), nil
}

// Write sets name to value, overwriting any prior value.
// Writing creates the entry if it is missing, matching assignment
// semantics after a successful parse (the target is always declared).
func (st *SymbolTable) Write(name string, value int64) {
	st.vars[name] = types.Int(value)
}

// Clone returns a table with the same declared names, every entry
// reset to the uninitialized state. One parsed program can then run
// repeatedly, each run starting fresh.
func (st *SymbolTable) Clone() *SymbolTable {
	clone := NewSymbolTable()
	for name := range st.vars {
		clone.vars[name] = types.Null()
	}
	return clone
}

// Names returns the declared identifier names in no particular order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.vars))
	for name := range st.vars {
		names = append(names, name)
	}
	return names
}

// Len returns the number of declared identifiers.
func (st *SymbolTable) Len() int {
	return len(st.vars)
}

package semantic

import (
	"sort"

	"github.com/kolkov/ucore/internal/ast"
)

// Unused returns the names of identifiers that are declared but never
// referenced in the statement section, sorted alphabetically.
// Diagnostic only; an unused declaration is not an error.
func Unused(prog *ast.Program) []string {
	declared := make(map[string]bool)
	for _, d := range prog.Decls {
		for _, id := range d.Names {
			declared[id.Name] = true
		}
	}
	for _, s := range prog.Body {
		ast.Inspect(s, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok {
				delete(declared, id.Name)
			}
			return true
		})
	}
	unused := make([]string, 0, len(declared))
	for name := range declared {
		unused = append(unused, name)
	}
	sort.Strings(unused)
	return unused
}

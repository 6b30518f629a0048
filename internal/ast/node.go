// Package ast defines the abstract syntax tree for CORE programs.
//
// One node kind exists per grammar production. Each node exclusively
// owns its children (a tree, never shared, never cyclic) and carries
// only syntactic content: operator kind, literal value, identifier
// name. There is no evaluation state and no position tracking, so two
// structurally equal trees compare equal with reflect.DeepEqual.
//
// Node hierarchy:
//
//	Program
//	├── DeclSeq ([]*Declaration)
//	│   └── Declaration (IdentList)
//	└── StmtSeq ([]Stmt)
//	    ├── AssignStmt, ReadStmt, WriteStmt
//	    ├── IfStmt, LoopStmt - carry Cond + nested StmtSeq
//	    ├── Cond (interface): CompareCond, NotCond, AndOrCond
//	    └── Expr → Factor → Operand (interface): IntLit, Ident, GroupExpr
//
// The Expr and Factor chains are right-recursive on purpose: the tail
// of "a - b - c" is its own Expr, so evaluation groups as a - (b - c).
package ast

// Node is the interface implemented by all AST nodes.
type Node interface {
	node() // marker method to prevent external implementations
}

// Stmt is the interface for the five statement variants.
type Stmt interface {
	Node
	stmtNode()
}

// Operand is the interface for the three operand variants of the
// expression chain: integer literal, identifier, grouped expression.
type Operand interface {
	Node
	operandNode()
}

// Cond is the interface for the three condition variants.
type Cond interface {
	Node
	condNode()
}

// Program is the root node: the declaration section followed by the
// statement section.
type Program struct {
	Decls DeclSeq
	Body  StmtSeq
}

// DeclSeq is the declaration section, one entry per "int ...;" line.
type DeclSeq []*Declaration

// Declaration is a single "int id_list ;" production.
type Declaration struct {
	Names IdentList
}

// IdentList is a comma-separated identifier list, as used by
// declarations and by read/write statements.
type IdentList []*Ident

// StmtSeq is a non-empty statement sequence.
type StmtSeq []Stmt

// Ident is an identifier reference. It doubles as an Operand.
type Ident struct {
	Name string
}

func (*Program) node()     {}
func (*Declaration) node() {}
func (*Ident) node()       {}

func (*Ident) operandNode() {}

var _ Operand = (*Ident)(nil)

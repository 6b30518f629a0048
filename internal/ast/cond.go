package ast

import "github.com/kolkov/ucore/internal/token"

// CompareCond is the parenthesized comparison form:
//
//	"(" op comp_op op ")"
//
// Op is one of the six relational kinds (token.Kind.IsCompareOp).
type CompareCond struct {
	Left  Operand
	Op    token.Kind
	Right Operand
}

// NotCond negates a condition: "!" cond.
type NotCond struct {
	X Cond
}

// AndOrCond is the bracketed conjunction/disjunction form:
//
//	"[" cond ("&&"|"||") cond "]"
//
// Op is token.AND or token.OR. Evaluation short-circuits on Left.
type AndOrCond struct {
	Left  Cond
	Op    token.Kind
	Right Cond
}

func (*CompareCond) node() {}
func (*NotCond) node()     {}
func (*AndOrCond) node()   {}

func (*CompareCond) condNode() {}
func (*NotCond) condNode()     {}
func (*AndOrCond) condNode()   {}

var (
	_ Cond = (*CompareCond)(nil)
	_ Cond = (*NotCond)(nil)
	_ Cond = (*AndOrCond)(nil)
)

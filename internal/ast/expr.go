package ast

import "github.com/kolkov/ucore/internal/token"

// Expr is the top of the arithmetic chain:
//
//	expr ::= fac (("+"|"-") expr)?
//
// When Rest is nil the expression is just its factor and Op is
// token.ILLEGAL. Otherwise Op is token.ADD or token.SUB and the tail is
// itself an Expr, which keeps "+"/"-" right-associative.
type Expr struct {
	Fac  *Factor
	Op   token.Kind
	Rest *Expr
}

// Factor is the multiplication link of the chain:
//
//	fac ::= op ("*" fac)?
//
// Rest is nil when there is no "*" tail.
type Factor struct {
	Op   Operand
	Rest *Factor
}

// IntLit is an integer literal operand.
type IntLit struct {
	Value int64
}

// GroupExpr is a parenthesized expression operand: "(" expr ")".
type GroupExpr struct {
	X *Expr
}

func (*Expr) node()      {}
func (*Factor) node()    {}
func (*IntLit) node()    {}
func (*GroupExpr) node() {}

func (*IntLit) operandNode()    {}
func (*GroupExpr) operandNode() {}

var (
	_ Operand = (*IntLit)(nil)
	_ Operand = (*GroupExpr)(nil)
)

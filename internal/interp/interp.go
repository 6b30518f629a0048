// Package interp provides the tree-walking evaluator for CORE programs.
//
// Evaluation is a single pass over the completed AST with no
// compilation step. It mutates the symbol table, consumes the external
// input-data stream, and emits "name = value" lines for write
// statements. The first runtime error halts the whole run.
package interp

import (
	"fmt"
	"io"

	"github.com/kolkov/ucore/internal/ast"
	"github.com/kolkov/ucore/internal/runtime"
	"github.com/kolkov/ucore/internal/semantic"
	"github.com/kolkov/ucore/internal/token"
)

// Interp executes a parsed CORE program.
// The context is explicit: symbol table, input data, output writer.
// A non-terminating while loop runs forever; callers wanting a
// timeout must enforce it externally.
type Interp struct {
	syms *semantic.SymbolTable
	in   *runtime.InputData
	out  io.Writer
}

// New creates an evaluator over the given execution context.
func New(syms *semantic.SymbolTable, in *runtime.InputData, out io.Writer) *Interp {
	return &Interp{syms: syms, in: in, out: out}
}

// Run executes the program's statement section.
func (it *Interp) Run(prog *ast.Program) error {
	return it.execSeq(prog.Body)
}

func (it *Interp) execSeq(seq ast.StmtSeq) error {
	for _, s := range seq {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execStmt(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.AssignStmt:
		v, err := it.evalExpr(n.Value)
		if err != nil {
			return err
		}
		it.syms.Write(n.Target.Name, v)
		return nil

	case *ast.IfStmt:
		ok, err := it.evalCond(n.Cond)
		if err != nil {
			return err
		}
		if ok {
			return it.execSeq(n.Then)
		}
		if n.Else != nil {
			return it.execSeq(n.Else)
		}
		return nil

	case *ast.LoopStmt:
		for {
			ok, err := it.evalCond(n.Cond)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := it.execSeq(n.Body); err != nil {
				return err
			}
		}

	case *ast.ReadStmt:
		for _, id := range n.Targets {
			v, ok := it.in.ReadInt()
			if !ok {
				return &InputError{Name: id.Name}
			}
			it.syms.Write(id.Name, v)
		}
		return nil

	case *ast.WriteStmt:
		for _, id := range n.Sources {
			v, err := it.syms.Read(id.Name)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(it.out, "%s = %d\n", id.Name, v); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown statement node %T", s)
	}
}

// evalExpr evaluates the right-recursive "+"/"-" chain. The tail is
// evaluated as a whole before the operator applies, so 5 - 2 - 1 is
// 5 - (2 - 1) = 4.
func (it *Interp) evalExpr(e *ast.Expr) (int64, error) {
	v, err := it.evalFactor(e.Fac)
	if err != nil {
		return 0, err
	}
	if e.Rest == nil {
		return v, nil
	}
	rest, err := it.evalExpr(e.Rest)
	if err != nil {
		return 0, err
	}
	if e.Op == token.ADD {
		return v + rest, nil
	}
	return v - rest, nil
}

func (it *Interp) evalFactor(f *ast.Factor) (int64, error) {
	v, err := it.evalOperand(f.Op)
	if err != nil {
		return 0, err
	}
	if f.Rest == nil {
		return v, nil
	}
	rest, err := it.evalFactor(f.Rest)
	if err != nil {
		return 0, err
	}
	return v * rest, nil
}

func (it *Interp) evalOperand(op ast.Operand) (int64, error) {
	switch n := op.(type) {
	case *ast.IntLit:
		return n.Value, nil
	case *ast.Ident:
		return it.syms.Read(n.Name)
	case *ast.GroupExpr:
		return it.evalExpr(n.X)
	default:
		return 0, fmt.Errorf("unknown operand node %T", op)
	}
}

func (it *Interp) evalCond(c ast.Cond) (bool, error) {
	switch n := c.(type) {
	case *ast.CompareCond:
		left, err := it.evalOperand(n.Left)
		if err != nil {
			return false, err
		}
		right, err := it.evalOperand(n.Right)
		if err != nil {
			return false, err
		}
		switch n.Op {
		case token.EQUALS:
			return left == right, nil
		case token.NOT_EQUALS:
			return left != right, nil
		case token.LESS:
			return left < right, nil
		case token.GREATER:
			return left > right, nil
		case token.LTE:
			return left <= right, nil
		case token.GTE:
			return left >= right, nil
		default:
			return false, fmt.Errorf("unknown comparison operator %s", n.Op)
		}

	case *ast.NotCond:
		ok, err := it.evalCond(n.X)
		return !ok, err

	case *ast.AndOrCond:
		left, err := it.evalCond(n.Left)
		if err != nil {
			return false, err
		}
		// Short-circuit: the right side is not evaluated when the
		// left side already determines the result.
		if n.Op == token.AND {
			if !left {
				return false, nil
			}
		} else {
			if left {
				return true, nil
			}
		}
		return it.evalCond(n.Right)

	default:
		return false, fmt.Errorf("unknown condition node %T", c)
	}
}

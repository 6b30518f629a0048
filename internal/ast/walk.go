package ast

// Inspect traverses the tree rooted at node in depth-first order,
// calling f for every node. If f returns false the children of that
// node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
		for _, s := range n.Body {
			Inspect(s, f)
		}
	case *Declaration:
		for _, id := range n.Names {
			Inspect(id, f)
		}
	case *AssignStmt:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *IfStmt:
		Inspect(n.Cond, f)
		for _, s := range n.Then {
			Inspect(s, f)
		}
		for _, s := range n.Else {
			Inspect(s, f)
		}
	case *LoopStmt:
		Inspect(n.Cond, f)
		for _, s := range n.Body {
			Inspect(s, f)
		}
	case *ReadStmt:
		for _, id := range n.Targets {
			Inspect(id, f)
		}
	case *WriteStmt:
		for _, id := range n.Sources {
			Inspect(id, f)
		}
	case *Expr:
		Inspect(n.Fac, f)
		if n.Rest != nil {
			Inspect(n.Rest, f)
		}
	case *Factor:
		Inspect(n.Op, f)
		if n.Rest != nil {
			Inspect(n.Rest, f)
		}
	case *GroupExpr:
		Inspect(n.X, f)
	case *CompareCond:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *NotCond:
		Inspect(n.X, f)
	case *AndOrCond:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	}
}

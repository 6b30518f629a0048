package ast

// AssignStmt is "id = expr ;".
type AssignStmt struct {
	Target *Ident
	Value  *Expr
}

// IfStmt is "if cond then stmt_seq (else stmt_seq)? end ;".
// Else is nil when the else branch is absent.
type IfStmt struct {
	Cond Cond
	Then StmtSeq
	Else StmtSeq
}

// LoopStmt is "while cond loop stmt_seq end ;".
type LoopStmt struct {
	Cond Cond
	Body StmtSeq
}

// ReadStmt is "read id_list ;".
type ReadStmt struct {
	Targets IdentList
}

// WriteStmt is "write id_list ;".
type WriteStmt struct {
	Sources IdentList
}

func (*AssignStmt) node() {}
func (*IfStmt) node()     {}
func (*LoopStmt) node()   {}
func (*ReadStmt) node()   {}
func (*WriteStmt) node()  {}

func (*AssignStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}
func (*LoopStmt) stmtNode()   {}
func (*ReadStmt) stmtNode()   {}
func (*WriteStmt) stmtNode()  {}

var (
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*LoopStmt)(nil)
	_ Stmt = (*ReadStmt)(nil)
	_ Stmt = (*WriteStmt)(nil)
)

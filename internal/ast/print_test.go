package ast

import (
	"errors"
	"testing"

	"github.com/kolkov/ucore/internal/token"
)

// helpers for building trees by hand

func intLit(v int64) *Expr {
	return &Expr{Fac: &Factor{Op: &IntLit{Value: v}}}
}

func identExpr(name string) *Expr {
	return &Expr{Fac: &Factor{Op: &Ident{Name: name}}}
}

func samplePrintProgram() *Program {
	// program
	//     int A, B;
	// begin
	//     A = 1 + 2 * 3;
	//     if (A == 7) then ... else ... end;
	//     while (B < 5) loop ... end;
	//     read A, B;
	//     write A, B;
	// end
	return &Program{
		Decls: DeclSeq{
			{Names: IdentList{{Name: "A"}, {Name: "B"}}},
		},
		Body: StmtSeq{
			&AssignStmt{
				Target: &Ident{Name: "A"},
				Value: &Expr{
					Fac: &Factor{Op: &IntLit{Value: 1}},
					Op:  token.ADD,
					Rest: &Expr{
						Fac: &Factor{
							Op:   &IntLit{Value: 2},
							Rest: &Factor{Op: &IntLit{Value: 3}},
						},
					},
				},
			},
			&IfStmt{
				Cond: &CompareCond{Left: &Ident{Name: "A"}, Op: token.EQUALS, Right: &IntLit{Value: 7}},
				Then: StmtSeq{&AssignStmt{Target: &Ident{Name: "B"}, Value: intLit(1)}},
				Else: StmtSeq{&AssignStmt{Target: &Ident{Name: "B"}, Value: intLit(2)}},
			},
			&LoopStmt{
				Cond: &CompareCond{Left: &Ident{Name: "B"}, Op: token.LESS, Right: &IntLit{Value: 5}},
				Body: StmtSeq{
					&AssignStmt{
						Target: &Ident{Name: "B"},
						Value: &Expr{
							Fac:  &Factor{Op: &Ident{Name: "B"}},
							Op:   token.ADD,
							Rest: intLit(1),
						},
					},
				},
			},
			&ReadStmt{Targets: IdentList{{Name: "A"}, {Name: "B"}}},
			&WriteStmt{Sources: IdentList{{Name: "A"}, {Name: "B"}}},
		},
	}
}

func TestSprintCanonicalForm(t *testing.T) {
	want := `program
    int A, B;
begin
    A = 1 + 2 * 3;
    if (A == 7) then
        B = 1;
    else
        B = 2;
    end;
    while (B < 5) loop
        B = B + 1;
    end;
    read A, B;
    write A, B;
end
`
	got := Sprint(samplePrintProgram())
	if got != want {
		t.Errorf("canonical form mismatch:\n--- want\n%s--- got\n%s", want, got)
	}
}

func TestSprintConditionForms(t *testing.T) {
	tests := []struct {
		name string
		cond Cond
		want string
	}{
		{
			"comparison",
			&CompareCond{Left: &Ident{Name: "A"}, Op: token.NOT_EQUALS, Right: &IntLit{Value: 0}},
			"(A != 0)",
		},
		{
			"negation",
			&NotCond{X: &CompareCond{Left: &Ident{Name: "A"}, Op: token.LTE, Right: &Ident{Name: "B"}}},
			"!(A <= B)",
		},
		{
			"and",
			&AndOrCond{
				Left:  &CompareCond{Left: &Ident{Name: "A"}, Op: token.EQUALS, Right: &Ident{Name: "A"}},
				Op:    token.AND,
				Right: &CompareCond{Left: &Ident{Name: "B"}, Op: token.GTE, Right: &IntLit{Value: 1}},
			},
			"[(A == A) && (B >= 1)]",
		},
		{
			"or with nested not",
			&AndOrCond{
				Left:  &NotCond{X: &CompareCond{Left: &Ident{Name: "A"}, Op: token.GREATER, Right: &IntLit{Value: 2}}},
				Op:    token.OR,
				Right: &CompareCond{Left: &Ident{Name: "B"}, Op: token.LESS, Right: &IntLit{Value: 3}},
			},
			"[!(A > 2) || (B < 3)]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := &Program{
				Decls: DeclSeq{{Names: IdentList{{Name: "A"}, {Name: "B"}}}},
				Body: StmtSeq{
					&IfStmt{Cond: tt.cond, Then: StmtSeq{
						&WriteStmt{Sources: IdentList{{Name: "A"}}},
					}},
				},
			}
			want := "program\n    int A, B;\nbegin\n    if " + tt.want +
				" then\n        write A;\n    end;\nend\n"
			if got := Sprint(prog); got != want {
				t.Errorf("mismatch:\n--- want\n%s--- got\n%s", want, got)
			}
		})
	}
}

func TestSprintGroupedOperand(t *testing.T) {
	// A = (1 + 2) * 3;
	prog := &Program{
		Decls: DeclSeq{{Names: IdentList{{Name: "A"}}}},
		Body: StmtSeq{
			&AssignStmt{
				Target: &Ident{Name: "A"},
				Value: &Expr{
					Fac: &Factor{
						Op: &GroupExpr{X: &Expr{
							Fac:  &Factor{Op: &IntLit{Value: 1}},
							Op:   token.ADD,
							Rest: intLit(2),
						}},
						Rest: &Factor{Op: &IntLit{Value: 3}},
					},
				},
			},
		},
	}
	want := "program\n    int A;\nbegin\n    A = (1 + 2) * 3;\nend\n"
	if got := Sprint(prog); got != want {
		t.Errorf("mismatch:\n--- want\n%s--- got\n%s", want, got)
	}
}

// errWriter fails after n writes.
type errWriter struct {
	n int
}

var errWrite = errors.New("write failed")

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestPrintStickyWriterError(t *testing.T) {
	err := Fprint(&errWriter{n: 1}, samplePrintProgram())
	if !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	prog := samplePrintProgram()

	var idents, intLits int
	Inspect(prog, func(n Node) bool {
		switch n.(type) {
		case *Ident:
			idents++
		case *IntLit:
			intLits++
		}
		return true
	})

	// 2 declared + 1 assign target + comparison ident + if-branch
	// targets + loop pieces + read/write lists
	if idents != 13 {
		t.Errorf("expected 13 identifier nodes, got %d", idents)
	}
	if intLits != 8 {
		t.Errorf("expected 8 integer literals, got %d", intLits)
	}
}

func TestInspectPrune(t *testing.T) {
	prog := samplePrintProgram()
	var stmts int
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(Stmt); ok {
			stmts++
			return false // do not descend into statements
		}
		return true
	})
	if stmts != 5 {
		t.Errorf("expected 5 top-level statements, got %d", stmts)
	}
}

package parser_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kolkov/ucore/internal/ast"
	"github.com/kolkov/ucore/internal/parser"
	"github.com/kolkov/ucore/internal/semantic"
	"github.com/kolkov/ucore/internal/token"
)

func mustParse(t *testing.T, src string) (*ast.Program, *semantic.SymbolTable) {
	t.Helper()
	prog, syms, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return prog, syms
}

func TestParseMinimalProgram(t *testing.T) {
	prog, syms := mustParse(t, "program int A; begin A = 1; end")

	if len(prog.Decls) != 1 || len(prog.Decls[0].Names) != 1 {
		t.Fatalf("unexpected declarations: %+v", prog.Decls)
	}
	if prog.Decls[0].Names[0].Name != "A" {
		t.Errorf("expected declaration of A, got %s", prog.Decls[0].Names[0].Name)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	assign, ok := prog.Body[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected AssignStmt, got %T", prog.Body[0])
	}
	if assign.Target.Name != "A" {
		t.Errorf("expected target A, got %s", assign.Target.Name)
	}
	if !syms.IsDeclared("A") {
		t.Error("A should be declared in the symbol table")
	}
	if _, err := syms.Read("A"); err == nil {
		t.Error("parsing must not initialize declared identifiers")
	}
}

func TestParseStatementDispatch(t *testing.T) {
	src := `program int A, B;
	begin
		A = 1;
		if (A == 1) then B = 2; end;
		while (A < 3) loop A = A + 1; end;
		read A, B;
		write A, B;
	end`
	prog, _ := mustParse(t, src)

	wantTypes := []string{"*ast.AssignStmt", "*ast.IfStmt", "*ast.LoopStmt", "*ast.ReadStmt", "*ast.WriteStmt"}
	if len(prog.Body) != len(wantTypes) {
		t.Fatalf("expected %d statements, got %d", len(wantTypes), len(prog.Body))
	}
	for i, want := range wantTypes {
		if got := reflect.TypeOf(prog.Body[i]).String(); got != want {
			t.Errorf("stmt[%d]: expected %s, got %s", i, want, got)
		}
	}
}

func TestParseIfElse(t *testing.T) {
	prog, _ := mustParse(t,
		"program int A; begin if (A == 1) then A = 2; else A = 3; end; end")
	ifStmt := prog.Body[0].(*ast.IfStmt)
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("unexpected branches: then=%d else=%d", len(ifStmt.Then), len(ifStmt.Else))
	}

	prog, _ = mustParse(t,
		"program int A; begin if (A == 1) then A = 2; end; end")
	ifStmt = prog.Body[0].(*ast.IfStmt)
	if ifStmt.Else != nil {
		t.Error("expected nil else branch")
	}
}

// TestParseRightRecursion verifies the shape of "1 - 2 - 3": the tail
// "2 - 3" must hang off the first expression as a whole, not the other
// way around.
func TestParseRightRecursion(t *testing.T) {
	prog, _ := mustParse(t, "program int A; begin A = 1 - 2 - 3; end")
	e := prog.Body[0].(*ast.AssignStmt).Value

	if e.Op != token.SUB || e.Rest == nil {
		t.Fatalf("expected top-level subtraction with a tail, got %+v", e)
	}
	if lit := e.Fac.Op.(*ast.IntLit); lit.Value != 1 {
		t.Errorf("expected head 1, got %d", lit.Value)
	}
	tail := e.Rest
	if tail.Op != token.SUB || tail.Rest == nil {
		t.Fatalf("expected nested subtraction in the tail, got %+v", tail)
	}
	if lit := tail.Fac.Op.(*ast.IntLit); lit.Value != 2 {
		t.Errorf("expected tail head 2, got %d", lit.Value)
	}
	if lit := tail.Rest.Fac.Op.(*ast.IntLit); lit.Value != 3 {
		t.Errorf("expected tail tail 3, got %d", lit.Value)
	}
}

func TestParseFactorChain(t *testing.T) {
	prog, _ := mustParse(t, "program int A; begin A = 2 * 3 * 4; end")
	f := prog.Body[0].(*ast.AssignStmt).Value.Fac
	if f.Rest == nil || f.Rest.Rest == nil {
		t.Fatal("expected a three-link factor chain")
	}
	vals := []int64{
		f.Op.(*ast.IntLit).Value,
		f.Rest.Op.(*ast.IntLit).Value,
		f.Rest.Rest.Op.(*ast.IntLit).Value,
	}
	if vals[0] != 2 || vals[1] != 3 || vals[2] != 4 {
		t.Errorf("expected [2 3 4], got %v", vals)
	}
}

func TestParseConditionForms(t *testing.T) {
	tests := []struct {
		name string
		cond string
		typ  string
	}{
		{"comparison", "(A == 1)", "*ast.CompareCond"},
		{"negation", "!(A == 1)", "*ast.NotCond"},
		{"double negation", "!!(A == 1)", "*ast.NotCond"},
		{"and", "[(A == 1) && (A == 2)]", "*ast.AndOrCond"},
		{"or", "[(A == 1) || (A == 2)]", "*ast.AndOrCond"},
		{"nested", "[!(A < 1) && [(A == 1) || (A > 2)]]", "*ast.AndOrCond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, _ := mustParse(t,
				"program int A; begin if "+tt.cond+" then A = 1; end; end")
			cond := prog.Body[0].(*ast.IfStmt).Cond
			if got := reflect.TypeOf(cond).String(); got != tt.typ {
				t.Errorf("expected %s, got %s", tt.typ, got)
			}
		})
	}
}

func TestParseCompareOps(t *testing.T) {
	ops := []token.Kind{
		token.NOT_EQUALS, token.EQUALS, token.LESS,
		token.GREATER, token.LTE, token.GTE,
	}
	for _, op := range ops {
		t.Run(op.String(), func(t *testing.T) {
			prog, _ := mustParse(t,
				"program int A; begin if (A "+op.String()+" 1) then A = 1; end; end")
			cmp := prog.Body[0].(*ast.IfStmt).Cond.(*ast.CompareCond)
			if cmp.Op != op {
				t.Errorf("expected %v, got %v", op, cmp.Op)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any // pointer to the expected error type
	}{
		{
			"missing program keyword",
			"int A; begin A = 1; end",
			&parser.UnexpectedTokenError{},
		},
		{
			"missing semicolon",
			"program int A; begin A = 1 end",
			&parser.UnexpectedTokenError{},
		},
		{
			"missing then",
			"program int A; begin if (A == 1) A = 2; end; end",
			&parser.UnexpectedTokenError{},
		},
		{
			"assignment to keyword",
			"program int A; begin if = 1; end",
			&parser.UnexpectedTokenError{},
		},
		{
			"duplicate declaration same list",
			"program int A, A; begin A = 1; end",
			&semantic.DuplicateDeclarationError{},
		},
		{
			"duplicate declaration across lists",
			"program int A; int A; begin A = 1; end",
			&semantic.DuplicateDeclarationError{},
		},
		{
			"undeclared in assignment",
			"program int A; begin B = 1; end",
			&semantic.UndeclaredIdentifierError{},
		},
		{
			"undeclared in expression",
			"program int A; begin A = B; end",
			&semantic.UndeclaredIdentifierError{},
		},
		{
			"undeclared in write",
			"program int A; begin write B; end",
			&semantic.UndeclaredIdentifierError{},
		},
		{
			"undeclared in condition",
			"program int A; begin if (B == 1) then A = 1; end; end",
			&semantic.UndeclaredIdentifierError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parser.Parse(tt.src)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			target := reflect.New(reflect.TypeOf(tt.want)).Interface()
			if !errors.As(err, target) {
				t.Errorf("expected %T, got %T (%v)", tt.want, err, err)
			}
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	_, _, err := parser.Parse("program int A; begin A = 1 end")
	var tokErr *parser.UnexpectedTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("expected UnexpectedTokenError, got %v", err)
	}
	if tokErr.Got != token.END {
		t.Errorf("expected got=END, got %v", tokErr.Got)
	}
	if len(tokErr.Want) != 1 || tokErr.Want[0] != token.SEMICOLON {
		t.Errorf("expected want=[;], got %v", tokErr.Want)
	}
	if tokErr.Seq == 0 {
		t.Error("expected a lexeme sequence number")
	}
}

// Trailing text after the closing end is never examined, even if it
// would be illegal input.
func TestParseIgnoresTrailingText(t *testing.T) {
	if _, _, err := parser.Parse("program int A; begin A = 1; end ???"); err != nil {
		t.Errorf("trailing text should not be lexed, got %v", err)
	}
}

func TestParseExprFragment(t *testing.T) {
	syms := semantic.NewSymbolTable()
	if err := syms.Declare("A"); err != nil {
		t.Fatal(err)
	}

	e, err := parser.ParseExpr("A + 2", syms)
	if err != nil {
		t.Fatal(err)
	}
	if e.Op != token.ADD {
		t.Errorf("expected +, got %v", e.Op)
	}

	if _, err := parser.ParseExpr("B + 2", syms); err == nil {
		t.Error("expected undeclared identifier error")
	}
	if _, err := parser.ParseExpr("A +", syms); err == nil {
		t.Error("expected unexpected token error")
	}
}

func TestParseCondFragment(t *testing.T) {
	syms := semantic.NewSymbolTable()
	if err := syms.Declare("A"); err != nil {
		t.Fatal(err)
	}

	c, err := parser.ParseCond("[(A == 1) && !(A < 0)]", syms)
	if err != nil {
		t.Fatal(err)
	}
	andOr, ok := c.(*ast.AndOrCond)
	if !ok {
		t.Fatalf("expected AndOrCond, got %T", c)
	}
	if andOr.Op != token.AND {
		t.Errorf("expected &&, got %v", andOr.Op)
	}
}

// TestPrintReparse verifies print/reparse idempotence: the canonical
// rendering of any parsed program parses back to a structurally equal
// tree.
func TestPrintReparse(t *testing.T) {
	sources := []string{
		"program int A; begin A = 1; end",
		"program int A, B; begin A = 1 + 2 * 3; B = A; write A, B; end",
		"program int X; begin read X; write X; end",
		"program int X; begin X = 0; while (X < 3) loop X = X + 1; end; write X; end",
		"program int A; begin if (A == 1) then A = 2; else A = 3; end; end",
		"program int A, B; begin if [!(A < 1) || (B >= 2)] then A = (1 + 2) * 3; end; end",
		"program int A; int B; begin if (A == 1) then if (B == 2) then A = B; end; end; end",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			prog, _ := mustParse(t, src)
			printed := ast.Sprint(prog)
			reparsed, _, err := parser.Parse(printed)
			if err != nil {
				t.Fatalf("reparse failed: %v\nprinted:\n%s", err, printed)
			}
			if !reflect.DeepEqual(prog, reparsed) {
				t.Errorf("reparsed tree differs\nprinted:\n%s", printed)
			}
		})
	}
}

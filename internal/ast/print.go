package ast

import (
	"fmt"
	"io"
	"strings"
)

// singleIndent is the indentation unit for nested blocks.
const singleIndent = "    "

// Printer regenerates canonical CORE source text from an AST.
// Reserved words are lowercase, one statement per line, nested blocks
// indented by one unit per level. Printing a well-formed tree cannot
// fail; the only error path is the underlying writer.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the canonical rendering of the program to the writer.
func (p *Printer) Print(prog *Program) error {
	p.printf("program\n")
	p.indent++
	for _, d := range prog.Decls {
		p.printDecl(d)
	}
	p.indent--
	p.printf("begin\n")
	p.indent++
	p.printSeq(prog.Body)
	p.indent--
	p.printf("end\n")
	return p.err
}

// Fprint writes the canonical rendering of prog to w.
func Fprint(w io.Writer, prog *Program) error {
	return NewPrinter(w).Print(prog)
}

// Sprint returns the canonical rendering of prog as a string.
func Sprint(prog *Program) string {
	var sb strings.Builder
	NewPrinter(&sb).Print(prog) //nolint:errcheck // strings.Builder cannot fail
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, singleIndent)
	}
}

func (p *Printer) printDecl(d *Declaration) {
	p.writeIndent()
	p.printf("int ")
	p.printIdentList(d.Names)
	p.printf(";\n")
}

func (p *Printer) printIdentList(list IdentList) {
	for i, id := range list {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s", id.Name)
	}
}

func (p *Printer) printSeq(seq StmtSeq) {
	for _, s := range seq {
		p.printStmt(s)
	}
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case *AssignStmt:
		p.writeIndent()
		p.printf("%s = ", n.Target.Name)
		p.printExpr(n.Value)
		p.printf(";\n")

	case *IfStmt:
		p.writeIndent()
		p.printf("if ")
		p.printCond(n.Cond)
		p.printf(" then\n")
		p.indent++
		p.printSeq(n.Then)
		p.indent--
		if n.Else != nil {
			p.writeIndent()
			p.printf("else\n")
			p.indent++
			p.printSeq(n.Else)
			p.indent--
		}
		p.writeIndent()
		p.printf("end;\n")

	case *LoopStmt:
		p.writeIndent()
		p.printf("while ")
		p.printCond(n.Cond)
		p.printf(" loop\n")
		p.indent++
		p.printSeq(n.Body)
		p.indent--
		p.writeIndent()
		p.printf("end;\n")

	case *ReadStmt:
		p.writeIndent()
		p.printf("read ")
		p.printIdentList(n.Targets)
		p.printf(";\n")

	case *WriteStmt:
		p.writeIndent()
		p.printf("write ")
		p.printIdentList(n.Sources)
		p.printf(";\n")
	}
}

func (p *Printer) printExpr(e *Expr) {
	p.printFactor(e.Fac)
	if e.Rest != nil {
		p.printf(" %s ", e.Op)
		p.printExpr(e.Rest)
	}
}

func (p *Printer) printFactor(f *Factor) {
	p.printOperand(f.Op)
	if f.Rest != nil {
		p.printf(" * ")
		p.printFactor(f.Rest)
	}
}

func (p *Printer) printOperand(op Operand) {
	switch n := op.(type) {
	case *IntLit:
		p.printf("%d", n.Value)
	case *Ident:
		p.printf("%s", n.Name)
	case *GroupExpr:
		p.printf("(")
		p.printExpr(n.X)
		p.printf(")")
	}
}

func (p *Printer) printCond(c Cond) {
	switch n := c.(type) {
	case *CompareCond:
		p.printf("(")
		p.printOperand(n.Left)
		p.printf(" %s ", n.Op)
		p.printOperand(n.Right)
		p.printf(")")
	case *NotCond:
		p.printf("!")
		p.printCond(n.X)
	case *AndOrCond:
		p.printf("[")
		p.printCond(n.Left)
		p.printf(" %s ", n.Op)
		p.printCond(n.Right)
		p.printf("]")
	}
}

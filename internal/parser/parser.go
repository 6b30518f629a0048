package parser

import (
	"strconv"

	"github.com/kolkov/ucore/internal/ast"
	"github.com/kolkov/ucore/internal/lexer"
	"github.com/kolkov/ucore/internal/semantic"
	"github.com/kolkov/ucore/internal/token"
)

// stmtStart is the lookahead set that begins a statement.
var stmtStart = []token.Kind{token.IDENT, token.IF, token.WHILE, token.READ, token.WRITE}

// Parser is a recursive descent parser for CORE programs.
//
// Each parse method consumes exactly the lexemes its production covers
// and leaves the stream positioned at the first lexeme past the
// production. Errors are explicit return values, first-error-wins; no
// resynchronization is attempted.
type Parser struct {
	lex  *lexer.Lexer
	tok  lexer.Lexeme
	syms *semantic.SymbolTable

	// inDecls is true while parsing the declaration section, where
	// identifiers are being declared rather than referenced.
	inDecls bool
}

// Parse parses a CORE program from source code.
// Returns the AST and the symbol table populated with the declared
// identifiers (all uninitialized). Any lexical or syntactic failure
// aborts immediately with the underlying error.
func Parse(src string) (*ast.Program, *semantic.SymbolTable, error) {
	p := &Parser{
		lex:  lexer.New(src),
		syms: semantic.NewSymbolTable(),
	}
	if err := p.next(); err != nil {
		return nil, nil, err
	}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, nil, err
	}
	return prog, p.syms, nil
}

// ParseExpr parses a single expression against the given symbol table.
// A nil table means no identifiers are declared. Useful for testing
// individual grammar-rule builders without a whole program.
func ParseExpr(src string, syms *semantic.SymbolTable) (*ast.Expr, error) {
	p, err := newFragmentParser(src, syms)
	if err != nil {
		return nil, err
	}
	return p.parseExpr()
}

// ParseCond parses a single condition against the given symbol table.
func ParseCond(src string, syms *semantic.SymbolTable) (ast.Cond, error) {
	p, err := newFragmentParser(src, syms)
	if err != nil {
		return nil, err
	}
	return p.parseCond()
}

func newFragmentParser(src string, syms *semantic.SymbolTable) (*Parser, error) {
	if syms == nil {
		syms = semantic.NewSymbolTable()
	}
	p := &Parser{lex: lexer.New(src), syms: syms}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

// next advances to the next lexeme, surfacing lexer errors.
func (p *Parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// at reports whether the current lexeme is one of the given kinds.
func (p *Parser) at(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// expect fails with *UnexpectedTokenError unless the current lexeme is
// one of the given kinds.
func (p *Parser) expect(kinds ...token.Kind) error {
	if p.at(kinds...) {
		return nil
	}
	return &UnexpectedTokenError{Seq: p.tok.Seq, Want: kinds, Got: p.tok.Kind}
}

// eat expects one of the given kinds and consumes it.
func (p *Parser) eat(kinds ...token.Kind) error {
	if err := p.expect(kinds...); err != nil {
		return err
	}
	return p.next()
}

// program ::= "program" decl_seq "begin" stmt_seq "end"
//
// The closing "end" is verified but not consumed, so trailing text
// after it is never examined.
func (p *Parser) parseProgram() (*ast.Program, error) {
	if err := p.eat(token.PROGRAM); err != nil {
		return nil, err
	}
	p.inDecls = true
	decls, err := p.parseDeclSeq()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.BEGIN); err != nil {
		return nil, err
	}
	p.inDecls = false
	body, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	return &ast.Program{Decls: decls, Body: body}, nil
}

// decl_seq ::= decl+  (repeated while lookahead is "int")
func (p *Parser) parseDeclSeq() (ast.DeclSeq, error) {
	var decls ast.DeclSeq
	for {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		if !p.at(token.INT) {
			return decls, nil
		}
	}
}

// decl ::= "int" id_list ";"
func (p *Parser) parseDecl() (*ast.Declaration, error) {
	if err := p.eat(token.INT); err != nil {
		return nil, err
	}
	names, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	for _, id := range names {
		if err := p.syms.Declare(id.Name); err != nil {
			return nil, err
		}
	}
	if err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Declaration{Names: names}, nil
}

// id_list ::= id ("," id)*
func (p *Parser) parseIdentList() (ast.IdentList, error) {
	var list ast.IdentList
	for {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		list = append(list, id)
		if !p.at(token.COMMA) {
			return list, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
}

// parseIdent consumes one identifier lexeme. Outside the declaration
// section every identifier reference must already be declared.
func (p *Parser) parseIdent() (*ast.Ident, error) {
	if err := p.expect(token.IDENT); err != nil {
		return nil, err
	}
	name := p.tok.Text
	if !p.inDecls && !p.syms.IsDeclared(name) {
		return nil, &semantic.UndeclaredIdentifierError{Name: name}
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return &ast.Ident{Name: name}, nil
}

// stmt_seq ::= stmt+  (repeated while lookahead starts a statement)
func (p *Parser) parseStmtSeq() (ast.StmtSeq, error) {
	var seq ast.StmtSeq
	for {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		seq = append(seq, s)
		if !p.at(stmtStart...) {
			return seq, nil
		}
	}
}

// stmt ::= assign | if | loop | in | out
// Dispatch is by lookahead on the current lexeme kind.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Kind {
	case token.IDENT:
		return p.parseAssign()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseLoop()
	case token.READ:
		return p.parseRead()
	case token.WRITE:
		return p.parseWrite()
	default:
		return nil, &UnexpectedTokenError{Seq: p.tok.Seq, Want: stmtStart, Got: p.tok.Kind}
	}
}

// assign ::= id "=" expr ";"
func (p *Parser) parseAssign() (*ast.AssignStmt, error) {
	target, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Target: target, Value: value}, nil
}

// if ::= "if" cond "then" stmt_seq ("else" stmt_seq)? "end" ";"
func (p *Parser) parseIf() (*ast.IfStmt, error) {
	if err := p.eat(token.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.THEN); err != nil {
		return nil, err
	}
	then, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}
	var elseSeq ast.StmtSeq
	if p.at(token.ELSE) {
		if err := p.next(); err != nil {
			return nil, err
		}
		elseSeq, err = p.parseStmtSeq()
		if err != nil {
			return nil, err
		}
	}
	if err := p.eat(token.END); err != nil {
		return nil, err
	}
	if err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseSeq}, nil
}

// loop ::= "while" cond "loop" stmt_seq "end" ";"
func (p *Parser) parseLoop() (*ast.LoopStmt, error) {
	if err := p.eat(token.WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.LOOP); err != nil {
		return nil, err
	}
	body, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.END); err != nil {
		return nil, err
	}
	if err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.LoopStmt{Cond: cond, Body: body}, nil
}

// in ::= "read" id_list ";"
func (p *Parser) parseRead() (*ast.ReadStmt, error) {
	if err := p.eat(token.READ); err != nil {
		return nil, err
	}
	targets, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ReadStmt{Targets: targets}, nil
}

// out ::= "write" id_list ";"
func (p *Parser) parseWrite() (*ast.WriteStmt, error) {
	if err := p.eat(token.WRITE); err != nil {
		return nil, err
	}
	sources, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.WriteStmt{Sources: sources}, nil
}

// expr ::= fac (("+"|"-") expr)?
//
// Right-recursive by language definition: the tail binds tighter, so
// a - b - c parses (and evaluates) as a - (b - c).
func (p *Parser) parseExpr() (*ast.Expr, error) {
	fac, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	e := &ast.Expr{Fac: fac}
	if p.at(token.ADD, token.SUB) {
		e.Op = p.tok.Kind
		if err := p.next(); err != nil {
			return nil, err
		}
		e.Rest, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// fac ::= op ("*" fac)?
func (p *Parser) parseFactor() (*ast.Factor, error) {
	op, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	f := &ast.Factor{Op: op}
	if p.at(token.MUL) {
		if err := p.next(); err != nil {
			return nil, err
		}
		f.Rest, err = p.parseFactor()
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

// op ::= integer | id | "(" expr ")"
func (p *Parser) parseOperand() (ast.Operand, error) {
	switch p.tok.Kind {
	case token.INTEGER:
		// Length-capped at 8 digits by the lexer, so this cannot
		// overflow or fail.
		value, err := strconv.ParseInt(p.tok.Text, 10, 64)
		if err != nil {
			return nil, err
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.IntLit{Value: value}, nil

	case token.IDENT:
		return p.parseIdent()

	case token.LPAREN:
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupExpr{X: x}, nil

	default:
		return nil, &UnexpectedTokenError{
			Seq:  p.tok.Seq,
			Want: []token.Kind{token.INTEGER, token.IDENT, token.LPAREN},
			Got:  p.tok.Kind,
		}
	}
}

// cond ::= "(" op comp_op op ")" | "!" cond | "[" cond ("&&"|"||") cond "]"
func (p *Parser) parseCond() (ast.Cond, error) {
	switch p.tok.Kind {
	case token.LPAREN:
		return p.parseComparison()

	case token.NOT:
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		return &ast.NotCond{X: x}, nil

	case token.LBRACKET:
		if err := p.next(); err != nil {
			return nil, err
		}
		left, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.AND, token.OR); err != nil {
			return nil, err
		}
		op := p.tok.Kind
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.AndOrCond{Left: left, Op: op, Right: right}, nil

	default:
		return nil, &UnexpectedTokenError{
			Seq:  p.tok.Seq,
			Want: []token.Kind{token.LPAREN, token.NOT, token.LBRACKET},
			Got:  p.tok.Kind,
		}
	}
}

// "(" op comp_op op ")" with comp_op one of != == < > <= >=
func (p *Parser) parseComparison() (*ast.CompareCond, error) {
	if err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.NOT_EQUALS, token.EQUALS, token.LESS,
		token.GREATER, token.LTE, token.GTE); err != nil {
		return nil, err
	}
	op := p.tok.Kind
	if err := p.next(); err != nil {
		return nil, err
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CompareCond{Left: left, Op: op, Right: right}, nil
}

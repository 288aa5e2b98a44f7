package main

import "fmt"

// Expr is a node of a parsed script expression. Trees are immutable after
// parsing so a cached script can be re-evaluated every frame without
// re-lexing.
type Expr interface {
	exprNode()
}

type Literal struct {
	Value float64
}

type VariableRef struct {
	Name string
}

type BinaryOp struct {
	Op          string
	Left, Right Expr
}

type UnaryOp struct {
	Op      string
	Operand Expr
}

type FunctionCall struct {
	Name string
	Args []Expr
}

type Assignment struct {
	Target string
	Value  Expr
}

func (*Literal) exprNode()      {}
func (*VariableRef) exprNode()  {}
func (*BinaryOp) exprNode()     {}
func (*UnaryOp) exprNode()      {}
func (*FunctionCall) exprNode() {}
func (*Assignment) exprNode()   {}

type ParseError struct {
	Pos      int
	Expected string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: expected %s", e.Pos, e.Expected)
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, ParseError{Pos: tok.Pos, Expected: kind.String()}
	}
	return p.next(), nil
}

// Parse turns a script into an ordered statement list. Statements are
// separated by ';'; empty statements and a trailing separator are allowed.
func Parse(src string) ([]Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	var stmts []Expr
	for p.peek().Kind != TokEOF {
		if p.peek().Kind == TokSemicolon {
			p.next()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		switch p.peek().Kind {
		case TokSemicolon:
			p.next()
		case TokEOF:
		default:
			return nil, ParseError{Pos: p.peek().Pos, Expected: "';' or end of script"}
		}
	}
	return stmts, nil
}

// statement = IDENT '=' statement | or-expr
// Assignment is right-associative and only valid with a bare identifier on
// the left; '$' constants are read-only.
func (p *parser) parseStatement() (Expr, error) {
	if p.peek().Kind == TokIdent && p.tokens[p.pos+1].Kind == TokAssign {
		target := p.next()
		if target.Text[0] == '$' {
			return nil, ParseError{Pos: target.Pos, Expected: "assignable identifier, not a constant"}
		}
		p.next() // '='
		value, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &Assignment{Target: target.Text, Value: value}, nil
	}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokAssign {
		return nil, ParseError{Pos: p.peek().Pos, Expected: "identifier on left side of '='"}
	}
	return expr, nil
}

func (p *parser) parseOr() (Expr, error) {
	return p.parseBinaryLevel(0)
}

// binary operator levels, loosest first
var binaryLevels = [][]string{
	{"||"},
	{"&&"},
	{"==", "!=", "<", ">", "<=", ">="},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *parser) parseBinaryLevel(level int) (Expr, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}
	left, err := p.parseBinaryLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != TokOperator || !containsOp(binaryLevels[level], tok.Text) {
			return left, nil
		}
		p.next()
		right, err := p.parseBinaryLevel(level + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: tok.Text, Left: left, Right: right}
	}
}

func containsOp(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func (p *parser) parseUnary() (Expr, error) {
	tok := p.peek()
	if tok.Kind == TokOperator && (tok.Text == "-" || tok.Text == "+") {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.Text == "+" {
			return operand, nil
		}
		return &UnaryOp{Op: "-", Operand: operand}, nil
	}
	return p.parsePower()
}

// power = primary ['^' unary], right-associative
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.Kind == TokOperator && tok.Text == "^" {
		p.next()
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Op: "^", Left: base, Right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokNumber:
		p.next()
		return &Literal{Value: tok.Num}, nil
	case TokIdent:
		p.next()
		if p.peek().Kind == TokLParen {
			return p.parseCall(tok)
		}
		return &VariableRef{Name: tok.Text}, nil
	case TokLParen:
		p.next()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, ParseError{Pos: tok.Pos, Expected: "number, identifier or '('"}
	}
}

func (p *parser) parseCall(name Token) (Expr, error) {
	p.next() // '('
	call := &FunctionCall{Name: name.Text}
	if p.peek().Kind == TokRParen {
		p.next()
		return call, nil
	}
	for {
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		switch p.peek().Kind {
		case TokComma:
			p.next()
		case TokRParen:
			p.next()
			return call, nil
		default:
			return nil, ParseError{Pos: p.peek().Pos, Expected: "',' or ')'"}
		}
	}
}

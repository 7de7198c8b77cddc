// Package parser is a parser for the Awesome language.
package parser

import (
	"errors"

	"github.com/takoeight0821/awesome/internal/ast"
	"github.com/takoeight0821/awesome/internal/token"
	"github.com/takoeight0821/awesome/internal/utils"
)

type Parser struct {
	tokens  []token.Token
	current int
	err     error

	// failed is set when the statement being parsed reported an error.
	failed bool
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens, 0, nil, false}
}

// Parse parses a whole program. Errors are collected per statement; the
// parser skips to the next statement after each one.
func (p *Parser) Parse() (*ast.Nodes, error) {
	p.err = nil
	nodes := p.expressions(false)
	return nodes, p.err
}

// expressions = [ expression ] { terminator [ expression ] } ;
func (p *Parser) expressions(inBlock bool) *ast.Nodes {
	nodes := &ast.Nodes{Nodes: []ast.Node{}}
	atEnd := func() bool {
		return p.IsAtEnd() || (inBlock && p.match(token.DEDENT))
	}

	for !atEnd() {
		if p.isTerminator() {
			p.advance()
			continue
		}

		start := p.current
		p.failed = false
		node := p.expression()
		if p.failed {
			p.synchronize()
			if p.current == start {
				p.advance()
			}
			continue
		}
		nodes.Nodes = append(nodes.Nodes, node)

		if !atEnd() && !p.isTerminator() {
			p.recover(utils.ErrorAt(p.peek(), "expected newline"))
			p.synchronize()
		}
	}
	return nodes
}

func (p Parser) isTerminator() bool {
	return p.match(token.NEWLINE) || p.match(token.SEMICOLON)
}

// expression = setLocal | setConstant | def | class | if | or ;
func (p *Parser) expression() ast.Node {
	if p.IsAtEnd() {
		p.recover(utils.ErrorAt(p.peek(), "expected expression"))
		return nil
	}
	switch {
	case p.match(token.IDENTIFIER) && p.matchNext(token.ASSIGN):
		return p.setLocal()
	case p.match(token.CONSTANT) && p.matchNext(token.ASSIGN):
		return p.setConstant()
	case p.match(token.DEF):
		return p.def()
	case p.match(token.CLASS):
		return p.class()
	case p.match(token.IF):
		return p.ifExpr()
	}
	return p.or()
}

// setLocal = IDENTIFIER "=" expression ;
func (p *Parser) setLocal() *ast.SetLocal {
	name := p.advance()
	p.consume(token.ASSIGN, "expected `=`")
	return &ast.SetLocal{Name: name, Value: p.expression()}
}

// setConstant = CONSTANT "=" expression ;
func (p *Parser) setConstant() *ast.SetConstant {
	name := p.advance()
	p.consume(token.ASSIGN, "expected `=`")
	return &ast.SetConstant{Name: name, Value: p.expression()}
}

// def = "def" IDENTIFIER [ "(" [ IDENTIFIER { "," IDENTIFIER } ] ")" ] block ;
func (p *Parser) def() *ast.Def {
	p.consume(token.DEF, "expected `def`")
	name := p.consume(token.IDENTIFIER, "expected method name")
	params := []token.Token{}
	if p.match(token.LEFTPAREN) {
		p.advance()
		if !p.match(token.RIGHTPAREN) {
			params = append(params, p.consume(token.IDENTIFIER, "expected parameter name"))
			for p.match(token.COMMA) {
				p.advance()
				params = append(params, p.consume(token.IDENTIFIER, "expected parameter name"))
			}
		}
		p.consume(token.RIGHTPAREN, "expected `)`")
	}
	return &ast.Def{Name: name, Params: params, Body: p.block()}
}

// class = "class" CONSTANT block ;
func (p *Parser) class() *ast.Class {
	p.consume(token.CLASS, "expected `class`")
	name := p.consume(token.CONSTANT, "expected class name")
	return &ast.Class{Name: name, Body: p.block()}
}

// if = "if" expression block ;
func (p *Parser) ifExpr() *ast.If {
	p.consume(token.IF, "expected `if`")
	cond := p.expression()
	return &ast.If{Cond: cond, Body: p.block()}
}

// block = INDENT expressions DEDENT ;
func (p *Parser) block() *ast.Nodes {
	if p.match(token.INDENT) {
		p.advance()
	} else {
		p.recover(utils.ErrorAt(p.peek(), "expected `:` and an indented block"))
		return &ast.Nodes{}
	}
	body := p.expressions(true)
	p.consume(token.DEDENT, "expected end of block")
	return body
}

// binary parses a left-associative chain of next separated by ops. Each
// operator becomes a call on its left operand.
func (p *Parser) binary(next func() ast.Node, ops ...token.Kind) ast.Node {
	expr := next()
	for p.matchAny(ops...) {
		op := p.advance()
		right := next()
		expr = &ast.Call{Receiver: expr, Method: op, Args: []ast.Node{right}}
	}
	return expr
}

// or = and { "||" and } ;
func (p *Parser) or() ast.Node {
	return p.binary(p.and, token.OR)
}

// and = equality { "&&" equality } ;
func (p *Parser) and() ast.Node {
	return p.binary(p.equality, token.AND)
}

// equality = comparison { ("==" | "!=") comparison } ;
func (p *Parser) equality() ast.Node {
	return p.binary(p.comparison, token.EQ, token.NOTEQ)
}

// comparison = additive { ("<" | ">" | "<=" | ">=") additive } ;
func (p *Parser) comparison() ast.Node {
	return p.binary(p.additive, token.LT, token.GT, token.LTE, token.GTE)
}

// additive = multiplicative { ("+" | "-") multiplicative } ;
func (p *Parser) additive() ast.Node {
	return p.binary(p.multiplicative, token.PLUS, token.MINUS)
}

// multiplicative = unary { ("*" | "/") unary } ;
func (p *Parser) multiplicative() ast.Node {
	return p.binary(p.unary, token.STAR, token.SLASH)
}

// unary = "!" unary | access ;
func (p *Parser) unary() ast.Node {
	if p.match(token.BANG) {
		op := p.advance()
		return &ast.Call{Receiver: p.unary(), Method: op, Args: []ast.Node{}}
	}
	return p.access()
}

// access = primary { "." IDENTIFIER [ arguments ] } ;
func (p *Parser) access() ast.Node {
	expr := p.primary()
	for p.match(token.DOT) {
		p.advance()
		name := p.consume(token.IDENTIFIER, "expected method name")
		args := []ast.Node{}
		if p.match(token.LEFTPAREN) {
			args = p.arguments()
		}
		expr = &ast.Call{Receiver: expr, Method: name, Args: args}
	}
	return expr
}

// primary = NUMBER | STRING | TRUE | FALSE | NIL | CONSTANT
//
//	| IDENTIFIER [ arguments ] | "(" expression ")" ;
func (p *Parser) primary() ast.Node {
	switch t := p.advance(); t.Kind {
	case token.NUMBER:
		return &ast.Number{Token: t, Value: t.Literal.(int)}
	case token.STRING:
		return &ast.String{Token: t, Value: t.Literal.(string)}
	case token.TRUE:
		return &ast.True{Token: t}
	case token.FALSE:
		return &ast.False{Token: t}
	case token.NIL:
		return &ast.Nil{Token: t}
	case token.CONSTANT:
		return &ast.GetConstant{Name: t}
	case token.IDENTIFIER:
		if p.match(token.LEFTPAREN) {
			return &ast.Call{Method: t, Args: p.arguments()}
		}
		return &ast.GetLocal{Name: t}
	case token.LEFTPAREN:
		expr := p.expression()
		p.consume(token.RIGHTPAREN, "expected `)`")
		return expr
	default:
		p.recover(utils.ErrorAt(t, "expected expression"))
		return nil
	}
}

// arguments = "(" [ expression { "," expression } ] ")" ;
func (p *Parser) arguments() []ast.Node {
	p.consume(token.LEFTPAREN, "expected `(`")
	args := []ast.Node{}
	if !p.match(token.RIGHTPAREN) {
		args = append(args, p.expression())
		for p.match(token.COMMA) {
			p.advance()
			args = append(args, p.expression())
		}
	}
	p.consume(token.RIGHTPAREN, "expected `)`")
	return args
}

// synchronize skips to the end of the current statement, stepping over any
// blocks nested inside it.
func (p *Parser) synchronize() {
	depth := 0
	for !p.IsAtEnd() {
		switch p.peek().Kind {
		case token.INDENT:
			depth++
		case token.DEDENT:
			if depth == 0 {
				return
			}
			depth--
		case token.NEWLINE, token.SEMICOLON:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) recover(err error) {
	p.failed = true
	p.err = errors.Join(p.err, err)
}

// peek returns the current token, or a zero-kind token at the end of input.
func (p Parser) peek() token.Token {
	if p.IsAtEnd() {
		return token.Token{}
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.IsAtEnd() {
		p.current++
	}
	return t
}

func (p Parser) IsAtEnd() bool {
	return p.current >= len(p.tokens)
}

func (p Parser) match(kind token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.match(k) {
			return true
		}
	}
	return false
}

func (p Parser) matchNext(kind token.Kind) bool {
	return p.current+1 < len(p.tokens) && p.tokens[p.current+1].Kind == kind
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.match(kind) {
		return p.advance()
	}

	p.recover(utils.ErrorAt(p.peek(), message))
	return p.peek()
}

// Package ast defines the syntax tree produced by the parser and walked by
// the interpreter.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/awesome/internal/token"
)

type Node interface {
	fmt.Stringer
	// Base returns the token the node starts at, for diagnostics.
	Base() token.Token
}

// Nodes is a sequence of expressions: a whole program or a block body.
type Nodes struct {
	Nodes []Node
}

func (n Nodes) String() string {
	return parenthesize("nodes", concat(n.Nodes)).String()
}

func (n *Nodes) Base() token.Token {
	if len(n.Nodes) == 0 {
		return token.Token{}
	}
	return n.Nodes[0].Base()
}

var _ Node = &Nodes{}

type Number struct {
	token.Token
	Value int
}

func (n Number) String() string {
	return parenthesize("number", str(strconv.Itoa(n.Value))).String()
}

func (n *Number) Base() token.Token {
	return n.Token
}

var _ Node = &Number{}

type String struct {
	token.Token
	Value string
}

func (s String) String() string {
	return parenthesize("string", str(strconv.Quote(s.Value))).String()
}

func (s *String) Base() token.Token {
	return s.Token
}

var _ Node = &String{}

type True struct {
	token.Token
}

func (True) String() string {
	return "(true)"
}

func (t *True) Base() token.Token {
	return t.Token
}

var _ Node = &True{}

type False struct {
	token.Token
}

func (False) String() string {
	return "(false)"
}

func (f *False) Base() token.Token {
	return f.Token
}

var _ Node = &False{}

type Nil struct {
	token.Token
}

func (Nil) String() string {
	return "(nil)"
}

func (n *Nil) Base() token.Token {
	return n.Token
}

var _ Node = &Nil{}

// Call sends Method to Receiver. A nil Receiver means the current self.
type Call struct {
	Receiver Node
	Method   token.Token
	Args     []Node
}

func (c Call) String() string {
	var receiver fmt.Stringer = str("self")
	if c.Receiver != nil {
		receiver = c.Receiver
	}
	return parenthesize("call", receiver, str(c.Method.Lexeme), concat(c.Args)).String()
}

func (c *Call) Base() token.Token {
	if c.Receiver != nil {
		return c.Receiver.Base()
	}
	return c.Method
}

var _ Node = &Call{}

type GetConstant struct {
	Name token.Token
}

func (g GetConstant) String() string {
	return parenthesize("const", str(g.Name.Lexeme)).String()
}

func (g *GetConstant) Base() token.Token {
	return g.Name
}

var _ Node = &GetConstant{}

type SetConstant struct {
	Name  token.Token
	Value Node
}

func (s SetConstant) String() string {
	return parenthesize("setconst", str(s.Name.Lexeme), s.Value).String()
}

func (s *SetConstant) Base() token.Token {
	return s.Name
}

var _ Node = &SetConstant{}

type GetLocal struct {
	Name token.Token
}

func (g GetLocal) String() string {
	return parenthesize("local", str(g.Name.Lexeme)).String()
}

func (g *GetLocal) Base() token.Token {
	return g.Name
}

var _ Node = &GetLocal{}

type SetLocal struct {
	Name  token.Token
	Value Node
}

func (s SetLocal) String() string {
	return parenthesize("setlocal", str(s.Name.Lexeme), s.Value).String()
}

func (s *SetLocal) Base() token.Token {
	return s.Name
}

var _ Node = &SetLocal{}

// Def defines a method on the current class.
type Def struct {
	Name   token.Token
	Params []token.Token
	Body   *Nodes
}

func (d Def) String() string {
	params := make([]fmt.Stringer, len(d.Params))
	for i, p := range d.Params {
		params[i] = str(p.Lexeme)
	}
	return parenthesize("def", str(d.Name.Lexeme), parenthesize("", params...), d.Body).String()
}

func (d *Def) Base() token.Token {
	return d.Name
}

var _ Node = &Def{}

type Class struct {
	Name token.Token
	Body *Nodes
}

func (c Class) String() string {
	return parenthesize("class", str(c.Name.Lexeme), c.Body).String()
}

func (c *Class) Base() token.Token {
	return c.Name
}

var _ Node = &Class{}

type If struct {
	Cond Node
	Body *Nodes
}

func (i If) String() string {
	return parenthesize("if", i.Cond, i.Body).String()
}

func (i *If) Base() token.Token {
	return i.Cond.Base()
}

var _ Node = &If{}

type str string

func (s str) String() string {
	return string(s)
}

func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat joins the non-empty string forms of elems with spaces.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		s := elem.String()
		if s == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(s)
	}
	return &b
}

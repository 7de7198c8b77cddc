// Package interp walks the syntax tree and drives the runtime.
package interp

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/awesome/internal/ast"
	"github.com/takoeight0821/awesome/internal/runtime"
	"github.com/takoeight0821/awesome/internal/utils"
)

var (
	ErrUndefinedConstant = errors.New("undefined constant")
	ErrUndefinedLocal    = errors.New("undefined local variable or method")
)

// ArityError is returned when a user-defined method gets the wrong number of
// arguments.
type ArityError struct {
	Method   string
	Expected int
	Actual   int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("wrong number of arguments for %s (given %d, expected %d)", e.Method, e.Actual, e.Expected)
}

type Interpreter struct {
	*runtime.Runtime
}

func NewInterpreter(rt *runtime.Runtime) *Interpreter {
	return &Interpreter{Runtime: rt}
}

// Run evaluates program in the root context.
func (in *Interpreter) Run(program *ast.Nodes) (runtime.Value, error) {
	return in.Eval(program, in.Root)
}

// Eval evaluates node in ctx.
func (in *Interpreter) Eval(node ast.Node, ctx *runtime.Context) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Nodes:
		var ret runtime.Value = in.Nil()
		for _, node := range n.Nodes {
			v, err := in.Eval(node, ctx)
			if err != nil {
				return nil, err
			}
			ret = v
		}
		return ret, nil
	case *ast.Number:
		return in.NewNumber(n.Value), nil
	case *ast.String:
		return in.NewString(n.Value), nil
	case *ast.True:
		return in.True(), nil
	case *ast.False:
		return in.False(), nil
	case *ast.Nil:
		return in.Nil(), nil
	case *ast.Call:
		return in.call(n, ctx)
	case *ast.GetConstant:
		v, ok := in.Constants[n.Name.Lexeme]
		if !ok {
			return nil, wrapAt(n, ErrUndefinedConstant)
		}
		return v, nil
	case *ast.SetConstant:
		v, err := in.Eval(n.Value, ctx)
		if err != nil {
			return nil, err
		}
		in.Constants[n.Name.Lexeme] = v
		return v, nil
	case *ast.GetLocal:
		return in.getLocal(n, ctx)
	case *ast.SetLocal:
		v, err := in.Eval(n.Value, ctx)
		if err != nil {
			return nil, err
		}
		ctx.SetLocal(n.Name.Lexeme, v)
		return v, nil
	case *ast.Def:
		ctx.Class.Def(n.Name.Lexeme, &Method{in: in, Def: n})
		return in.Nil(), nil
	case *ast.Class:
		return in.class(n, ctx)
	case *ast.If:
		cond, err := in.Eval(n.Cond, ctx)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(cond) {
			return in.Eval(n.Body, ctx)
		}
		return in.Nil(), nil
	default:
		return nil, utils.ErrorAt(node.Base(), fmt.Sprintf("unexpected node: %v", node))
	}
}

// getLocal reads a local, falling back to a no-argument call on self so that
// `name` works for both variables and methods.
func (in *Interpreter) getLocal(n *ast.GetLocal, ctx *runtime.Context) (runtime.Value, error) {
	if v, ok := ctx.Local(n.Name.Lexeme); ok {
		return v, nil
	}
	if _, err := ctx.Self.RuntimeClass().Lookup(n.Name.Lexeme); err != nil {
		return nil, wrapAt(n, fmt.Errorf("%w: %s", ErrUndefinedLocal, n.Name.Lexeme))
	}
	v, err := ctx.Self.Call(n.Name.Lexeme)
	if err != nil {
		return nil, wrapAt(n, err)
	}
	return v, nil
}

func (in *Interpreter) call(n *ast.Call, ctx *runtime.Context) (runtime.Value, error) {
	receiver := ctx.Self
	if n.Receiver != nil {
		var err error
		receiver, err = in.Eval(n.Receiver, ctx)
		if err != nil {
			return nil, err
		}
	}

	args := make([]runtime.Value, len(n.Args))
	for i, arg := range n.Args {
		var err error
		args[i], err = in.Eval(arg, ctx)
		if err != nil {
			return nil, err
		}
	}

	v, err := receiver.Call(n.Method.Lexeme, args...)
	if err != nil {
		return nil, wrapAt(n, err)
	}
	return v, nil
}

// class reopens the class named by n, or creates it, and evaluates the body
// with the class as self and as the target of def.
func (in *Interpreter) class(n *ast.Class, ctx *runtime.Context) (runtime.Value, error) {
	name := n.Name.Lexeme
	c, ok := in.Class(name)
	if !ok {
		if _, exists := in.Constants[name]; exists {
			return nil, wrapAt(n, fmt.Errorf("%s is not a class", name))
		}
		c = in.NewClass(name)
		in.Constants[name] = c
	}
	return in.Eval(n.Body, runtime.NewContextWithClass(c, c))
}

// wrapAt adds the position of node unless err already went through a
// user-defined method, which positions its own errors.
func wrapAt(node ast.Node, err error) error {
	var pe positioned
	if errors.As(err, &pe) {
		return err
	}
	t := node.Base()
	return positioned{line: t.Line, lexeme: t.Lexeme, err: err}
}

type positioned struct {
	line   int
	lexeme string
	err    error
}

func (p positioned) Error() string {
	return fmt.Sprintf("at %d: `%s`, %v", p.line, p.lexeme, p.err)
}

func (p positioned) Unwrap() error {
	return p.err
}

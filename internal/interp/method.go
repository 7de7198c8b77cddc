package interp

import (
	"github.com/takoeight0821/awesome/internal/ast"
	"github.com/takoeight0821/awesome/internal/runtime"
)

// Method is a method defined in Awesome source with def.
type Method struct {
	in  *Interpreter
	Def *ast.Def
}

// Invoke evaluates the body in a fresh context whose self is receiver and
// whose locals are the parameters.
func (m *Method) Invoke(receiver runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if len(args) != len(m.Def.Params) {
		return nil, ArityError{Method: m.Def.Name.Lexeme, Expected: len(m.Def.Params), Actual: len(args)}
	}

	ctx := runtime.NewContext(receiver)
	for i, param := range m.Def.Params {
		ctx.SetLocal(param.Lexeme, args[i])
	}
	return m.in.Eval(m.Def.Body, ctx)
}

var _ runtime.Method = &Method{}

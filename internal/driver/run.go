package driver

import (
	"io"

	"github.com/takoeight0821/awesome/internal/ast"
	"github.com/takoeight0821/awesome/internal/interp"
	"github.com/takoeight0821/awesome/internal/lexer"
	"github.com/takoeight0821/awesome/internal/parser"
	"github.com/takoeight0821/awesome/internal/runtime"
)

// Runner holds one interpreter so that definitions persist across calls to
// RunSource.
type Runner struct {
	interp *interp.Interpreter
}

// NewRunner bootstraps a runtime whose print writes to out.
func NewRunner(out io.Writer) *Runner {
	return &Runner{interp: interp.NewInterpreter(runtime.Bootstrap(out))}
}

// Runtime returns the runner's object graph.
func (r *Runner) Runtime() *runtime.Runtime {
	return r.interp.Runtime
}

// Parse lexes and parses source without evaluating it.
func Parse(source string) (*ast.Nodes, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return parser.NewParser(tokens).Parse()
}

// RunSource parses source and evaluates it in the root context, returning the
// value of the last expression.
func (r *Runner) RunSource(source string) (runtime.Value, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return r.interp.Run(program)
}

package interp_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takoeight0821/awesome/internal/interp"
	"github.com/takoeight0821/awesome/internal/lexer"
	"github.com/takoeight0821/awesome/internal/parser"
	"github.com/takoeight0821/awesome/internal/runtime"
)

func run(t *testing.T, in *interp.Interpreter, source string) (runtime.Value, error) {
	t.Helper()
	tokens, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	program, err := parser.NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return in.Run(program)
}

func Test_Def_targetsCurrentClass(t *testing.T) {
	assert := assert.New(t)
	in := interp.NewInterpreter(runtime.Bootstrap(&bytes.Buffer{}))

	_, err := run(t, in, "def top:\n  1\nclass Inner:\n  def nested:\n    2")
	assert.NoError(err)

	object, _ := in.Class("Object")
	assert.Equal([]string{"print", "top"}, object.Methods())

	inner, ok := in.Class("Inner")
	if assert.True(ok) {
		assert.Equal([]string{"nested"}, inner.Methods())
		assert.Same(in.Constants["Class"], inner.RuntimeClass())

		m, err := inner.Lookup("nested")
		assert.NoError(err)
		assert.IsType(&interp.Method{}, m)
	}
}

func Test_Class_bodyValue(t *testing.T) {
	assert := assert.New(t)
	in := interp.NewInterpreter(runtime.Bootstrap(&bytes.Buffer{}))

	v, err := run(t, in, "class Empty:\n  7")
	assert.NoError(err)
	assert.Equal(7, v.Boxed())

	_, err = run(t, in, "Value = 1\nclass Value:\n  1")
	assert.ErrorContains(err, "Value is not a class")
}

func Test_Method_selfIsReceiver(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer
	in := interp.NewInterpreter(runtime.Bootstrap(&out))

	// Object#print is reachable from a method on Object because self is the
	// receiver.
	_, err := run(t, in, "def show(x):\n  print(x)\nObject.new.show(\"ok\")")
	assert.NoError(err)
	assert.Equal("ok\n", out.String())
}

func Test_Errors(t *testing.T) {
	assert := assert.New(t)
	in := interp.NewInterpreter(runtime.Bootstrap(&bytes.Buffer{}))

	_, err := run(t, in, "missing(1)")
	var notFound runtime.MethodNotFoundError
	if assert.True(errors.As(err, &notFound)) {
		assert.Equal("missing", notFound.Name)
		assert.Equal("Object", notFound.Class)
	}

	_, err = run(t, in, "def two(a, b):\n  a\ntwo(1)")
	var arity interp.ArityError
	if assert.True(errors.As(err, &arity)) {
		assert.Equal(2, arity.Expected)
		assert.Equal(1, arity.Actual)
	}

	_, err = run(t, in, "Nope")
	assert.ErrorIs(err, interp.ErrUndefinedConstant)

	_, err = run(t, in, "nope")
	assert.ErrorIs(err, interp.ErrUndefinedLocal)
}

func Test_If_value(t *testing.T) {
	assert := assert.New(t)
	in := interp.NewInterpreter(runtime.Bootstrap(&bytes.Buffer{}))

	v, err := run(t, in, "if true:\n  \"then\"")
	assert.NoError(err)
	assert.Equal("then", v.Boxed())

	v, err = run(t, in, "if false:\n  \"then\"")
	assert.NoError(err)
	assert.Same(in.Nil(), v)
}

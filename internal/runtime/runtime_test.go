package runtime_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takoeight0821/awesome/internal/runtime"
)

func Test_Bootstrap_constants(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})

	for _, name := range []string{"Class", "Object", "Number", "String", "TrueClass", "FalseClass", "NilClass"} {
		c, ok := rt.Class(name)
		if assert.True(ok, name) {
			assert.Equal(name, c.Name)
			assert.Same(rt.Constants["Class"], c.RuntimeClass(), name)
		}
	}

	class, _ := rt.Class("Class")
	assert.Same(class, class.RuntimeClass())

	assert.Equal(true, rt.True().Boxed())
	assert.Equal(false, rt.False().Boxed())
	assert.Nil(rt.Nil().Boxed())
	assert.Equal("NilClass", rt.Nil().RuntimeClass().Name)

	object, _ := rt.Class("Object")
	assert.Same(object, rt.Root.Self.RuntimeClass())
	assert.Same(object, rt.Root.Class)
	assert.Empty(rt.Root.Locals)

	assert.Equal([]string{"new"}, class.Methods())
	assert.Equal([]string{"print"}, object.Methods())
}

func Test_Class_new(t *testing.T) {
	rt := runtime.Bootstrap(&bytes.Buffer{})

	for _, name := range []string{"Class", "Object", "Number", "String", "NilClass"} {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			c, _ := rt.Class(name)

			direct := c.New()
			assert.Same(c, direct.RuntimeClass())
			assert.Same(direct, direct.Boxed())

			v, err := c.Call("new")
			assert.NoError(err)
			assert.Same(c, v.RuntimeClass())
			assert.NotEqual(direct.ID, v.(*runtime.Object).ID)
		})
	}
}

func Test_Class_newWithValue(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})

	n := rt.NewNumber(42)
	assert.Equal(42, n.Boxed())
	assert.Equal("Number", n.RuntimeClass().Name)
	assert.Equal("42", n.String())

	s := rt.NewString("hi")
	assert.Equal("hi", s.Boxed())
	assert.Equal("hi", s.String())
}

func Test_Class_def(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})
	greeter := rt.NewClass("Greeter")

	calls := 0
	var gotReceiver runtime.Value
	var gotArgs []runtime.Value
	greeter.Def("greet", runtime.NativeMethod(func(receiver runtime.Value, args []runtime.Value) (runtime.Value, error) {
		calls++
		gotReceiver = receiver
		gotArgs = args
		return rt.NewString("hello"), nil
	}))

	obj := greeter.New()
	v, err := obj.Call("greet")
	assert.NoError(err)
	assert.Equal("hello", v.Boxed())
	assert.Equal(1, calls)
	assert.Same(obj, gotReceiver)
	assert.NotNil(gotArgs)
	assert.Empty(gotArgs)
}

func Test_Class_defOverwrites(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})
	c := rt.NewClass("Thing")

	constant := func(n int) runtime.Method {
		return runtime.NativeMethod(func(runtime.Value, []runtime.Value) (runtime.Value, error) {
			return rt.NewNumber(n), nil
		})
	}
	c.Def("value", constant(1))
	c.Def("value", constant(2))

	v, err := c.New().Call("value")
	assert.NoError(err)
	assert.Equal(2, v.Boxed())
	assert.Equal([]string{"value"}, c.Methods())
}

func Test_Class_lookupIsLocal(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})
	c := rt.NewClass("Plain")

	// print lives on Object only
	_, err := c.New().Call("print", rt.NewNumber(1))

	var notFound runtime.MethodNotFoundError
	if assert.True(errors.As(err, &notFound)) {
		assert.Equal("print", notFound.Name)
		assert.Equal("Plain", notFound.Class)
	}
}

func Test_Object_callMissing(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})

	values := []runtime.Value{rt.Root.Self, rt.NewNumber(1), rt.Nil(), rt.Constants["Object"]}
	for _, v := range values {
		_, err := v.Call("frobnicate")
		var notFound runtime.MethodNotFoundError
		if assert.True(errors.As(err, &notFound), v.String()) {
			assert.Equal("frobnicate", notFound.Name)
		}
		assert.Contains(err.Error(), "method not found: frobnicate")
	}
}

func Test_Object_print(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer
	rt := runtime.Bootstrap(&out)

	for _, v := range []runtime.Value{rt.NewString("hi"), rt.NewNumber(7), rt.True(), rt.False(), rt.Nil()} {
		ret, err := rt.Root.Self.Call("print", v)
		assert.NoError(err)
		assert.Same(rt.Nil(), ret)
	}
	assert.Equal("hi\n7\ntrue\nfalse\n\n", out.String())

	_, err := rt.Root.Self.Call("print")
	assert.Error(err)
}

func Test_Object_printIdentity(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer
	rt := runtime.Bootstrap(&out)

	obj := rt.Root.Self.(*runtime.Object)
	_, err := obj.Call("print", obj)
	assert.NoError(err)
	assert.Equal("#<Object:"+obj.ID.String()+">\n", out.String())
}

func Test_Class_newOnInstance(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})

	class, _ := rt.Class("Class")
	instance, err := class.Call("new")
	assert.NoError(err)
	assert.Same(class, instance.RuntimeClass())

	_, err = instance.Call("new")
	assert.Error(err)
}

func Test_Context(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})
	c := rt.NewClass("Widget")
	obj := c.New()

	ctx := runtime.NewContext(obj)
	assert.Same(obj, ctx.Self)
	assert.Same(c, ctx.Class)
	assert.Empty(ctx.Locals)

	_, ok := ctx.Local("x")
	assert.False(ok)
	ctx.SetLocal("x", rt.NewNumber(1))
	x, ok := ctx.Local("x")
	assert.True(ok)
	assert.Equal(1, x.Boxed())

	object, _ := rt.Class("Object")
	other := runtime.NewContextWithClass(obj, object)
	assert.Same(object, other.Class)
	_, ok = other.Local("x")
	assert.False(ok)
}

func Test_Truthy(t *testing.T) {
	assert := assert.New(t)
	rt := runtime.Bootstrap(&bytes.Buffer{})

	assert.True(runtime.Truthy(rt.True()))
	assert.False(runtime.Truthy(rt.False()))
	assert.False(runtime.Truthy(rt.Nil()))
	assert.True(runtime.Truthy(rt.NewNumber(0)))
	assert.True(runtime.Truthy(rt.NewString("")))
	assert.True(runtime.Truthy(rt.Root.Self))
}

package runtime

import (
	"fmt"
	"io"
)

// Constants maps constant names to their values. Bootstrap fills in the seed
// classes and the true, false and nil singletons; class definitions add more.
type Constants map[string]Value

// Runtime is one bootstrapped object graph.
type Runtime struct {
	Constants Constants
	// Root is the top-level scope. Its self is a fresh Object.
	Root *Context

	out io.Writer
}

// Bootstrap builds the seed classes and objects. Object#print writes to out.
func Bootstrap(out io.Writer) *Runtime {
	rt := &Runtime{Constants: Constants{}, out: out}

	class := NewClass("Class", nil)
	class.class = class
	rt.Constants["Class"] = class

	object := rt.defineClass("Object")
	rt.defineClass("Number")
	rt.defineClass("String")

	rt.Root = NewContext(object.New())

	rt.Constants["true"] = rt.defineClass("TrueClass").NewWithValue(true)
	rt.Constants["false"] = rt.defineClass("FalseClass").NewWithValue(false)
	rt.Constants["nil"] = rt.defineClass("NilClass").NewWithValue(nil)

	class.Def("new", NativeMethod(classNew))
	object.Def("print", NativeMethod(rt.objectPrint))

	return rt
}

func (rt *Runtime) defineClass(name string) *Class {
	c := rt.NewClass(name)
	rt.Constants[name] = c
	return c
}

// NewClass creates a class named name whose runtime class is Class. It does
// not register a constant.
func (rt *Runtime) NewClass(name string) *Class {
	meta, _ := rt.Class("Class")
	return NewClass(name, meta)
}

// Class returns the constant name if it is a class.
func (rt *Runtime) Class(name string) (*Class, bool) {
	c, ok := rt.Constants[name].(*Class)
	return c, ok
}

func (rt *Runtime) mustClass(name string) *Class {
	c, ok := rt.Class(name)
	if !ok {
		panic(fmt.Sprintf("runtime: %s is not bootstrapped", name))
	}
	return c
}

func (rt *Runtime) Nil() Value {
	return rt.Constants["nil"]
}

func (rt *Runtime) True() Value {
	return rt.Constants["true"]
}

func (rt *Runtime) False() Value {
	return rt.Constants["false"]
}

// Bool returns the true or false singleton.
func (rt *Runtime) Bool(b bool) Value {
	if b {
		return rt.True()
	}
	return rt.False()
}

// NewNumber boxes n in a Number instance.
func (rt *Runtime) NewNumber(n int) Value {
	return rt.mustClass("Number").NewWithValue(n)
}

// NewString boxes s in a String instance.
func (rt *Runtime) NewString(s string) Value {
	return rt.mustClass("String").NewWithValue(s)
}

func classNew(receiver Value, _ []Value) (Value, error) {
	c, ok := receiver.(*Class)
	if !ok {
		return nil, fmt.Errorf("new: %s is not a class", receiver)
	}
	return c.New(), nil
}

// objectPrint writes its first argument and returns nil.
func (rt *Runtime) objectPrint(_ Value, args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("print: expected 1 argument, got 0")
	}
	if _, err := fmt.Fprintln(rt.out, args[0].String()); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return rt.Nil(), nil
}

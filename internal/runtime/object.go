// Package runtime is the object model of Awesome: objects, classes with
// method tables, evaluation contexts and the bootstrapped constants.
//
// Everything reachable at runtime, classes included, is a Value with a
// runtime class, so method dispatch has one code path for every receiver.
//
// Nothing here is safe for concurrent use. Embedders that evaluate several
// programs at once must serialize access to a Runtime themselves.
package runtime

import (
	"fmt"

	"github.com/google/uuid"
)

type Value interface {
	fmt.Stringer
	// RuntimeClass returns the class whose method table serves this value.
	RuntimeClass() *Class
	// Boxed returns the host value carried by a primitive, or the value
	// itself for plain objects.
	Boxed() any
	// Call dispatches method to the receiver's class.
	Call(method string, args ...Value) (Value, error)
}

// Object is an instance of a class, optionally boxing a host value (bool,
// int, string or nil) when it stands for a primitive.
type Object struct {
	ID    uuid.UUID
	class *Class
	value any
}

func (o *Object) RuntimeClass() *Class {
	return o.class
}

func (o *Object) Boxed() any {
	return o.value
}

func (o *Object) Call(method string, args ...Value) (Value, error) {
	return dispatch(o, method, args)
}

// String returns the text print writes for the object.
func (o *Object) String() string {
	switch v := o.value.(type) {
	case nil:
		return ""
	case Value:
		return fmt.Sprintf("#<%s:%s>", o.class.Name, o.ID)
	default:
		return fmt.Sprint(v)
	}
}

var _ Value = &Object{}

func dispatch(receiver Value, method string, args []Value) (Value, error) {
	m, err := receiver.RuntimeClass().Lookup(method)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []Value{}
	}
	return m.Invoke(receiver, args)
}

// Truthy reports whether v counts as true in a condition: everything except
// the false and nil primitives.
func Truthy(v Value) bool {
	switch b := v.Boxed().(type) {
	case nil:
		return false
	case bool:
		return b
	}
	return true
}

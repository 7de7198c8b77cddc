package runtime

import (
	"sort"

	"github.com/google/uuid"
)

// Method is an entry of a class's method table.
type Method interface {
	Invoke(receiver Value, args []Value) (Value, error)
}

// NativeMethod is a method implemented in Go.
type NativeMethod func(receiver Value, args []Value) (Value, error)

func (f NativeMethod) Invoke(receiver Value, args []Value) (Value, error) {
	return f(receiver, args)
}

// Class holds a method table and creates instances. A class is itself an
// object whose runtime class is normally the Class class.
type Class struct {
	Object
	Name    string
	methods map[string]Method
}

// NewClass allocates a class named name whose runtime class is meta. A nil
// meta leaves the class reference unset for the caller to patch, which is how
// Class becomes its own class.
func NewClass(name string, meta *Class) *Class {
	c := &Class{Name: name, methods: make(map[string]Method)}
	c.Object = Object{ID: uuid.New(), class: meta}
	c.value = c
	return c
}

// New creates an instance whose boxed value is the instance itself.
func (c *Class) New() *Object {
	o := &Object{ID: uuid.New(), class: c}
	o.value = o
	return o
}

// NewWithValue creates an instance boxing v.
func (c *Class) NewWithValue(v any) *Object {
	return &Object{ID: uuid.New(), class: c, value: v}
}

// Def registers m under name, replacing any method already there.
func (c *Class) Def(name string, m Method) {
	c.methods[name] = m
}

// Lookup finds name in this class's own method table. There is no superclass
// chain.
func (c *Class) Lookup(name string) (Method, error) {
	m, ok := c.methods[name]
	if !ok {
		return nil, MethodNotFoundError{Name: name, Class: c.Name}
	}
	return m, nil
}

// Methods returns the names in the method table, sorted.
func (c *Class) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call dispatches with the class itself as receiver.
func (c *Class) Call(method string, args ...Value) (Value, error) {
	return dispatch(c, method, args)
}

func (c *Class) String() string {
	return c.Name
}

var _ Value = &Class{}

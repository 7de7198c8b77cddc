package runtime

// Context is the scope an expression is evaluated in. The interpreter owns
// scoping rules; a Context never looks at its parent's locals.
type Context struct {
	// Self receives calls with no explicit receiver.
	Self Value
	// Class is where def adds methods.
	Class  *Class
	Locals map[string]Value
}

// NewContext creates an empty scope whose current class is self's class.
func NewContext(self Value) *Context {
	return NewContextWithClass(self, self.RuntimeClass())
}

func NewContextWithClass(self Value, class *Class) *Context {
	return &Context{Self: self, Class: class, Locals: make(map[string]Value)}
}

func (c *Context) Local(name string) (Value, bool) {
	v, ok := c.Locals[name]
	return v, ok
}

func (c *Context) SetLocal(name string, v Value) {
	c.Locals[name] = v
}

package interp

import "github.com/dolthub/swiss"

// Class is a callable runtime value: calling it constructs an Instance.
type Class struct {
	ClassName  string
	Superclass *Class
	Methods    map[string]*Function
}

var _ Callable = (*Class)(nil)

func (c *Class) String() string { return c.ClassName }
func (c *Class) Type() string   { return "class" }
func (c *Class) Name() string   { return c.ClassName }

// findMethod looks up name on the class's own method table, then walks the
// superclass chain.
func (c *Class) findMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of init, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class chain defines init,
// binds and invokes it with args before returning the instance.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Instance is an object constructed from a Class, holding its own mutable
// field mapping.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

// NewInstance allocates a fresh, fieldless instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.class.ClassName + " instance" }
func (i *Instance) Type() string   { return "instance" }

// Get implements property access: a field shadows a method of the same
// name; a method found on the class chain is bound to this instance before
// being returned.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.class.findMethod(name); ok {
		return m.bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance, creating it if absent.
func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}

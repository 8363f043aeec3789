package interp

// Callable is any value that can be the target of a call expression:
// user-defined functions and methods, native functions, and classes
// (calling a class constructs an instance).
type Callable interface {
	Value
	Name() string
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// NativeFunction wraps a host-provided Go function so it can be called like
// any other Callable. The language currently only exposes clock().
type NativeFunction struct {
	FnName  string
	FnArity int
	Fn      func(in *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) String() string { return "<native fn " + n.FnName + ">" }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Name() string   { return n.FnName }
func (n *NativeFunction) Arity() int     { return n.FnArity }
func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}

package interp

import "github.com/ferronlang/lox/lang/ast"

// Function is a user-defined function or method: its parameter names, its
// body, the environment it closed over at definition time, and whether it
// is a class's `init` method (which always yields the bound instance
// regardless of what it returns).
type Function struct {
	decl          *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

// NewFunction wraps a parsed function declaration as a callable closing
// over env.
func NewFunction(decl *ast.FunctionStmt, env *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: env, isInitializer: isInitializer}
}

func (f *Function) String() string { return "<fn " + f.decl.Name + ">" }
func (f *Function) Type() string   { return "function" }
func (f *Function) Name() string   { return f.decl.Name }
func (f *Function) Arity() int     { return len(f.decl.Params) }

// bind produces a new Function whose closure is a fresh environment,
// enclosed by the method's original closure, holding the single binding
// `self -> instance`. The resolver assumed exactly this shape when it
// recorded the distance of every `self` reference inside the method body,
// so this must not introduce or remove an extra scope.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("self", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, p := range f.decl.Params {
		env.Define(p, args[i])
	}

	err := in.executeBlock(f.decl.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			self, _ := f.closure.Get("self")
			return self, nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		self, _ := f.closure.Get("self")
		return self, nil
	}
	return Nil{}, nil
}

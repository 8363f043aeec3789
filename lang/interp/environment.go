package interp

import "github.com/dolthub/swiss"

// Environment is a mapping from name to Value plus a link to an enclosing
// environment. The global root has a nil enclosing link. Child environments
// hold a back-reference to their parent, not ownership of it — closures
// keep an environment alive for as long as the function value that
// captured it is reachable.
type Environment struct {
	values    *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment creates an environment whose enclosing scope is parent
// (nil for the globals environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8), enclosing: parent}
}

// Define binds name to v in this environment, shadowing any binding of the
// same name in an enclosing scope and overwriting any existing binding of
// the same name in this one.
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// Get looks up name, walking outward through enclosing scopes.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates the nearest existing binding of name, walking outward. It
// reports false if no enclosing scope has ever defined name.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, v)
			return true
		}
	}
	return false
}

// ancestor walks exactly distance enclosing links outward. The resolver
// guarantees distance never exceeds the actual scope depth.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt fetches name from the environment exactly distance scopes out, as
// recorded by the resolver.
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	return e.ancestor(distance).values.Get(name)
}

// AssignAt assigns name in the environment exactly distance scopes out.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).values.Put(name, v)
}

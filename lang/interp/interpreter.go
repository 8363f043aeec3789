package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/resolver"
)

// Interpreter walks a resolved AST and executes it. It owns the globals
// environment, the current environment, and the resolver's distance
// side-table; all three are instance state rather than process-wide
// globals, so multiple Interpreters can run concurrently (each still
// single-threaded internally, per the language's concurrency model).
type Interpreter struct {
	globals *Environment
	env     *Environment
	dist    resolver.Distances

	Stdout io.Writer
	Stderr io.Writer
}

// New builds an Interpreter with a fresh globals environment pre-seeded
// with the clock() native, which reads the wall clock.
func New(stdout, stderr io.Writer) *Interpreter {
	return NewWithClock(stdout, stderr, func() float64 {
		return float64(time.Now().UnixNano()) / 1e9
	})
}

// NewWithClock is like New but lets the caller supply clock()'s source,
// so a fixed LOX_CLOCK_EPOCH_SECONDS (see internal/config) can make script
// output reproducible.
func NewWithClock(stdout, stderr io.Writer, clock func() float64) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{globals: globals, env: globals, Stdout: stdout, Stderr: stderr}
	globals.Define("clock", &NativeFunction{
		FnName:  "clock",
		FnArity: 0,
		Fn: func(*Interpreter, []Value) (Value, error) {
			return Number(clock()), nil
		},
	})
	return in
}

// Run executes a fully resolved program. dist is the resolver's output for
// these exact statements. The returned error, when non-nil, is always a
// *RuntimeError.
func (in *Interpreter) Run(stmts []ast.Stmt, dist resolver.Distances) error {
	in.dist = dist
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// EvalExpr evaluates a single expression against the interpreter's current
// environment, for callers (the REPL) that want a bare expression's value
// without running it as a full program.
func (in *Interpreter) EvalExpr(expr ast.Expr) (Value, error) {
	if in.dist == nil {
		in.dist = resolver.Distances{}
	}
	return in.evaluate(expr)
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var v Value = Nil{}
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name, v)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if Truth(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !Truth(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				if _, ok := err.(continueSignal); ok {
					continue
				}
				return err
			}
		}

	case *ast.ForStmt:
		return in.executeFor(s)

	case *ast.BreakStmt:
		return errBreak

	case *ast.ContinueStmt:
		return errContinue

	case *ast.ReturnStmt:
		var v Value = Nil{}
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{Value: v}

	case *ast.FunctionStmt:
		in.env.Define(s.Name, NewFunction(s, in.env, false))
		return nil

	case *ast.ClassStmt:
		return in.executeClass(s)
	}

	return runtimeErrorf(stmt.Line(), "unhandled statement type %T", stmt)
}

// executeFor evaluates a C-style for loop without desugaring to a while
// loop, so that continue always runs Post before Cond is retested — a
// naive `{init; while(cond){body; post}}` rewrite would let continue skip
// Post entirely.
func (in *Interpreter) executeFor(s *ast.ForStmt) error {
	prev := in.env
	in.env = NewEnvironment(prev)
	defer func() { in.env = prev }()

	if s.Init != nil {
		if err := in.execute(s.Init); err != nil {
			return err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !Truth(cond) {
				return nil
			}
		}

		err := in.execute(s.Body)
		if err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			if _, ok := err.(continueSignal); !ok {
				return err
			}
			// continueSignal falls through to Post below.
		}

		if s.Post != nil {
			if err := in.execute(s.Post); err != nil {
				return err
			}
		}
	}
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path: normal completion, an error, or a
// break/continue/return signal threaded back as an error value.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var super *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return runtimeErrorf(s.Superclass.LineNo, "superclass must be a class")
		}
		super = sc
	}

	in.env.Define(s.Name, Nil{})

	classEnv := in.env
	if super != nil {
		classEnv = NewEnvironment(in.env)
		classEnv.Define("super", super)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name] = NewFunction(m, classEnv, m.Name == "init")
	}

	class := &Class{ClassName: s.Name, Superclass: super, Methods: methods}
	in.env.Assign(s.Name, class)
	return nil
}

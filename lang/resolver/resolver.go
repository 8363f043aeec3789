// Package resolver performs a static pass over the parsed AST that mirrors
// the lexical scoping the interpreter will produce at runtime. For every
// variable, self and super reference it records the number of enclosing
// scopes between the use site and its declaration, so the interpreter can
// do an O(distance) environment walk instead of a dynamic name search. It
// also rejects a handful of structural errors that are cheaper to catch
// here than at runtime.
package resolver

import (
	"fmt"

	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/scanner"
)

// Distances maps a resolved site (Variable, Assign, Self or Super
// expression) to the number of scopes between its use and its declaring
// scope. A site absent from the map is a global lookup.
type Distances map[ast.SiteID]int

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Resolve walks stmts and returns the distance side-table, or an error
// aggregating every structural/scoping error found (a scanner.ErrorList, so
// callers format it the same way as scan/parse errors).
func Resolve(stmts []ast.Stmt) (Distances, error) {
	r := &resolver{dist: make(Distances)}
	r.resolveStmts(stmts)
	return r.dist, r.errors.Err()
}

type resolver struct {
	scopes []scope
	dist   Distances
	errors scanner.ErrorList

	currentFunction functionKind
	currentClass    classKind
	loopDepth       int
}

// scope maps a name to whether its declaration has finished (been
// "defined"); false means declared-but-not-yet-defined, which is how a
// variable's own initializer is forbidden from referring to it.
type scope map[string]bool

func (r *resolver) errorf(line int, format string, args ...any) {
	r.errors.Add(line, fmt.Sprintf(format, args...))
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(line int, name string) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name]; ok {
		r.errorf(line, "already a variable named %q in this scope", name)
	}
	sc[name] = false
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal records the scope distance for site, searching from the
// innermost scope outward. A name found in no local scope is left
// unrecorded, meaning "look it up in globals".
func (r *resolver) resolveLocal(site ast.SiteID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.dist[site] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)
	case *ast.VarStmt:
		r.declare(s.LineNo, s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--
	case *ast.ForStmt:
		r.beginScope()
		if s.Init != nil {
			r.resolveStmt(s.Init)
		}
		if s.Cond != nil {
			r.resolveExpr(s.Cond)
		}
		if s.Post != nil {
			r.resolveStmt(s.Post)
		}
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--
		r.endScope()
	case *ast.BreakStmt:
		if r.loopDepth == 0 {
			r.errorf(s.LineNo, "'break' outside a loop")
		}
	case *ast.ContinueStmt:
		if r.loopDepth == 0 {
			r.errorf(s.LineNo, "'continue' outside a loop")
		}
	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.errorf(s.LineNo, "'return' outside a function")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errorf(s.LineNo, "can't return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.FunctionStmt:
		r.declare(s.LineNo, s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.ClassStmt:
		r.resolveClass(s)
	}
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.LineNo, s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name == s.Name {
			r.errorf(s.LineNo, "a class can't inherit from itself")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["self"] = true

	for _, m := range s.Methods {
		kind := fnMethod
		if m.Name == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(m, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	enclosingLoop := r.loopDepth
	r.currentFunction = kind
	r.loopDepth = 0
	defer func() {
		r.currentFunction = enclosingFunction
		r.loopDepth = enclosingLoop
	}()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(fn.LineNo, p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name]; ok && !defined {
				r.errorf(e.LineNo, "can't read local variable %q in its own initializer", e.Name)
			}
		}
		r.resolveLocal(e.Site, e.Name)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Site, e.Name)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Object)
	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.SelfExpr:
		if r.currentClass == classNone {
			r.errorf(e.LineNo, "can't use 'self' outside a class")
			return
		}
		r.resolveLocal(e.Site, "self")
	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.errorf(e.LineNo, "can't use 'super' outside a class")
		case classClass:
			r.errorf(e.LineNo, "can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e.Site, "super")
	}
}

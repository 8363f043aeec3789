package resolver_test

import (
	"testing"

	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/parser"
	"github.com/ferronlang/lox/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) (resolver.Distances, error) {
	t.Helper()
	stmts, err := parser.ParseSource([]byte(src))
	require.NoError(t, err)
	return resolver.Resolve(stmts)
}

func TestResolveLocalDistance(t *testing.T) {
	// x is read one scope out from where it is declared: the block that
	// declares it, then the inner block that reads it.
	src := `{ var x = 1; { print x; } }`
	stmts, err := parser.ParseSource([]byte(src))
	require.NoError(t, err)

	dist, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	block := stmts[0].(*ast.BlockStmt)
	inner := block.Stmts[1].(*ast.BlockStmt)
	printStmt := inner.Stmts[0].(*ast.PrintStmt)
	v := printStmt.Expr.(*ast.VariableExpr)

	d, ok := dist[v.Site]
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestResolveGlobalIsUnrecorded(t *testing.T) {
	dist, err := resolveSrc(t, `var x = 1; print x;`)
	require.NoError(t, err)
	assert.Empty(t, dist)
}

func TestResolveReadOwnInitializerIsError(t *testing.T) {
	_, err := resolveSrc(t, `{ var a = a; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own initializer")
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	_, err := resolveSrc(t, `return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'return' outside a function")
}

func TestResolveReturnValueInInitializer(t *testing.T) {
	_, err := resolveSrc(t, `class A { init() { return 1; } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return a value from an initializer")
}

func TestResolveSelfOutsideClass(t *testing.T) {
	_, err := resolveSrc(t, `def f() { print self; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'self' outside a class")
}

func TestResolveSuperOutsideClass(t *testing.T) {
	_, err := resolveSrc(t, `def f() { super.m(); }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'super' outside a class")
}

func TestResolveSuperWithoutSuperclass(t *testing.T) {
	_, err := resolveSrc(t, `class A { m() { super.m(); } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no superclass")
}

func TestResolveBreakContinueOutsideLoop(t *testing.T) {
	_, err := resolveSrc(t, `break;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'break' outside a loop")

	_, err = resolveSrc(t, `continue;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'continue' outside a loop")
}

func TestResolveRedeclarationInSameScope(t *testing.T) {
	_, err := resolveSrc(t, `{ var x = 1; var x = 2; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a variable named")
}

func TestResolveSelfInheritance(t *testing.T) {
	_, err := resolveSrc(t, `class A : A {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveForLoopContinueStillAllowed(t *testing.T) {
	_, err := resolveSrc(t, `for (var i = 0; i < 5; i = i + 1) { continue; }`)
	require.NoError(t, err)
}

func TestResolveMethodSelfDistance(t *testing.T) {
	// Inside a method with no superclass, self is declared in the single
	// synthetic scope wrapping the method, and the method's own parameter/
	// body scope sits inside it, so a reference at the top of the method
	// body finds self 1 scope out.
	stmts, err := parser.ParseSource([]byte(`class A { m() { print self; } }`))
	require.NoError(t, err)
	dist, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	assert.NotEmpty(t, dist)

	class := stmts[0].(*ast.ClassStmt)
	self := class.Methods[0].Body[0].(*ast.PrintStmt).Expr.(*ast.SelfExpr)
	d, ok := dist[self.Site]
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

package parser_test

import (
	"testing"

	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/parser"
	"github.com/ferronlang/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionPrecedence(t *testing.T) {
	stmts, err := parser.ParseSource([]byte("1 + 2 * 3;"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok)

	bin, ok := exprStmt.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, bin.Operator)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.STAR, right.Operator)
}

func TestParseAssignmentTargets(t *testing.T) {
	stmts, err := parser.ParseSource([]byte("var x = 1; x = 2; x.y = 3;"))
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assign, ok := stmts[1].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)

	set, ok := stmts[2].(*ast.ExprStmt).Expr.(*ast.SetExpr)
	require.True(t, ok)
	assert.Equal(t, "y", set.Name)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.ParseSource([]byte("1 = 2;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid assignment target")
}

func TestParseForLoopIsNotDesugared(t *testing.T) {
	stmts, err := parser.ParseSource([]byte("for (var i = 0; i < 5; i = i + 1) print i;"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	forStmt, ok := stmts[0].(*ast.ForStmt)
	require.True(t, ok, "for loop must parse to a dedicated ForStmt, not a desugared WhileStmt")
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Post)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, err := parser.ParseSource([]byte(`class B : A { say() { print "B"; } }`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	class, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "say", class.Methods[0].Name)
}

func TestParseArityLimit(t *testing.T) {
	src := "def f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('0'+i%10))
	}
	src += ") {}"

	_, err := parser.ParseSource([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "255 parameters")
}

func TestParseErrorRecoverySurfacesMultiple(t *testing.T) {
	_, err := parser.ParseSource([]byte("var ; var ;"))
	require.Error(t, err)
	// Both malformed declarations should be reported in a single run thanks
	// to synchronize() resuming at each statement boundary.
	errStr := err.Error()
	assert.Equal(t, 2, countLines(errStr))
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n + 1
}

func TestParseExpressionEntryPoint(t *testing.T) {
	expr, err := parser.ParseExpression([]byte("1 + 2"))
	require.NoError(t, err)
	_, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)

	_, err = parser.ParseExpression([]byte("var x = 1;"))
	assert.Error(t, err)
}

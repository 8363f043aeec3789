package interp_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/ferronlang/lox/lang/interp"
	"github.com/ferronlang/lox/lang/parser"
	"github.com/ferronlang/lox/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSrc(t *testing.T, src string) (string, string, error) {
	t.Helper()
	stmts, err := parser.ParseSource([]byte(src))
	require.NoError(t, err)
	dist, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	in := interp.New(&stdout, &stderr)
	runErr := in.Run(stmts, dist)
	return stdout.String(), stderr.String(), runErr
}

func TestEqualityReflexiveAndNaN(t *testing.T) {
	assert.True(t, interp.Equal(interp.Nil{}, interp.Nil{}))
	assert.False(t, interp.Equal(interp.Nil{}, interp.Number(0)))
	assert.True(t, interp.Equal(interp.Bool(true), interp.Bool(true)))
	assert.True(t, interp.Equal(interp.String("a"), interp.String("a")))
	assert.True(t, interp.Equal(interp.Number(3), interp.Number(3)))

	nan := interp.Number(math.NaN())
	assert.False(t, interp.Equal(nan, nan), "NaN must never equal itself")
}

func TestTruthiness(t *testing.T) {
	assert.False(t, interp.Truth(interp.Nil{}))
	assert.False(t, interp.Truth(interp.Bool(false)))
	assert.True(t, interp.Truth(interp.Number(0)))
	assert.True(t, interp.Truth(interp.String("")))
	assert.True(t, interp.Truth(interp.Bool(true)))
}

func TestNumberFormatting(t *testing.T) {
	assert.Equal(t, "3", interp.Number(3).String())
	assert.Equal(t, "3.5", interp.Number(3.5).String())
	assert.Equal(t, "0", interp.Number(0).String())
}

func TestDivisionByZeroDoesNotError(t *testing.T) {
	out, _, err := runSrc(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "Infinity\n-Infinity\nNaN\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, _, err := runSrc(t, `def f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 arguments but got 1")
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, _, err := runSrc(t, `print undefined_name;`)
	require.Error(t, err)
	var rerr *interp.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestStringConcatenationAndNumberAddition(t *testing.T) {
	out, _, err := runSrc(t, `print "a" + "b"; print 1 + 2;`)
	require.NoError(t, err)
	assert.Equal(t, "ab\n3\n", out)
}

func TestMixedPlusOperandsIsRuntimeError(t *testing.T) {
	_, _, err := runSrc(t, `print "a" + 1;`)
	require.Error(t, err)
}

func TestBlockScopeIsRestoredAfterReturnInsideBlock(t *testing.T) {
	// The return inside the nested block must still unwind cleanly back to
	// the call, and code after the call must see the outer environment
	// undisturbed.
	out, _, err := runSrc(t, `
		def f() { { return 1; } }
		var x = f();
		print x;
		var y = 2;
		print y;
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestClassFieldsAndMethods(t *testing.T) {
	out, _, err := runSrc(t, `
		class Point {
			init(x, y) { self.x = x; self.y = y; }
			sum() { return self.x + self.y; }
		}
		var p = Point(1, 2);
		print p.sum();
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, _, err := runSrc(t, `class A {} print A().missing;`)
	require.Error(t, err)
}

func TestInstancePrintFormat(t *testing.T) {
	out, _, err := runSrc(t, `class A {} print A(); print A;`)
	require.NoError(t, err)
	assert.Equal(t, "A instance\nA\n", out)
}

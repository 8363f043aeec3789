package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/ferronlang/lox/internal/config"
	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/interp"
	"github.com/ferronlang/lox/lang/parser"
	"github.com/ferronlang/lox/lang/resolver"
)

// RunFile reads the script at path, and scans, parses, resolves and
// executes it once.
func RunFile(ctx context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &exitError{code: 64, err: err}
	}

	if err := ctx.Err(); err != nil {
		return &exitError{code: 64, err: err}
	}

	stmts, dist, err := compileProgram(src)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &exitError{code: exitDataErr, err: err}
	}

	in := newInterpreter(stdio)
	if err := in.Run(stmts, dist); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &exitError{code: exitSoftware, err: err}
	}
	return nil
}

// compileProgram runs the parse -> resolve pipeline shared by RunFile and
// the REPL. A resolver error is reported the same way a parse error is:
// both are static errors that abort before any execution.
func compileProgram(src []byte) ([]ast.Stmt, resolver.Distances, error) {
	stmts, err := parser.ParseSource(src)
	if err != nil {
		return nil, nil, err
	}
	dist, err := resolver.Resolve(stmts)
	if err != nil {
		return nil, nil, err
	}
	return stmts, dist, nil
}

// newInterpreter builds an Interpreter wired to the process's stdio and,
// when LOX_CLOCK_EPOCH_SECONDS is set, a fixed clock() reading instead of
// the wall clock. A malformed config falls back to defaults: an interpreter
// for running a script is not the place to fail on an environment typo.
func newInterpreter(stdio mainer.Stdio) *interp.Interpreter {
	cfg, err := config.Load()
	if err != nil || cfg.ClockEpochSeconds == 0 {
		return interp.New(stdio.Stdout, stdio.Stderr)
	}
	return interp.NewWithClock(stdio.Stdout, stdio.Stderr, func() float64 {
		return cfg.ClockEpochSeconds
	})
}

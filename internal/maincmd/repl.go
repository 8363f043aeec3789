package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/ferronlang/lox/internal/config"
	"github.com/ferronlang/lox/lang/interp"
	"github.com/ferronlang/lox/lang/parser"
	"github.com/ferronlang/lox/lang/resolver"
)

// RunREPL reads one line at a time from stdio.Stdin, executing each as its
// own program against a persistent interpreter so variables and functions
// defined on one line are visible on the next. A line that parses as a
// single bare expression has its value printed, the way an interactive
// shell echoes results; anything else (statements, declarations) runs for
// its side effects only.
func RunREPL(ctx context.Context, stdio mainer.Stdio) error {
	in := newInterpreter(stdio)
	sc := bufio.NewScanner(stdio.Stdin)

	cfg, err := config.Load()
	if err != nil {
		cfg.Prompt = "> "
	}

	for {
		fmt.Fprint(stdio.Stdout, cfg.Prompt)
		if !sc.Scan() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		// A bare expression typed at top level is never inside a block or
		// function, so the resolver would never assign its sites a distance
		// anyway; evaluating directly against the interpreter's live globals
		// gives the same result without a wasted resolve pass.
		if expr, err := parser.ParseExpression(line); err == nil {
			v, evalErr := in.EvalExpr(expr)
			if evalErr != nil {
				fmt.Fprintln(stdio.Stderr, evalErr)
				continue
			}
			fmt.Fprintln(stdio.Stdout, v.String())
			continue
		}

		stmts, err := parser.ParseSource(line)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			continue
		}
		dist, err := resolver.Resolve(stmts)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			continue
		}
		if err := in.Run(stmts, dist); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			continue
		}
	}
}

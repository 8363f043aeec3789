// Package maincmd implements the command-line entry point: a REPL when
// invoked with no script argument, or a single-shot file execution when
// given one, per the language's external-interfaces contract.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<script>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<script>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the %[1]s scripting language.

With no <script> argument, starts a read-eval-print loop: each line is
scanned, parsed, resolved and executed, and the value of a bare expression
is printed. With a <script> path, the whole file is read and run once.

Exit codes: 0 success, 65 parse/resolve error, 70 runtime error, 64 usage
error.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd holds the parsed command line and dispatches to RunFile or RunREPL.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return errors.New("at most one script path may be given")
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	var err error
	if len(c.args) == 1 {
		err = RunFile(ctx, stdio, c.args[0])
	} else {
		err = RunREPL(ctx, stdio)
	}

	if err == nil {
		return mainer.Success
	}
	var xerr *exitError
	if errors.As(err, &xerr) {
		return xerr.code
	}
	return mainer.Failure
}

// exitError pairs a Go error with the host exit code it should produce,
// letting RunFile/RunREPL distinguish static (65) from runtime (70) errors
// the way the language's failure model requires.
type exitError struct {
	code mainer.ExitCode
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

const (
	exitUsage    mainer.ExitCode = 64 // command-line misuse
	exitDataErr  mainer.ExitCode = 65 // parse/resolve (static) error
	exitSoftware mainer.ExitCode = 70 // runtime error
)

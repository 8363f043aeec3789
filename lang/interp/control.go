package interp

// Control-flow in the evaluator is threaded through the ordinary `error`
// return of statement execution rather than host panics: break, continue
// and return are all non-local exits, and representing them as sentinel
// error values lets every statement form that owns a scope (block, loop,
// function body) restore its environment in a single deferred or trailing
// step regardless of which kind of exit fired.

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside loop" }

// returnSignal carries a function's result value up to the call that
// invoked it, unwinding through any number of nested blocks and loops.
type returnSignal struct{ Value Value }

func (returnSignal) Error() string { return "return outside function" }

var (
	errBreak    error = breakSignal{}
	errContinue error = continueSignal{}
)

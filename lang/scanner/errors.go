package scanner

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a single diagnostic produced by the scanner, parser or resolver,
// anchored to the source line it was reported from.
type Error struct {
	Line int
	Msg  string
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Msg)
}

// ErrorList is a list of Errors, sorted by reporting order. It implements
// the error interface so a whole batch of diagnostics can be returned and
// printed as a single error.
type ErrorList []Error

// Add appends an error at the given line to the list. It is suitable for use
// as the error handler callback passed to a Scanner.
func (el *ErrorList) Add(line int, msg string) {
	*el = append(*el, Error{Line: line, Msg: msg})
}

func (el *ErrorList) Len() int      { return len(*el) }
func (el *ErrorList) Swap(i, j int) { (*el)[i], (*el)[j] = (*el)[j], (*el)[i] }
func (el *ErrorList) Less(i, j int) bool {
	return (*el)[i].Line < (*el)[j].Line
}

// Sort orders the list by source line, stably preserving the relative order
// of errors reported on the same line.
func (el *ErrorList) Sort() { sort.Stable(el) }

// Err returns the ErrorList as an error, or nil if the list is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

func (el ErrorList) Error() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

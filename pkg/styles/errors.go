package styles

import (
	"errors"
	"fmt"
)

var (
	// ErrBadExpression signals a style variable whose expression cannot be
	// emitted into a stylesheet.
	ErrBadExpression = errors.New("styles: malformed variable expression")
)

// CompilationError reports a themed stylesheet that could not be compiled.
// Variable names the offending variable when the failure came from expression
// validation; engine failures leave it empty and carry the wrapped cause.
type CompilationError struct {
	Variable string
	Err      error
}

func (e *CompilationError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("styles: compile stylesheet: variable %q: %v", e.Variable, e.Err)
	}
	return fmt.Sprintf("styles: compile stylesheet: %v", e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

package dates

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDate signals a string value that does not match the
	// canonical YYYY-MM-DD layout.
	ErrMalformedDate = errors.New("dates: malformed date")
	// ErrUnsupportedType signals a value that is neither a string, a
	// time.Time, nor a Value.
	ErrUnsupportedType = errors.New("dates: unsupported value type")
)

// ValidationError reports a value that could not be normalised to the
// canonical date format. Field carries the attribute or parameter name the
// value was supplied for when known.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("dates: invalid value %q for %s: %v", e.Value, e.Field, e.Err)
	}
	return fmt.Sprintf("dates: invalid value %q: %v", e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}

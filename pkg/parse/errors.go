package parse

import "fmt"

// NormalizationError reports a matched line whose field failed type coercion
// or timestamp interpretation. It is scoped to exactly one line: in strict
// and quiet modes it stops the stream, in tolerant mode it is captured into
// the Meta envelope and the stream continues.
type NormalizationError struct {
	Field string // the record field that failed
	Line  string // the offending raw line
	Err   error
}

// Error implements the error interface.
func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalizing %s: %v", e.Field, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *NormalizationError) Unwrap() error {
	return e.Err
}

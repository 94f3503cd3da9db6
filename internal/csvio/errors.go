package csvio

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn  = errors.New("missing required column")
	ErrMissingAmount  = errors.New("amount is required")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// RecordError describes a malformed input record.
type RecordError struct {
	Line  int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field '%s': %v", e.Line, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

package parser

import (
	"errors"
	"fmt"
)

// ErrLabelNotFound indicates a required label is missing from a label table.
var ErrLabelNotFound = errors.New("label not found")

// ErrIndexOutOfRange indicates a label has fewer numeric values than requested.
var ErrIndexOutOfRange = errors.New("numeric value index out of range")

// LookupError reports a failed label table lookup.
type LookupError struct {
	Label string
	Index int
	Err   error
}

func (e *LookupError) Error() string {
	if errors.Is(e.Err, ErrIndexOutOfRange) {
		return fmt.Sprintf("label %q: numeric value index %d not available", e.Label, e.Index)
	}
	return fmt.Sprintf("label %q: %v", e.Label, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

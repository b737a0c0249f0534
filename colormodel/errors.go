package colormodel

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched (errors.Is) by every parsing failure.
var ErrInvalidFormat = errors.New("invalid color format")

// FormatError is returned when a string is neither a hex color nor rgb()/rgba().
// Err is the underlying failure when there is one (e.g. a strconv error).
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v %q", ErrInvalidFormat, e.Input)
	}
	return fmt.Sprintf("%v %q: %v", ErrInvalidFormat, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func formatError(input string, err error) error {
	return &FormatError{Input: input, Err: err}
}

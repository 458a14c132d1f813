package ruin

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameters indicates games or sets that are non-positive or not integers.
	ErrInvalidParameters = errors.New("ruin: invalid parameters (games and sets must be positive integers)")

	// ErrNoDataYet indicates a percentage was requested from an empty tally.
	ErrNoDataYet = errors.New("ruin: no data yet")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

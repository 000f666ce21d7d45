package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid simulation input")
	ErrUnknownRegime = errors.New("unknown regime")
	ErrInvalidRegime = errors.New("invalid regime constants")
	ErrInvalidBasis  = errors.New("invalid contribution basis")
)

// InvalidInputError reports a percentage outside the calculator bounds.
type InvalidInputError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

package estimator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRunIncomplete is returned by Run.Result before a full pass over
	// the run's points has finished.
	ErrRunIncomplete = errors.New("run incomplete")
)

// InvalidInputError reports a sample count that is not a positive integer.
type InvalidInputError struct {
	// Input is the raw text or value that was rejected.
	Input string
	// Reason says why it was rejected.
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(input, reason string) *InvalidInputError {
	return &InvalidInputError{Input: input, Reason: reason}
}

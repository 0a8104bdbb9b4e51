package core

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is a sentinel error for order lookups that match nothing
var ErrOrderNotFound = errors.New("order not found")

// ErrBoardNotFound is a sentinel error for Trello board name resolution misses
var ErrBoardNotFound = errors.New("board not found")

// ErrListNotFound is a sentinel error for Trello list name resolution misses
var ErrListNotFound = errors.New("list not found")

// StepError tags a workflow failure with the named step that produced it,
// so callers can surface which part of a multi-step sequence went wrong
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError wraps err with the step name that failed
func NewStepError(step string, err error) *StepError {
	return &StepError{Step: step, Err: err}
}

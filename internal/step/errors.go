package step

import "fmt"

// StepError wraps an error with the index of the step that caused it.
type StepError struct {
	Index   int
	Phase   Phase
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Phase, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

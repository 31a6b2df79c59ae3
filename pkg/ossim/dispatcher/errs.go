package dispatcher

import (
	"errors"
	"fmt"
)

// ErrTaskStepFailed is the sentinel every StepError wraps, for callers that
// only need errors.Is and don't care which process failed.
var ErrTaskStepFailed = errors.New("dispatcher: task step failed")

// StepError reports a Task.Step failure for one process. The offending
// process is forced into Terminated with no return value; the run loop
// continues with whatever else remains Ready.
type StepError struct {
	PID  int
	Name string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("dispatcher: task step failed: pid=%d name=%s: %v", e.PID, e.Name, e.Err)
}

// Unwrap exposes both the sentinel and the underlying task error, so
// callers can errors.Is(err, ErrTaskStepFailed) or errors.As into whatever
// concrete type the task returned.
func (e *StepError) Unwrap() []error { return []error{ErrTaskStepFailed, e.Err} }

package scheduler

import (
	"errors"
	"fmt"
)

// ErrUnknownScheduler means the requested policy name is not one of the
// eight supported identifiers.
var ErrUnknownScheduler = errors.New("scheduler: unknown policy")

func unknownSchedulerError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownScheduler, name)
}

package config

import "errors"

// ErrConfiguration means the run was asked to start with no programs, an
// invalid scheduler name, a non-positive quantum/time-slice, or a priority
// outside 1..10; the simulator must exit before the run loop starts.
var ErrConfiguration = errors.New("config: invalid configuration")

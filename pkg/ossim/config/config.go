// Package config validates the knobs a run is started with before the
// dispatcher's run loop begins, so a bad flag combination fails fast with
// a Configuration error instead of corrupting a half-started simulation.
package config

import (
	"fmt"

	"github.com/gophersched/ossim/pkg/ossim/scheduler"
)

// Run holds every value the CLI collects before a simulation starts.
type Run struct {
	Scheduler  string
	Quantum    int
	TimeSlice  int
	Programs   []string
	Priorities []int // i-th value applies to the i-th program; excess ignored, absent entries draw a random priority
	Seed       int64
	Visualize  bool
	JSONPath   string
	CSVPath    string
}

// Validate checks the run's configuration, returning an error wrapping
// ErrConfiguration on the first problem found.
func Validate(r Run) error {
	if len(r.Programs) == 0 {
		return fmt.Errorf("%w: at least one program is required", ErrConfiguration)
	}
	if r.TimeSlice <= 0 {
		return fmt.Errorf("%w: time-slice must be >= 1, got %d", ErrConfiguration, r.TimeSlice)
	}
	if r.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be >= 1, got %d", ErrConfiguration, r.Quantum)
	}
	if _, err := scheduler.New(r.Scheduler, r.Quantum); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	for _, p := range r.Priorities {
		if p < 1 || p > 10 {
			return fmt.Errorf("%w: priority %d out of range 1..10", ErrConfiguration, p)
		}
	}
	return nil
}

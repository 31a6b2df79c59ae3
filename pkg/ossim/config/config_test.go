package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophersched/ossim/pkg/ossim/scheduler"
)

func validRun() Run {
	return Run{
		Scheduler: scheduler.FCFS,
		Quantum:   4,
		TimeSlice: 1,
		Programs:  []string{"hello"},
	}
}

func TestValidate_AcceptsGoodConfig(t *testing.T) {
	assert.NoError(t, Validate(validRun()))
}

func TestValidate_RejectsUnknownScheduler(t *testing.T) {
	r := validRun()
	r.Scheduler = "not-a-policy"
	require.ErrorIs(t, Validate(r), ErrConfiguration)
}

func TestValidate_RejectsNonPositiveQuantum(t *testing.T) {
	r := validRun()
	r.Quantum = 0
	require.ErrorIs(t, Validate(r), ErrConfiguration)
}

func TestValidate_RejectsNonPositiveTimeSlice(t *testing.T) {
	r := validRun()
	r.TimeSlice = -1
	require.ErrorIs(t, Validate(r), ErrConfiguration)
}

func TestValidate_RejectsNoPrograms(t *testing.T) {
	r := validRun()
	r.Programs = nil
	require.ErrorIs(t, Validate(r), ErrConfiguration)
}

func TestValidate_AcceptsFewerPrioritiesThanPrograms(t *testing.T) {
	r := validRun()
	r.Programs = []string{"hello", "short_task", "cpu_bound"}
	r.Priorities = []int{5}
	assert.NoError(t, Validate(r), "absent entries draw a random priority at registration")
}

func TestValidate_AcceptsMorePrioritiesThanPrograms(t *testing.T) {
	r := validRun()
	r.Programs = []string{"hello"}
	r.Priorities = []int{5, 3, 1}
	assert.NoError(t, Validate(r), "excess priorities are ignored")
}

func TestValidate_RejectsPriorityOutOfRange(t *testing.T) {
	r := validRun()
	r.Priorities = []int{11}
	require.ErrorIs(t, Validate(r), ErrConfiguration)
}

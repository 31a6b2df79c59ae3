package dispatcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophersched/ossim/pkg/ossim/clock"
	"github.com/gophersched/ossim/pkg/ossim/process"
	"github.com/gophersched/ossim/pkg/ossim/scheduler"
	"github.com/gophersched/ossim/pkg/ossim/task"
)

// erroringTask fails its first Step call, exercising the stepTask error
// path without depending on any built-in program's internals.
type erroringTask struct{}

var errBoom = errors.New("boom")

func (erroringTask) Step() (task.Event, error) { return task.Event{}, errBoom }

// forcedBurst pins every sampled burst to n, the scenario convention for
// pinning the random burst model so a dispatch trace is fully determined.
func forcedBurst(n int) Option {
	return WithBurstSampler(func(string, *clock.RNG) int { return n })
}

func newTestDispatcher(t *testing.T, policyName string, quantum, timeSlice int, opts ...Option) *Dispatcher {
	t.Helper()
	pol, err := scheduler.New(policyName, quantum)
	require.NoError(t, err)
	return New(pol, timeSlice, clock.NewRNG(1), nil, opts...)
}

func TestDispatcher_S1_SingleProgramHello(t *testing.T) {
	d := newTestDispatcher(t, scheduler.FCFS, 4, 1, forcedBurst(1))
	registry := task.NewRegistry()
	tk, err := registry.New("hello")
	require.NoError(t, err)
	d.Register("hello", tk, 5, 0)

	require.NoError(t, d.Run(context.Background()))

	require.Len(t, d.Terminated(), 1)
	final := d.Terminated()[0]
	assert.Equal(t, "Final result: 45", final.ReturnValue)
	assert.Equal(t, 11, d.Clock().Now())
	assert.Equal(t, 0, d.ContextSwitches())
}

func TestDispatcher_S2_TwoProgramsFCFS(t *testing.T) {
	d := newTestDispatcher(t, scheduler.FCFS, 4, 1, forcedBurst(1))
	registry := task.NewRegistry()

	helloTask, err := registry.New("hello")
	require.NoError(t, err)
	shortTask, err := registry.New("short_task")
	require.NoError(t, err)

	d.Register("hello", helloTask, 5, 0)
	d.Register("short_task", shortTask, 5, 0)

	require.NoError(t, d.Run(context.Background()))

	require.Len(t, d.Terminated(), 2)
	assert.Equal(t, "hello", d.Terminated()[0].Name)
	assert.Equal(t, "short_task", d.Terminated()[1].Name)
	assert.Equal(t, 1, d.ContextSwitches())
}

func TestDispatcher_RoundRobinTerminatedListHoldsOnlyTerminated(t *testing.T) {
	d := newTestDispatcher(t, scheduler.RoundRobin, 2, 1)
	registry := task.NewRegistry()
	for i, name := range []string{"short_task", "io_bound", "hello"} {
		tk, err := registry.New(name)
		require.NoError(t, err)
		d.Register(name, tk, process.Unset, i)
	}

	require.NoError(t, d.Run(context.Background()))

	for _, proc := range d.Terminated() {
		assert.Equal(t, process.Terminated, proc.State)
	}
}

func TestDispatcher_InvariantRunHistorySumsToFinalClock(t *testing.T) {
	d := newTestDispatcher(t, scheduler.FCFS, 4, 1)
	registry := task.NewRegistry()
	tk, err := registry.New("short_task")
	require.NoError(t, err)
	d.Register("short_task", tk, 5, 0)

	require.NoError(t, d.Run(context.Background()))

	total := 0
	for _, proc := range d.Terminated() {
		for _, seg := range proc.RunHistory {
			total += seg.End - seg.Start
		}
	}
	assert.Equal(t, d.Clock().Now(), total)
}

func TestDispatcher_InvariantTurnaroundEqualsWaitingPlusRunHistory(t *testing.T) {
	d := newTestDispatcher(t, scheduler.RoundRobin, 2, 1)
	registry := task.NewRegistry()
	for _, name := range []string{"short_task", "hello"} {
		tk, err := registry.New(name)
		require.NoError(t, err)
		d.Register(name, tk, 5, d.Clock().Now())
	}

	require.NoError(t, d.Run(context.Background()))

	for _, proc := range d.Terminated() {
		run := 0
		for _, seg := range proc.RunHistory {
			run += seg.End - seg.Start
		}
		assert.Equal(t, proc.TurnaroundTime, proc.WaitingTime+run, "process %s", proc.Name)
	}
}

func TestDispatcher_CancelledContextForcesShutdown(t *testing.T) {
	d := newTestDispatcher(t, scheduler.FCFS, 4, 1)
	registry := task.NewRegistry()
	tk, err := registry.New("cpu_bound")
	require.NoError(t, err)
	d.Register("cpu_bound", tk, 5, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = d.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, d.Terminated(), 1)
	assert.Equal(t, process.Terminated, d.Terminated()[0].State)
}

func TestDispatcher_TaskStepError_ForcesTerminatedWithNilReturn(t *testing.T) {
	d := newTestDispatcher(t, scheduler.FCFS, 4, 1, forcedBurst(1))
	proc := d.Register("broken", erroringTask{}, 5, 0)

	require.NoError(t, d.Run(context.Background()))

	require.Len(t, d.Terminated(), 1)
	assert.Equal(t, process.Terminated, proc.State)
	assert.Nil(t, proc.ReturnValue)

	require.Len(t, d.StepErrors(), 1)
	stepErr := d.StepErrors()[0]
	assert.Equal(t, proc.PID, stepErr.PID)
	assert.Equal(t, "broken", stepErr.Name)
	assert.ErrorIs(t, stepErr, ErrTaskStepFailed)
	assert.ErrorIs(t, stepErr, errBoom)
}

func TestDispatcher_RoundRobinQuantumBound(t *testing.T) {
	d := newTestDispatcher(t, scheduler.RoundRobin, 2, 1)
	registry := task.NewRegistry()
	tk, err := registry.New("cpu_bound")
	require.NoError(t, err)
	proc := d.Register("cpu_bound", tk, 5, 0)

	require.NoError(t, d.Run(context.Background()))

	for _, seg := range proc.RunHistory {
		assert.LessOrEqual(t, seg.End-seg.Start, 2, "no run-history segment may exceed the configured quantum")
	}
}

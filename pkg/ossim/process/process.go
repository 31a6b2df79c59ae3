// Package process defines the process control block simulated by ossim: a
// plain record of identity, scheduling attributes, and accounting counters,
// mutated only by the dispatcher and the active scheduling policy.
package process

import (
	"fmt"
	"time"

	"github.com/gophersched/ossim/pkg/ossim/task"
)

// State is the lifecycle state of a simulated process.
type State int

const (
	// Ready means the process is runnable and waiting for the CPU.
	Ready State = iota
	// Running means the process currently holds the CPU.
	Running
	// Waiting is reserved for future I/O-blocking support; this core never
	// enters it.
	Waiting
	// Terminated means the process has returned from its task and is done.
	Terminated
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Waiting:
		return "waiting"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Segment is a closed-open interval [Start, End) of CPU occupancy.
type Segment struct {
	Start int
	End   int
}

// Unset marks a clock-valued field (StartTime, CurrentRunStart, ...) that
// has not yet been assigned.
const Unset = -1

// Process is the process control block: one per loaded task.
type Process struct {
	PID  int
	Name string
	Task task.Task

	State    State
	Priority int // 1..10, lower number = higher priority

	ArrivalTime int
	StartTime   int // Unset until first dispatch
	EndTime     int // Unset until termination

	EstimatedBurstTime int // 3..10, fixed for the process's lifetime
	CurrentBurst       int // remaining work units of the in-progress burst
	CurrentSlice       int // slice units consumed in the current dispatch interval

	QuantumRemaining int // Round-Robin / MLFQ bookkeeping
	Level            int // MLFQ queue level, 0..2

	Deadline    int // EDF bookkeeping
	HasDeadline bool

	WaitingTime    int
	TurnaroundTime int
	ExecutedSteps  int
	ReturnValue    any

	CPUTime time.Duration // accumulated wall-clock time spent inside Task.Step

	RunHistory []Segment

	// CurrentRunStart is the clock value at which the in-progress run
	// segment began, or Unset if the process is not currently mid-segment.
	CurrentRunStart int
}

// New constructs a Process registered at the given arrival clock. priority
// and estimatedBurstTime must already be resolved by the caller, so that
// all random draws stay centralized in the simulator's seeded PRNG.
func New(pid int, name string, t task.Task, priority, estimatedBurstTime, arrivalTime int) *Process {
	return &Process{
		PID:                pid,
		Name:               name,
		Task:               t,
		State:              Ready,
		Priority:           priority,
		ArrivalTime:        arrivalTime,
		StartTime:          Unset,
		EndTime:            Unset,
		EstimatedBurstTime: estimatedBurstTime,
		CurrentBurst:       0,
		CurrentRunStart:    Unset,
	}
}

// RemainingTime is the "remaining time" notion SRTF ranks by: the
// in-progress burst if one is underway, else the process's fixed estimate.
func (p *Process) RemainingTime() int {
	if p.CurrentBurst > 0 {
		return p.CurrentBurst
	}
	return p.EstimatedBurstTime
}

func (p *Process) String() string {
	return fmt.Sprintf("Process(pid=%d, name=%s, state=%s, priority=%d)", p.PID, p.Name, p.State, p.Priority)
}

// Package scheduler implements the eight named scheduling policies behind
// one interface, each exposing a pick_next decision plus the arrival,
// preemption-check, and requeue hooks the dispatcher drives it with.
package scheduler

import "github.com/gophersched/ossim/pkg/ossim/process"

// Names of the eight supported policies, as accepted by the -s/--scheduler
// flag.
const (
	FCFS       = "fcfs"
	SJF        = "sjf"
	Priority   = "priority"
	RoundRobin = "round_robin"
	SRTF       = "srtf"
	MLFQ       = "mlfq"
	EDF        = "edf"
	FairShare  = "fair"
)

// Policy is the uniform contract the dispatcher drives every scheduling
// algorithm through.
type Policy interface {
	// Name is the policy's CLI identifier, used in trace lines and the
	// Gantt chart title.
	Name() string

	// OnArrival is called exactly once, when a process is registered, so
	// the policy can seed whatever bookkeeping it needs (deadlines, queue
	// membership, starting level).
	OnArrival(pid int, procs map[int]*process.Process)

	// PickNext returns the best ready candidate, independent of whether a
	// process is currently running. runningPid lets SJF keep the
	// last-running pid while it is Ready; the other policies ignore
	// runningPid and hasRunning and just rank the Ready set.
	PickNext(procs map[int]*process.Process, runningPid int, hasRunning bool) (pid int, ok bool)

	// ShouldPreempt reports whether some Ready process now outranks the
	// currently running one, for preemptive policies. Non-preemptive
	// policies always return false: once selected, a process keeps the CPU
	// until it yields or terminates.
	ShouldPreempt(runningPid int, procs map[int]*process.Process) bool

	// QuantumExpired reports whether proc has exhausted its quantum and
	// must be requeued at the back of the (possibly demoted) structure.
	// Policies without a quantum concept always return false.
	QuantumExpired(proc *process.Process) bool

	// Requeue is called when a process yields back to Ready without
	// terminating, so the policy can decide where it re-enters its
	// structure: quantumExpired distinguishes an ordinary burst boundary
	// from a Round-Robin/MLFQ quantum exhaustion.
	Requeue(pid int, procs map[int]*process.Process, quantumExpired bool)

	// OnDispatch is called when pid transitions from Ready to Running, so
	// queue-backed policies (FCFS, Round-Robin, MLFQ) can pop it out of
	// whatever internal structure PickNext read it from. Rank-based
	// policies that scan process state directly have nothing to do here.
	OnDispatch(pid int, procs map[int]*process.Process)

	// InitialQuantum is the QuantumRemaining a freshly arrived process
	// should start with; zero for policies with no quantum concept.
	InitialQuantum() int
}

// New constructs the named policy. quantum configures Round-Robin's slice
// length; it is ignored by every other policy.
func New(name string, quantum int) (Policy, error) {
	switch name {
	case FCFS:
		return newFCFS(), nil
	case SJF:
		return newSJF(), nil
	case Priority:
		return newPriority(), nil
	case RoundRobin:
		return newRoundRobin(quantum), nil
	case SRTF:
		return newSRTF(), nil
	case MLFQ:
		return newMLFQ(), nil
	case EDF:
		return newEDF(), nil
	case FairShare:
		return newFairShare(), nil
	default:
		return nil, unknownSchedulerError(name)
	}
}

// base supplies the shared defaults (never preempt, no quantum, no-op
// requeue and dispatch hooks) so each concrete policy only overrides what
// makes it different. It has no OnArrival; every policy defines its own.
type base struct{}

func (base) ShouldPreempt(int, map[int]*process.Process) bool { return false }
func (base) QuantumExpired(*process.Process) bool             { return false }
func (base) Requeue(int, map[int]*process.Process, bool)      {}
func (base) OnDispatch(int, map[int]*process.Process)         {}
func (base) InitialQuantum() int                              { return 0 }

// readyPids returns the pids of every process currently in the Ready
// state, in map-iteration order; callers that need a stable order sort it.
func readyPids(procs map[int]*process.Process) []int {
	out := make([]int, 0, len(procs))
	for pid, p := range procs {
		if p.State == process.Ready {
			out = append(out, pid)
		}
	}
	return out
}

// Package dispatcher drives the single-CPU run loop: one iteration asks
// the active scheduling policy for the next pid, charges waiting time to
// everyone else, advances the chosen process by one time slice, steps its
// task when its burst is used up, and requeues it when its quantum runs out.
package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gophersched/ossim/pkg/ossim/clock"
	"github.com/gophersched/ossim/pkg/ossim/process"
	"github.com/gophersched/ossim/pkg/ossim/scheduler"
	"github.com/gophersched/ossim/pkg/ossim/task"
)

// statusInterval is how often, in clock ticks, a periodic status summary is
// emitted.
const statusInterval = 20

// Dispatcher owns the clock, the process table, and the active policy. It
// is the sole mutator of both, matching the core's single-threaded,
// strictly sequential execution model.
type Dispatcher struct {
	policy    scheduler.Policy
	clock     *clock.Clock
	rng       *clock.RNG
	timeSlice int
	logger    *slog.Logger

	procs      map[int]*process.Process
	order      []int
	terminated []*process.Process
	stepErrors []*StepError

	nextPID         int
	lastRunningPid  int
	contextSwitches int

	sampleBurst func(name string, rng *clock.RNG) int
}

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithBurstSampler overrides the name-keyed burst distribution with fn. It
// exists so tests can pin bursts to a fixed value, matching the
// specification's scenario convention of overriding the random burst model
// for determinism without touching the production sampling table.
func WithBurstSampler(fn func(name string, rng *clock.RNG) int) Option {
	return func(d *Dispatcher) { d.sampleBurst = fn }
}

// New constructs a Dispatcher bound to policy, advancing the clock by
// timeSlice ticks per dispatch and drawing bursts/priorities from rng.
func New(policy scheduler.Policy, timeSlice int, rng *clock.RNG, logger *slog.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		policy:         policy,
		clock:          clock.New(),
		rng:            rng,
		timeSlice:      timeSlice,
		logger:         logger,
		procs:          make(map[int]*process.Process),
		lastRunningPid: process.Unset,
		sampleBurst:    clock.SampleBurst,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register loads one program into the simulation, recording arrivalTime as
// its arrival clock. The process is Ready, and accrues waiting time, from
// the moment Register is called; turnaround is measured from arrivalTime.
// priority of process.Unset means "draw uniformly from 1..10", per the
// process record's creation contract.
func (d *Dispatcher) Register(name string, t task.Task, priority, arrivalTime int) *process.Process {
	if priority == process.Unset {
		priority = d.rng.IntRange(1, 10)
	}
	estimatedBurst := d.rng.IntRange(3, 10)

	d.nextPID++
	pid := d.nextPID
	proc := process.New(pid, name, t, priority, estimatedBurst, arrivalTime)
	proc.QuantumRemaining = d.policy.InitialQuantum()

	d.procs[pid] = proc
	d.order = append(d.order, pid)
	d.policy.OnArrival(pid, d.procs)
	return proc
}

// Terminated returns every process that has run to completion, in the
// order each terminated.
func (d *Dispatcher) Terminated() []*process.Process { return d.terminated }

// ContextSwitches returns the total number of dispatch boundaries where the
// chosen pid differed from the previously running one.
func (d *Dispatcher) ContextSwitches() int { return d.contextSwitches }

// StepErrors returns every Task.Step failure observed during the run, in
// the order each occurred. A step failure forces its process to
// Terminated; it never aborts the run loop itself.
func (d *Dispatcher) StepErrors() []*StepError { return d.stepErrors }

// Clock returns the simulated clock driving the loop.
func (d *Dispatcher) Clock() *clock.Clock { return d.clock }

// Run executes the dispatch loop until no process remains Ready or
// Running, or ctx is cancelled. On cancellation it forces every
// not-yet-terminated process into Terminated on a best-effort basis (their
// accounting fields as last measured) and returns ctx.Err().
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			d.forceShutdown()
			return err
		}

		selected, ok := d.selectNext()
		if !ok {
			return nil
		}

		if d.lastRunningPid != process.Unset && selected != d.lastRunningPid {
			d.contextSwitches++
			d.trace("context switch %d -> %d", d.lastRunningPid, selected)
		}

		for pid, proc := range d.procs {
			if pid != selected && proc.State == process.Ready {
				proc.WaitingTime += d.timeSlice
			}
		}

		proc := d.procs[selected]
		d.dispatchFresh(proc)

		proc.CurrentSlice += d.timeSlice
		proc.CurrentBurst -= d.timeSlice
		proc.QuantumRemaining -= d.timeSlice

		burstDone := proc.CurrentBurst <= 0
		quantumExpired := d.policy.QuantumExpired(proc)

		if !burstDone && !quantumExpired {
			d.clock.Advance(d.timeSlice)
			d.lastRunningPid = selected
			d.maybeEmitStatus()
			continue
		}

		d.closeSegment(proc)

		terminated := false
		if burstDone {
			terminated = d.stepTask(proc)
		} else {
			proc.State = process.Ready
		}

		if terminated {
			d.finalizeTermination(proc)
		} else {
			d.policy.Requeue(selected, d.procs, quantumExpired)
			d.lastRunningPid = selected
		}

		d.clock.Advance(d.timeSlice)
		d.maybeEmitStatus()
	}
}

// selectNext keeps the currently running process unless the policy says it
// should be preempted, otherwise consults pick_next over the Ready set.
// This is the single place that reconciles "pick_next every iteration"
// with every policy's "a running process keeps running" default: a
// non-preemptive policy's ShouldPreempt always returns false, so the
// running process is kept without ever being re-ranked against the Ready
// set it briefly looks like it belongs to.
func (d *Dispatcher) selectNext() (int, bool) {
	running, hasRunning := d.procs[d.lastRunningPid]
	hasRunning = hasRunning && running.State == process.Running

	if hasRunning && !d.policy.ShouldPreempt(d.lastRunningPid, d.procs) {
		return d.lastRunningPid, true
	}

	if hasRunning {
		running.State = process.Ready
		// The process was preempted, not exhausted: queue-backed policies
		// (MLFQ) must see it back in its structure at the front, the same
		// "earned position" rule a non-quantum-expired yield gets. Scan-based
		// preemptive policies (Priority, SRTF, EDF) have nothing to do here;
		// Requeue is a no-op for them.
		d.policy.Requeue(d.lastRunningPid, d.procs, false)
	}

	return d.policy.PickNext(d.procs, d.lastRunningPid, hasRunning)
}

func (d *Dispatcher) dispatchFresh(proc *process.Process) {
	if proc.State == process.Running {
		return
	}
	if proc.StartTime == process.Unset {
		proc.StartTime = d.clock.Now()
	}
	proc.CurrentRunStart = d.clock.Now()
	proc.State = process.Running
	if proc.CurrentBurst <= 0 {
		proc.CurrentBurst = d.sampleBurst(proc.Name, d.rng)
	}
	d.policy.OnDispatch(proc.PID, d.procs)
	d.trace("dispatch pid=%d name=%s", proc.PID, proc.Name)
}

func (d *Dispatcher) closeSegment(proc *process.Process) {
	end := d.clock.Now() + d.timeSlice
	proc.RunHistory = append(proc.RunHistory, process.Segment{Start: proc.CurrentRunStart, End: end})
	proc.CurrentRunStart = process.Unset
}

// stepTask advances proc's task by one step and applies the resulting
// event, reporting whether the process terminated.
func (d *Dispatcher) stepTask(proc *process.Process) bool {
	started := time.Now()
	ev, err := proc.Task.Step()
	proc.CPUTime += time.Since(started)

	if err != nil {
		stepErr := &StepError{PID: proc.PID, Name: proc.Name, Err: err}
		d.logger.Error("task step failed", "pid", proc.PID, "name", proc.Name, "err", err)
		d.stepErrors = append(d.stepErrors, stepErr)
		proc.State = process.Terminated
		proc.EndTime = d.clock.Now() + d.timeSlice
		proc.TurnaroundTime = proc.EndTime - proc.ArrivalTime
		proc.ReturnValue = nil
		return true
	}

	switch ev.Kind {
	case task.Done:
		proc.State = process.Terminated
		proc.EndTime = d.clock.Now() + d.timeSlice
		proc.TurnaroundTime = proc.EndTime - proc.ArrivalTime
		proc.ReturnValue = ev.Value
		d.trace("pid=%d name=%s terminated return=%v", proc.PID, proc.Name, ev.Value)
		return true
	default:
		proc.ExecutedSteps++
		proc.State = process.Ready
		proc.CurrentBurst = 0
		d.trace("pid=%d name=%s yield=%v", proc.PID, proc.Name, ev.Value)
		return false
	}
}

// finalizeTermination moves proc to the terminated list. lastRunningPid is
// left pointing at it, so the next dispatch of a different pid counts as a
// context switch; selectNext no longer finds it in the process table.
func (d *Dispatcher) finalizeTermination(proc *process.Process) {
	delete(d.procs, proc.PID)
	d.terminated = append(d.terminated, proc)
}

func (d *Dispatcher) forceShutdown() {
	for _, proc := range d.procs {
		if proc.State == process.Terminated {
			continue
		}
		if proc.CurrentRunStart != process.Unset {
			d.closeSegment(proc)
		}
		proc.State = process.Terminated
		if proc.EndTime == process.Unset {
			proc.EndTime = d.clock.Now()
		}
		proc.TurnaroundTime = proc.EndTime - proc.ArrivalTime
		d.terminated = append(d.terminated, proc)
	}
	d.procs = make(map[int]*process.Process)
}

func (d *Dispatcher) maybeEmitStatus() {
	now := d.clock.Now()
	if now == 0 || now%statusInterval != 0 {
		return
	}
	ready := 0
	for _, proc := range d.procs {
		if proc.State == process.Ready {
			ready++
		}
	}
	d.trace("status ready=%d terminated=%d switches=%d", ready, len(d.terminated), d.contextSwitches)
}

func (d *Dispatcher) trace(format string, args ...any) {
	fmt.Printf("[Clock:%d] "+format+"\n", append([]any{d.clock.Now()}, args...)...)
}

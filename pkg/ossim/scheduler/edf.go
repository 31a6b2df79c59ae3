package scheduler

import "github.com/gophersched/ossim/pkg/ossim/process"

// deadlineSlackPerPriorityStep scales the arrival-relative deadline granted
// to each process: a process with Priority p is due by arrival + p*5.
const deadlineSlackPerPriorityStep = 5

// edfPolicy is Earliest-Deadline-First: every process is assigned an
// absolute deadline the moment it arrives, derived from its priority, and
// the Ready set is always ranked by that deadline.
type edfPolicy struct{ base }

func newEDF() *edfPolicy { return &edfPolicy{} }

func (p *edfPolicy) Name() string { return EDF }

func (p *edfPolicy) OnArrival(pid int, procs map[int]*process.Process) {
	proc, ok := procs[pid]
	if !ok {
		return
	}
	proc.Deadline = proc.ArrivalTime + proc.Priority*deadlineSlackPerPriorityStep
	proc.HasDeadline = true
}

func (p *edfPolicy) PickNext(procs map[int]*process.Process, _ int, _ bool) (int, bool) {
	best, found := -1, false
	for _, pid := range readyPids(procs) {
		proc := procs[pid]
		if !found || proc.Deadline < procs[best].Deadline ||
			(proc.Deadline == procs[best].Deadline && pid < best) {
			best, found = pid, true
		}
	}
	return best, found
}

func (p *edfPolicy) ShouldPreempt(runningPid int, procs map[int]*process.Process) bool {
	running, ok := procs[runningPid]
	if !ok {
		return false
	}
	for _, pid := range readyPids(procs) {
		if procs[pid].Deadline < running.Deadline {
			return true
		}
	}
	return false
}

package scheduler

import "github.com/gophersched/ossim/pkg/ossim/process"

// priorityPolicy is preemptive priority scheduling: lower Priority value
// wins, ties broken by smaller pid. A running process is preempted the
// instant a Ready process strictly outranks it.
type priorityPolicy struct{ base }

func newPriority() *priorityPolicy { return &priorityPolicy{} }

func (p *priorityPolicy) Name() string { return Priority }

func (p *priorityPolicy) OnArrival(int, map[int]*process.Process) {}

func (p *priorityPolicy) PickNext(procs map[int]*process.Process, _ int, _ bool) (int, bool) {
	best, found := -1, false
	for _, pid := range readyPids(procs) {
		proc := procs[pid]
		if !found || proc.Priority < procs[best].Priority ||
			(proc.Priority == procs[best].Priority && pid < best) {
			best, found = pid, true
		}
	}
	return best, found
}

func (p *priorityPolicy) ShouldPreempt(runningPid int, procs map[int]*process.Process) bool {
	running, ok := procs[runningPid]
	if !ok {
		return false
	}
	for _, pid := range readyPids(procs) {
		if procs[pid].Priority < running.Priority {
			return true
		}
	}
	return false
}

package scheduler

import "github.com/gophersched/ossim/pkg/ossim/process"

// srtfPolicy is preemptive Shortest-Remaining-Time-First: ranks the Ready
// set by RemainingTime, and preempts the running process only when a Ready
// process has strictly less remaining time (ties favor continuity).
type srtfPolicy struct{ base }

func newSRTF() *srtfPolicy { return &srtfPolicy{} }

func (p *srtfPolicy) Name() string { return SRTF }

func (p *srtfPolicy) OnArrival(int, map[int]*process.Process) {}

func (p *srtfPolicy) PickNext(procs map[int]*process.Process, _ int, _ bool) (int, bool) {
	best, found := -1, false
	for _, pid := range readyPids(procs) {
		proc := procs[pid]
		if !found || proc.RemainingTime() < procs[best].RemainingTime() ||
			(proc.RemainingTime() == procs[best].RemainingTime() && pid < best) {
			best, found = pid, true
		}
	}
	return best, found
}

func (p *srtfPolicy) ShouldPreempt(runningPid int, procs map[int]*process.Process) bool {
	running, ok := procs[runningPid]
	if !ok {
		return false
	}
	for _, pid := range readyPids(procs) {
		if procs[pid].RemainingTime() < running.RemainingTime() {
			return true
		}
	}
	return false
}

package scheduler

import "github.com/gophersched/ossim/pkg/ossim/process"

// sjfPolicy is Shortest-Job-First: non-preemptive, ranks the Ready set by
// EstimatedBurstTime, breaking ties by the smaller pid. A last-running pid
// that yielded back to Ready is kept instead of being re-ranked. It needs no
// queue of its own: default OnArrival/Requeue are no-ops, since the Ready
// set is simply every process whose State is Ready.
type sjfPolicy struct{ base }

func newSJF() *sjfPolicy { return &sjfPolicy{} }

func (p *sjfPolicy) Name() string { return SJF }

func (p *sjfPolicy) OnArrival(int, map[int]*process.Process) {}

func (p *sjfPolicy) PickNext(procs map[int]*process.Process, runningPid int, _ bool) (int, bool) {
	if last, ok := procs[runningPid]; ok && last.State == process.Ready {
		return runningPid, true
	}
	best, found := -1, false
	for _, pid := range readyPids(procs) {
		proc := procs[pid]
		if !found || proc.EstimatedBurstTime < procs[best].EstimatedBurstTime ||
			(proc.EstimatedBurstTime == procs[best].EstimatedBurstTime && pid < best) {
			best, found = pid, true
		}
	}
	return best, found
}

package scheduler

import (
	"github.com/gophersched/ossim/pkg/ossim/process"
	"github.com/gophersched/ossim/pkg/ossim/readyqueue"
)

// fcfsPolicy is First-Come, First-Served: non-preemptive, ordered strictly
// by arrival. pick_next returns the head of the ready structure.
type fcfsPolicy struct {
	base
	ready *readyqueue.Queue
}

func newFCFS() *fcfsPolicy { return &fcfsPolicy{ready: readyqueue.New()} }

func (p *fcfsPolicy) Name() string { return FCFS }

func (p *fcfsPolicy) OnArrival(pid int, _ map[int]*process.Process) {
	p.ready.PushBack(pid)
}

func (p *fcfsPolicy) PickNext(_ map[int]*process.Process, _ int, _ bool) (int, bool) {
	return p.ready.Front()
}

// Requeue puts a yielding (not terminated) process back at the front: it
// has not "arrived" again, it is simply continuing between bursts, and
// must not lose its place to a process that arrived later.
func (p *fcfsPolicy) Requeue(pid int, _ map[int]*process.Process, _ bool) {
	if !p.ready.Contains(pid) {
		p.ready.PushFront(pid)
	}
}

// OnDispatch pops pid out of the ready structure now that it is Running.
func (p *fcfsPolicy) OnDispatch(pid int, _ map[int]*process.Process) {
	p.ready.Remove(pid)
}

package scheduler

import (
	"github.com/gophersched/ossim/pkg/ossim/process"
	"github.com/gophersched/ossim/pkg/ossim/readyqueue"
)

// mlfqLevels is the quantum granted at each feedback level: level 0 is the
// most responsive and shortest, level 2 the most generous.
var mlfqLevels = [3]int{1, 2, 4}

// mlfqPolicy is three-level Multi-Level Feedback Queue scheduling. Every
// process arrives at level 0; a process that exhausts its quantum is
// demoted one level (capped at the lowest) and sent to the tail of its new
// level with that level's quantum. A process that yields mid-quantum keeps
// its level and returns to the front of the same queue.
type mlfqPolicy struct {
	base
	levels [3]*readyqueue.Queue
}

func newMLFQ() *mlfqPolicy {
	return &mlfqPolicy{levels: [3]*readyqueue.Queue{readyqueue.New(), readyqueue.New(), readyqueue.New()}}
}

func (p *mlfqPolicy) Name() string { return MLFQ }

func (p *mlfqPolicy) OnArrival(pid int, procs map[int]*process.Process) {
	if proc, ok := procs[pid]; ok {
		proc.Level = 0
		proc.QuantumRemaining = mlfqLevels[0]
	}
	p.levels[0].PushBack(pid)
}

func (p *mlfqPolicy) PickNext(_ map[int]*process.Process, _ int, _ bool) (int, bool) {
	for _, q := range p.levels {
		if pid, ok := q.Front(); ok {
			return pid, true
		}
	}
	return -1, false
}

func (p *mlfqPolicy) QuantumExpired(proc *process.Process) bool {
	return proc.QuantumRemaining <= 0
}

// ShouldPreempt reports whether some process at a strictly better (lower)
// level than the running one is ready: a level-0 arrival always cuts in
// ahead of a running level-1 or level-2 process, and likewise level-1 ahead
// of level-2.
func (p *mlfqPolicy) ShouldPreempt(runningPid int, procs map[int]*process.Process) bool {
	running, ok := procs[runningPid]
	if !ok {
		return false
	}
	for level := 0; level < running.Level; level++ {
		if _, ok := p.levels[level].Front(); ok {
			return true
		}
	}
	return false
}

// Requeue demotes pid one level on quantum exhaustion, resetting its
// quantum and sending it to the tail of the new level; otherwise it returns
// to the front of its current level, unchanged.
func (p *mlfqPolicy) Requeue(pid int, procs map[int]*process.Process, quantumExpired bool) {
	proc, ok := procs[pid]
	if !ok {
		return
	}
	if p.levelContaining(pid) >= 0 {
		return
	}
	level := proc.Level
	if quantumExpired {
		if level < len(mlfqLevels)-1 {
			level++
		}
		proc.Level = level
		proc.QuantumRemaining = mlfqLevels[level]
		p.levels[level].PushBack(pid)
		return
	}
	p.levels[level].PushFront(pid)
}

func (p *mlfqPolicy) OnDispatch(pid int, _ map[int]*process.Process) {
	if level := p.levelContaining(pid); level >= 0 {
		p.levels[level].Remove(pid)
	}
}

func (p *mlfqPolicy) InitialQuantum() int { return mlfqLevels[0] }

func (p *mlfqPolicy) levelContaining(pid int) int {
	for i, q := range p.levels {
		if q.Contains(pid) {
			return i
		}
	}
	return -1
}

package scheduler

import (
	"github.com/gophersched/ossim/pkg/ossim/process"
	"github.com/gophersched/ossim/pkg/ossim/readyqueue"
)

// roundRobinPolicy is quantum-based Round-Robin: every process gets at most
// quantum ticks before it is requeued at the tail, regardless of arrival or
// priority.
type roundRobinPolicy struct {
	base
	ready   *readyqueue.Queue
	quantum int
}

func newRoundRobin(quantum int) *roundRobinPolicy {
	return &roundRobinPolicy{ready: readyqueue.New(), quantum: quantum}
}

func (p *roundRobinPolicy) Name() string { return RoundRobin }

func (p *roundRobinPolicy) OnArrival(pid int, _ map[int]*process.Process) {
	p.ready.PushBack(pid)
}

func (p *roundRobinPolicy) PickNext(_ map[int]*process.Process, _ int, _ bool) (int, bool) {
	return p.ready.Front()
}

func (p *roundRobinPolicy) QuantumExpired(proc *process.Process) bool {
	return proc.QuantumRemaining <= 0
}

// Requeue sends a process that exhausted its quantum to the tail with a
// fresh quantum. A process that merely yielded mid-quantum (it has not lost
// the CPU to the clock) keeps its unused quantum and returns to the front,
// the same "earned position" rule FCFS uses.
func (p *roundRobinPolicy) Requeue(pid int, procs map[int]*process.Process, quantumExpired bool) {
	if p.ready.Contains(pid) {
		return
	}
	if quantumExpired {
		if proc, ok := procs[pid]; ok {
			proc.QuantumRemaining = p.quantum
		}
		p.ready.PushBack(pid)
		return
	}
	p.ready.PushFront(pid)
}

func (p *roundRobinPolicy) OnDispatch(pid int, _ map[int]*process.Process) {
	p.ready.Remove(pid)
}

func (p *roundRobinPolicy) InitialQuantum() int { return p.quantum }

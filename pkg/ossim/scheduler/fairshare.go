package scheduler

import "github.com/gophersched/ossim/pkg/ossim/process"

// fairShareGroup classifies a process by name so usage can be tracked per
// workload class rather than per process.
type fairShareGroup string

const (
	groupCPU   fairShareGroup = "cpu"
	groupIO    fairShareGroup = "io"
	groupOther fairShareGroup = "other"
)

func classify(name string) fairShareGroup {
	switch {
	case containsFold(name, "cpu_bound"):
		return groupCPU
	case containsFold(name, "io_bound"):
		return groupIO
	default:
		return groupOther
	}
}

func containsFold(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if equalFold(s[i:i+len(substr)], substr) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// fairSharePolicy grants the CPU to whichever workload group (cpu-bound,
// io-bound, other) has accumulated the least usage so far, breaking ties
// within a group by the lowest pid. Non-preemptive: usage only advances on
// dispatch, never per tick, so a long-running process does not get charged
// more than the single dispatch that started it.
type fairSharePolicy struct {
	base
	usage map[fairShareGroup]int
}

func newFairShare() *fairSharePolicy {
	return &fairSharePolicy{usage: map[fairShareGroup]int{groupCPU: 0, groupIO: 0, groupOther: 0}}
}

func (p *fairSharePolicy) Name() string { return FairShare }

func (p *fairSharePolicy) OnArrival(int, map[int]*process.Process) {}

func (p *fairSharePolicy) PickNext(procs map[int]*process.Process, _ int, _ bool) (int, bool) {
	bestGroup, haveGroup := fairShareGroup(""), false
	for _, pid := range readyPids(procs) {
		g := classify(procs[pid].Name)
		if !haveGroup || p.usage[g] < p.usage[bestGroup] {
			bestGroup, haveGroup = g, true
		}
	}
	if !haveGroup {
		return -1, false
	}
	best, found := -1, false
	for _, pid := range readyPids(procs) {
		if classify(procs[pid].Name) != bestGroup {
			continue
		}
		if !found || pid < best {
			best, found = pid, true
		}
	}
	return best, found
}

func (p *fairSharePolicy) OnDispatch(pid int, procs map[int]*process.Process) {
	if proc, ok := procs[pid]; ok {
		p.usage[classify(proc.Name)]++
	}
}

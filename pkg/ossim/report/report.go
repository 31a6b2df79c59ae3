// Package report turns a finished simulation run into the statistics the
// reporter stage of the core exposes: per-process accounting, run
// averages, and the total context-switch count, in table, JSON, or CSV
// form.
package report

import (
	"fmt"

	"github.com/gophersched/ossim/pkg/ossim/process"
)

// ProcessStat is one terminated process's final accounting row.
type ProcessStat struct {
	PID            int    `json:"pid"`
	Name           string `json:"name"`
	Priority       int    `json:"priority"`
	CPUTimeNs      int64  `json:"cpu_time_ns"` // nanoseconds, from Process.CPUTime
	TurnaroundTime int    `json:"turnaround_time"`
	WaitingTime    int    `json:"waiting_time"`
	ExecutedSteps  int    `json:"executed_steps"`
	ReturnValue    any    `json:"return_value"`
}

// Summary is the full report for one simulation run.
type Summary struct {
	Scheduler         string        `json:"scheduler"`
	FinalClock        int           `json:"final_clock"`
	ContextSwitches   int           `json:"context_switches"`
	Processes         []ProcessStat `json:"processes"`
	AverageTurnaround float64       `json:"average_turnaround"`
	AverageWaiting    float64       `json:"average_waiting"`
}

// Build aggregates a Summary from the dispatcher's terminated-process list,
// in the order each process terminated.
func Build(schedulerName string, finalClock, contextSwitches int, terminated []*process.Process) Summary {
	stats := make([]ProcessStat, 0, len(terminated))
	var turnaroundSum, waitingSum float64
	for _, p := range terminated {
		stats = append(stats, ProcessStat{
			PID:            p.PID,
			Name:           p.Name,
			Priority:       p.Priority,
			CPUTimeNs:      p.CPUTime.Nanoseconds(),
			TurnaroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ExecutedSteps:  p.ExecutedSteps,
			ReturnValue:    p.ReturnValue,
		})
		turnaroundSum += float64(p.TurnaroundTime)
		waitingSum += float64(p.WaitingTime)
	}

	s := Summary{
		Scheduler:       schedulerName,
		FinalClock:      finalClock,
		ContextSwitches: contextSwitches,
		Processes:       stats,
	}
	if n := float64(len(stats)); n > 0 {
		s.AverageTurnaround = turnaroundSum / n
		s.AverageWaiting = waitingSum / n
	}
	return s
}

func formatReturn(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV ports the teacher's csvW row writer: a header row followed by
// one row per terminated process.
func (s Summary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"pid", "name", "priority", "cpu_time_ns", "turnaround_time", "waiting_time", "executed_steps", "return_value"}); err != nil {
		return err
	}
	for _, p := range s.Processes {
		row := []string{
			fmt.Sprint(p.PID),
			p.Name,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CPUTimeNs),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ExecutedSteps),
			formatReturn(p.ReturnValue),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

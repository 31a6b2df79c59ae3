package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the per-process statistics as one bordered table whose
// footer row carries the run-level turnaround and waiting averages, in the
// style the pack's own scheduler project renders its schedule table.
func (s Summary) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "Scheduler: %s  final clock: %d  context switches: %d\n\n", s.Scheduler, s.FinalClock, s.ContextSwitches)

	rows := make([][]string, 0, len(s.Processes))
	for _, p := range s.Processes {
		rows = append(rows, []string{
			fmt.Sprint(p.PID),
			p.Name,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ExecutedSteps),
			formatReturn(p.ReturnValue),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Name", "Priority", "Turnaround", "Waiting", "Steps", "Return"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", fmt.Sprintf("avg %.2f", s.AverageTurnaround), fmt.Sprintf("avg %.2f", s.AverageWaiting), "", ""})
	table.Render()
}

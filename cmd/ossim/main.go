// Command ossim is an educational single-CPU scheduling simulator: it
// loads a set of cooperative programs and runs them to completion under a
// selectable scheduling discipline, reporting per-process accounting and,
// optionally, a Gantt occupancy chart.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gophersched/ossim/pkg/ossim/clock"
	"github.com/gophersched/ossim/pkg/ossim/config"
	"github.com/gophersched/ossim/pkg/ossim/dispatcher"
	"github.com/gophersched/ossim/pkg/ossim/gantt"
	"github.com/gophersched/ossim/pkg/ossim/process"
	"github.com/gophersched/ossim/pkg/ossim/report"
	"github.com/gophersched/ossim/pkg/ossim/scheduler"
	"github.com/gophersched/ossim/pkg/ossim/task"
)

type opts struct {
	schedulerName string
	quantum       int
	timeSlice     int
	visualize     bool
	priorities    []int
	seed          int64
	jsonPath      string
	csvPath       string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "ossim [flags] PROGRAM [PROGRAM...]",
		Short: "Single-CPU operating-system scheduling simulator",
		Long: `ossim loads one or more cooperative programs (built-in names, or
paths to declarative .json task scripts) and runs them to completion under
a selectable scheduling policy: fcfs, sjf, priority, round_robin, srtf,
mlfq, edf, fair.

Examples:
  ossim -s round_robin -q 2 hello short_task
  ossim -s priority -p 5,1 cpu_bound high_priority_task
  ossim -s mlfq -v --json out.json hello io_bound cpu_bound`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args)
		},
	}

	root.Flags().StringVarP(&o.schedulerName, "scheduler", "s", scheduler.FCFS, "fcfs|sjf|priority|round_robin|srtf|mlfq|edf|fair")
	root.Flags().IntVarP(&o.quantum, "quantum", "q", 5, "Round-Robin quantum, in time-slice units (MLFQ uses fixed 1/2/4)")
	root.Flags().IntVarP(&o.timeSlice, "time-slice", "t", 1, "clock units advanced per dispatch")
	root.Flags().BoolVarP(&o.visualize, "visualize", "v", false, "render a Gantt PNG on completion")
	root.Flags().IntSliceVarP(&o.priorities, "priorities", "p", nil, "i-th value applies to the i-th PROGRAM")
	root.Flags().Int64Var(&o.seed, "seed", 0, "PRNG seed (default: derived from current time)")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write the final report as JSON to this path")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write the final report as CSV to this path")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts, programs []string) error {
	cfg := config.Run{
		Scheduler:  o.schedulerName,
		Quantum:    o.quantum,
		TimeSlice:  o.timeSlice,
		Programs:   programs,
		Priorities: o.priorities,
		Seed:       o.seed,
		Visualize:  o.visualize,
		JSONPath:   o.jsonPath,
		CSVPath:    o.csvPath,
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := clock.NewRNG(seed)

	pol, err := scheduler.New(o.schedulerName, o.quantum)
	if err != nil {
		return err
	}

	disp := dispatcher.New(pol, o.timeSlice, rng, slog.Default())

	registry := task.NewRegistry()
	for i, identifier := range programs {
		name, t, err := task.Load(registry, identifier)
		if err != nil {
			slog.Warn("load error, skipping program", "program", identifier, "err", err)
			continue
		}
		priority := process.Unset
		if i < len(o.priorities) {
			priority = o.priorities[i]
		}
		disp.Register(name, t, priority, 0)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := disp.Run(ctx)
	if runErr != nil {
		slog.Warn("run interrupted", "err", runErr)
	}
	for _, stepErr := range disp.StepErrors() {
		slog.Error("program terminated early", "err", stepErr)
	}

	summary := report.Build(pol.Name(), disp.Clock().Now(), disp.ContextSwitches(), disp.Terminated())
	summary.WriteTable(os.Stdout)

	if o.jsonPath != "" {
		if err := writeToFile(o.jsonPath, summary.WriteJSON); err != nil {
			slog.Warn("writing JSON report", "err", err)
		}
	}
	if o.csvPath != "" {
		if err := writeToFile(o.csvPath, summary.WriteCSV); err != nil {
			slog.Warn("writing CSV report", "err", err)
		}
	}

	if o.visualize {
		renderGantt(pol.Name(), disp.Clock().Now(), disp.Terminated())
	}

	return runErr
}

func writeToFile(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func renderGantt(schedulerName string, finalClock int, terminated []*process.Process) {
	series := make([]gantt.Series, 0, len(terminated))
	for i, p := range terminated {
		segments := make([]gantt.Segment, 0, len(p.RunHistory))
		for _, seg := range p.RunHistory {
			segments = append(segments, gantt.Segment{Start: seg.Start, End: seg.End})
		}
		series = append(series, gantt.Series{
			PID:        p.PID,
			Name:       p.Name,
			Priority:   p.Priority,
			ColorIndex: i,
			Segments:   segments,
		})
	}

	path := fmt.Sprintf("gantt_chart_%s.png", schedulerName)
	if err := gantt.Render(path, schedulerName, finalClock, series); err != nil {
		slog.Warn("gantt render failed", "err", err)
		return
	}
	slog.Info("gantt chart written", "path", path)
}

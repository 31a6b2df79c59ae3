// Package gantt renders a finished simulation's run-history segments as a
// PNG occupancy chart, the direct analogue of the original simulator's
// matplotlib-based chart.
package gantt

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Segment is one closed-open interval of CPU occupancy, as recorded by a
// process's run history.
type Segment struct {
	Start, End int
}

// Series is one process's row in the chart: its run-history segments drawn
// as thick horizontal bars, cycling color by ColorIndex.
type Series struct {
	PID        int
	Name       string
	Priority   int
	ColorIndex int
	Segments   []Segment
}

var barWidth = vg.Points(14)

// Render draws one horizontal bar per run-history segment, one row per
// process, and saves the chart as a PNG at path.
func Render(path, schedulerName string, finalClock int, series []Series) error {
	if len(series) == 0 {
		return ErrNoTerminatedProcesses
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Gantt chart — %s", schedulerName)
	p.X.Label.Text = "clock"
	p.Y.Label.Text = "process"
	p.X.Min = 0
	p.X.Max = float64(finalClock)
	p.Y.Min = -1
	p.Y.Max = float64(len(series))

	ticks := make([]plot.Tick, 0, len(series))
	for row, s := range series {
		y := float64(row)
		ticks = append(ticks, plot.Tick{Value: y, Label: fmt.Sprintf("%d:%s", s.PID, s.Name)})

		for _, seg := range s.Segments {
			line, err := plotter.NewLine(plotter.XYs{
				{X: float64(seg.Start), Y: y},
				{X: float64(seg.End), Y: y},
			})
			if err != nil {
				return fmt.Errorf("%w: %v", ErrRenderBackend, err)
			}
			line.LineStyle.Width = barWidth
			line.LineStyle.Color = plotutil.Color(s.ColorIndex)
			p.Add(line)
		}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderBackend, err)
	}
	return nil
}

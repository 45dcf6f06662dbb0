// Package report renders reports about solver runs
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is the per-sweep delta history of a single solver run
type Series struct {
	Name   string
	Deltas []float64
}

// Convergence renders the delta histories of solver runs as an HTML line
// chart and writes it to w. The x axis is the sweep number.
func Convergence(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("convergence: no series to plot")
	}

	// Sweeps are numbered from one
	numSweeps := 0
	for _, s := range series {
		if len(s.Deltas) > numSweeps {
			numSweeps = len(s.Deltas)
		}
	}
	sweeps := make([]string, numSweeps)
	for i := range sweeps {
		sweeps[i] = fmt.Sprintf("%d", i+1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "largest change per sweep",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sweep"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "delta"}),
	)

	line = line.SetXAxis(sweeps)
	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Deltas))
		for _, delta := range s.Deltas {
			items = append(items, opts.LineData{Value: delta})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("convergence: could not render chart: %w", err)
	}
	return nil
}

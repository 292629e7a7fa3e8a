package kalmanfusion

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteConvergenceChart renders an HTML line chart of the estimates with
// their ±2σ envelope, overlaid with the raw observations as a scatter. A
// non-nil truth slice of the same length adds the true trajectory.
func WriteConvergenceChart(w io.Writer, title string, truth []float64, ests []Estimate) error {
	if len(ests) == 0 {
		return fmt.Errorf("no estimates to chart")
	}
	if truth != nil && len(truth) != len(ests) {
		return fmt.Errorf("ground truth has %d steps but %d estimates provided", len(truth), len(ests))
	}

	x := make([]string, len(ests))
	estData := make([]opts.LineData, len(ests))
	upperData := make([]opts.LineData, len(ests))
	lowerData := make([]opts.LineData, len(ests))
	obsData := make([]opts.ScatterData, len(ests))
	for k, est := range ests {
		x[k] = strconv.Itoa(k)
		estData[k] = opts.LineData{Value: est.State()}
		upper, lower := TwoSigmaBounds(est)
		upperData[k] = opts.LineData{Value: upper}
		lowerData[k] = opts.LineData{Value: lower}
		obsData[k] = opts.ScatterData{Value: est.Observation()}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d steps", len(ests))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "state"}),
	)
	line.SetXAxis(x).
		AddSeries("estimate", estData).
		AddSeries("+2σ", upperData).
		AddSeries("-2σ", lowerData)
	if truth != nil {
		truthData := make([]opts.LineData, len(truth))
		for k, v := range truth {
			truthData[k] = opts.LineData{Value: v}
		}
		line.AddSeries("truth", truthData)
	}

	scatter := charts.NewScatter()
	scatter.SetXAxis(x).
		AddSeries("observations", obsData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	line.Overlap(scatter)

	return line.Render(w)
}

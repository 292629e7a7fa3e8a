package kalmanfusion

import (
	"fmt"
	"strings"

	"github.com/influxdata/tdigest"
	"gonum.org/v1/gonum/stat"
)

// MonteCarloRuns stores MC runs.
type MonteCarloRuns struct {
	runs, steps int
	Runs        []MonteCarloRun
}

// samplesAt gathers the estimated state of every run at the given time step.
func (mc MonteCarloRuns) samplesAt(step int) []float64 {
	states := make([]float64, len(mc.Runs))
	for r, run := range mc.Runs {
		states[r] = run.Estimates[step].State()
	}
	return states
}

// Mean returns the mean of all the samples for the given time step.
func (mc MonteCarloRuns) Mean(step int) float64 {
	return stat.Mean(mc.samplesAt(step), nil)
}

// StdDev returns the standard deviation of all the samples for the given time step.
func (mc MonteCarloRuns) StdDev(step int) float64 {
	return stat.StdDev(mc.samplesAt(step), nil)
}

// Quantile returns the q-th quantile (0 <= q <= 1) of all the samples for the
// given time step, interpolated from a t-digest of the runs.
func (mc MonteCarloRuns) Quantile(step int, q float64) float64 {
	td := tdigest.NewWithCompression(50)
	for _, state := range mc.samplesAt(step) {
		td.Add(state, 1)
	}
	return td.Quantile(q)
}

// Errors maps every estimate through the ground truth, returning runs of
// error estimates suitable for consistency checks and export.
func (mc MonteCarloRuns) Errors(truth *GroundTruth) MonteCarloRuns {
	errRuns := make([]MonteCarloRun, len(mc.Runs))
	for r, run := range mc.Runs {
		errRun := MonteCarloRun{Estimates: make([]Estimate, len(run.Estimates))}
		for k, est := range run.Estimates {
			errRun.Estimates[k] = truth.Error(k, est)
		}
		errRuns[r] = errRun
	}
	return MonteCarloRuns{mc.runs, mc.steps, errRuns}
}

// AsCSV is used as a CSV serializer. Does not include the header.
func (mc MonteCarloRuns) AsCSV(header string) string {
	lines := make([]string, mc.steps+1) // One line per step, plus header.
	for rNo := 0; rNo < mc.runs; rNo++ {
		lines[0] += fmt.Sprintf("%s-%d,", header, rNo)
	}
	lines[0] += header + "-mean," + header + "-stddev"

	for k := 0; k < mc.steps; k++ {
		for rNo, run := range mc.Runs {
			lines[k+1] += fmt.Sprintf("%f,", run.Estimates[k].State())

			if rNo == mc.runs-1 {
				// Last run reached, let's add the mean and stddev for this step.
				lines[k+1] += fmt.Sprintf("%f,%f", mc.Mean(k), mc.StdDev(k))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// NewMonteCarloRuns run monte carlos on the provided tracker. The source and
// tracker are reset before each sample, so a drifting source contributes a
// fresh noise sequence per run.
func NewMonteCarloRuns(samples, steps int, src Source, tracker *Tracker) MonteCarloRuns {
	runs := make([]MonteCarloRun, samples)
	for sample := 0; sample < samples; sample++ {
		src.Reset()
		tracker.Reset()
		MCRun := MonteCarloRun{Estimates: make([]Estimate, steps)}
		for k := 0; k < steps; k++ {
			MCRun.Estimates[k] = tracker.Update(src.Observe(k))
		}
		runs[sample] = MCRun
	}
	return MonteCarloRuns{samples, steps, runs}
}

// MonteCarloRun stores the results of an MC run.
type MonteCarloRun struct {
	Estimates []Estimate
}

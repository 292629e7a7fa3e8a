package kalmanfusion

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// NewConsistency runs the chi square consistency tests on the MonteCarlo runs
// against the ground truth. The measurement uncertainty must be the Rtrue the
// tracked filter was tuned with, since the innovation variance depends on it.
// Returns NISmeans, NEESmeans and an error if applicable.
func NewConsistency(runs MonteCarloRuns, truth *GroundTruth, measurementUncertainty float64, withNEES, withNIS bool) ([]float64, []float64, error) {
	if !withNEES && !withNIS {
		return nil, nil, errors.New("consistency requires either NEES or NIS or both")
	}

	numRuns := runs.runs
	numSteps := len(runs.Runs[0].Estimates)
	NISsamples := make(map[int][]float64)
	NEESsamples := make(map[int][]float64)

	for rNo, run := range runs.Runs {
		for k, est := range run.Estimates {
			if withNEES {
				if NEESsamples[k] == nil {
					NEESsamples[k] = make([]float64, numRuns)
				}
				err := est.State() - truth.StateAt(k)
				NEESsamples[k][rNo] = err * err / est.Uncertainty()
			}

			if withNIS {
				if NISsamples[k] == nil {
					NISsamples[k] = make([]float64, numRuns)
				}
				// This corresponds to the pure prediction: Pkp1_minus + Rtrue.
				Pyy := est.PriorUncertainty() + measurementUncertainty
				NISsamples[k][rNo] = est.Innovation() * est.Innovation() / Pyy
			}
		}
	}

	// Let's compute the means for each step.
	NISmeans := make([]float64, numSteps)
	NEESmeans := make([]float64, numSteps)

	for k := 0; k < numSteps; k++ {
		if withNEES {
			NEESmeans[k] = stat.Mean(NEESsamples[k], nil)
		}
		if withNIS {
			NISmeans[k] = stat.Mean(NISsamples[k], nil)
		}
	}

	return NISmeans, NEESmeans, nil
}

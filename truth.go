package kalmanfusion

import (
	"fmt"
)

// GroundTruth computes the error of a given estimate from the known true
// trajectory of a simulation.
type GroundTruth struct {
	states []float64
}

// Len returns the number of steps covered by this ground truth.
func (t *GroundTruth) Len() int {
	return len(t.states)
}

// StateAt returns the true state at step k.
func (t *GroundTruth) StateAt(k int) float64 {
	if k >= len(t.states) {
		panic(fmt.Errorf("no ground truth state at k=%d", k))
	}
	return t.states[k]
}

// Error returns an ErrorEstimate after comparing the provided estimate with
// the ground truth. The state and observation become errors from the truth
// while the uncertainty and gain are carried over unchanged.
func (t *GroundTruth) Error(k int, est Estimate) Estimate {
	trueState := t.StateAt(k)
	return ErrorEstimate{TrackEstimate{
		state:       est.State() - trueState,
		observation: est.Observation() - trueState,
		innovation:  est.Innovation(),
		uncertainty: est.Uncertainty(),
		priorUnc:    est.PriorUncertainty(),
		gain:        est.Gain(),
	}}
}

// NewGroundTruth initializes a new ground truth from the true state at each step.
func NewGroundTruth(states []float64) *GroundTruth {
	return &GroundTruth{states}
}

// ErrorEstimate implements the Estimate interface and is used to show the error of an estimate.
type ErrorEstimate struct {
	TrackEstimate // This is effectively the same as a TrackEstimate, so no change.
}

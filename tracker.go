package kalmanfusion

import (
	"fmt"

	"github.com/tstellanova/kalman-fusion/fixpoint"
)

// Tracker drives the float path over a stream of observations. It wraps the
// pure UpdateFloat in the usual predict/update loop and keeps the latest
// state, so one Tracker serves one filter instance.
type Tracker struct {
	state   State[float64]
	initial State[float64]
}

// NewTracker creates a float tracker from an initial state.
func NewTracker(state State[float64]) *Tracker {
	return &Tracker{state, state}
}

// Update processes one observation and returns the full estimate.
func (t *Tracker) Update(observation float64) Estimate {
	prior := t.state
	gain := prior.Uncertainty / (prior.Uncertainty + prior.measurementUncertainty)
	t.state = UpdateFloat(prior, observation)
	return TrackEstimate{
		state:       t.state.Estimate,
		observation: observation,
		innovation:  observation - prior.Estimate,
		uncertainty: t.state.Uncertainty,
		priorUnc:    prior.Uncertainty,
		gain:        gain,
	}
}

// State returns the current filter state.
func (t *Tracker) State() State[float64] {
	return t.state
}

// Reset restores the tracker to the state it was created with.
func (t *Tracker) Reset() {
	t.state = t.initial
}

// String implements the Stringer interface.
func (t *Tracker) String() string {
	return fmt.Sprintf("Tracker{est=%g unc=%g mu=%g pn=%g}",
		t.state.Estimate, t.state.Uncertainty, t.state.measurementUncertainty, t.state.processNoise)
}

// FixedTracker drives the fixed point path over a stream of observations.
// Estimates are reported in float64 for inspection and export while the
// filter state itself stays in the fixed representation.
type FixedTracker[T fixpoint.Value[T]] struct {
	state   State[T]
	initial State[T]
}

// NewFixedTracker creates a fixed point tracker from an initial state.
func NewFixedTracker[T fixpoint.Value[T]](state State[T]) *FixedTracker[T] {
	return &FixedTracker[T]{state, state}
}

// Update processes one observation and returns the full estimate.
func (t *FixedTracker[T]) Update(observation T) Estimate {
	prior := t.state
	gain := prior.Uncertainty.Div(prior.Uncertainty + prior.measurementUncertainty)
	t.state = UpdateFixed(prior, observation)
	return TrackEstimate{
		state:       t.state.Estimate.Float64(),
		observation: observation.Float64(),
		innovation:  observation.Float64() - prior.Estimate.Float64(),
		uncertainty: t.state.Uncertainty.Float64(),
		priorUnc:    prior.Uncertainty.Float64(),
		gain:        gain.Float64(),
	}
}

// State returns the current filter state.
func (t *FixedTracker[T]) State() State[T] {
	return t.state
}

// Reset restores the tracker to the state it was created with.
func (t *FixedTracker[T]) Reset() {
	t.state = t.initial
}

// String implements the Stringer interface.
func (t *FixedTracker[T]) String() string {
	return fmt.Sprintf("FixedTracker{est=%v unc=%v mu=%v pn=%v}",
		t.state.Estimate, t.state.Uncertainty, t.state.measurementUncertainty, t.state.processNoise)
}

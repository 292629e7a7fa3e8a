// Package kalmanfusion implements a one-dimensional Kalman filter that fuses
// a stream of noisy scalar observations into a running estimate with an
// associated uncertainty. The update functions are pure: each call folds the
// previous state and one observation into a brand-new state value, so callers
// replace the state they hold rather than mutate it. There is no shared
// mutable state and no synchronization; concurrent callers must each hold
// their own state value.
//
// Two capability-bounded paths cover the two supported numeric categories:
// UpdateFloat for floating-point representations and UpdateFixed for the
// binary fixed-point representations of the fixpoint subpackage. They share
// the State entity but not the arithmetic, since sign and overflow semantics
// differ structurally between the two categories.
package kalmanfusion

import (
	"fmt"
	"math"
)

// State holds the filter state between updates.
// Estimate is the current best estimate of the tracked quantity and
// Uncertainty its variance. The two tuning values are fixed at construction
// and carried unchanged through every update: the measurement uncertainty is
// the assumed noise level of the observation source, and the process noise
// models how much uncertainty grows per update from unmodeled dynamics.
// Use NewFloat or NewFixed to construct one.
type State[T any] struct {
	Estimate    T
	Uncertainty T

	measurementUncertainty T
	processNoise           T
}

// MeasurementUncertainty returns the measurement uncertainty this state was
// constructed with.
func (s State[T]) MeasurementUncertainty() T {
	return s.measurementUncertainty
}

// ProcessNoise returns the process noise this state was constructed with.
func (s State[T]) ProcessNoise() T {
	return s.processNoise
}

// Estimate is the reporting view of one update step, produced by the driver
// layer (Tracker, FixedTracker) rather than by the pure update functions.
type Estimate interface {
	State() float64            // Posterior estimate after the step.
	Observation() float64      // The observation folded in.
	Innovation() float64       // Observation minus prior estimate.
	Uncertainty() float64      // Posterior variance.
	PriorUncertainty() float64 // Variance before the step; no prediction, so the previous posterior.
	Gain() float64             // Kalman gain applied.
	IsWithinNσ(N float64) bool // Whether the state is within the N·σ bounds.
	String() string            // Must implement the stringer interface.
}

// TrackEstimate records one update step. It implements the Estimate interface.
type TrackEstimate struct {
	state, observation, innovation float64
	uncertainty, priorUnc, gain    float64
}

// State implements the Estimate interface.
func (e TrackEstimate) State() float64 {
	return e.state
}

// Observation implements the Estimate interface.
func (e TrackEstimate) Observation() float64 {
	return e.observation
}

// Innovation implements the Estimate interface.
func (e TrackEstimate) Innovation() float64 {
	return e.innovation
}

// Uncertainty implements the Estimate interface.
func (e TrackEstimate) Uncertainty() float64 {
	return e.uncertainty
}

// PriorUncertainty implements the Estimate interface.
func (e TrackEstimate) PriorUncertainty() float64 {
	return e.priorUnc
}

// Gain implements the Estimate interface.
func (e TrackEstimate) Gain() float64 {
	return e.gain
}

// IsWithinNσ returns whether the state is within the N·σ bounds.
func (e TrackEstimate) IsWithinNσ(N float64) bool {
	Nσ := N * math.Sqrt(e.uncertainty)
	return e.state <= Nσ && e.state >= -Nσ
}

func (e TrackEstimate) String() string {
	return fmt.Sprintf("{s=%f y=%f i=%f P=%f P-=%f K=%f}", e.state, e.observation, e.innovation, e.uncertainty, e.priorUnc, e.gain)
}

package kalmanfusion

import "github.com/tstellanova/kalman-fusion/fixpoint"

// NewFixed returns a filter state over a binary fixed-point representation.
// Sign normalization works the same way as NewFloat: negative uncertainty-like
// values are replaced by their magnitude, which on an unsigned format is the
// identity.
// Parameters:
// - estimate: initial estimate of the tracked quantity
// - uncertainty: initial variance of that estimate
// - measurementUncertainty: noise level of the observation source
// - processNoise: per-update uncertainty growth
func NewFixed[T fixpoint.Value[T]](estimate, uncertainty, measurementUncertainty, processNoise T) State[T] {
	var zero T
	if uncertainty < zero {
		uncertainty = zero - uncertainty
	}
	if measurementUncertainty < zero {
		measurementUncertainty = zero - measurementUncertainty
	}
	if processNoise < zero {
		processNoise = zero - processNoise
	}
	return State[T]{
		Estimate:               estimate,
		Uncertainty:            uncertainty,
		measurementUncertainty: measurementUncertainty,
		processNoise:           processNoise,
	}
}

// UpdateFixed folds one observation into the state and returns the new state.
// Same recursion as UpdateFloat, with two representation-specific differences:
// the innovation is applied as magnitude and direction so an unsigned format
// never underflows, and the unit in (1−gain) comes from the representation
// itself. Overflow wraps and a zero gain denominator faults per the
// representation's arithmetic; neither is guarded here.
func UpdateFixed[T fixpoint.Value[T]](s State[T], observation T) State[T] {
	gain := s.Uncertainty.Div(s.Uncertainty + s.measurementUncertainty)
	estimate := s.Estimate
	if observation >= estimate {
		estimate += gain.Mul(observation - estimate)
	} else {
		estimate -= gain.Mul(estimate - observation)
	}
	return State[T]{
		Estimate:               estimate,
		Uncertainty:            (gain.One() - gain).Mul(s.Uncertainty) + s.processNoise,
		measurementUncertainty: s.measurementUncertainty,
		processNoise:           s.processNoise,
	}
}

// FoldFixed applies UpdateFixed once per observation, in order.
func FoldFixed[T fixpoint.Value[T]](s State[T], observations ...T) State[T] {
	for _, o := range observations {
		s = UpdateFixed(s, o)
	}
	return s
}

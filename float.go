package kalmanfusion

import "golang.org/x/exp/constraints"

// NewFloat returns a filter state over a floating-point representation. The
// three uncertainty-like values are silently replaced by their magnitude, so
// a caller passing a negative spread by mistake still gets a usable state.
// No validation against NaN or infinity is performed.
// Parameters:
// - estimate: initial estimate of the tracked quantity
// - uncertainty: initial variance of that estimate
// - measurementUncertainty: noise level of the observation source
// - processNoise: per-update uncertainty growth
func NewFloat[T constraints.Float](estimate, uncertainty, measurementUncertainty, processNoise T) State[T] {
	return State[T]{
		Estimate:               estimate,
		Uncertainty:            abs(uncertainty),
		measurementUncertainty: abs(measurementUncertainty),
		processNoise:           abs(processNoise),
	}
}

// UpdateFloat folds one observation into the state and returns the new state.
// The gain is uncertainty/(uncertainty+measurementUncertainty), the estimate
// moves toward the observation by gain×innovation, and the uncertainty
// becomes (1−gain)×uncertainty+processNoise (additive process noise). With
// both uncertainties zero the gain is a division by zero; the resulting
// non-finite values propagate into the returned state unguarded.
func UpdateFloat[T constraints.Float](s State[T], observation T) State[T] {
	gain := s.Uncertainty / (s.Uncertainty + s.measurementUncertainty)
	return State[T]{
		Estimate:               s.Estimate + gain*(observation-s.Estimate),
		Uncertainty:            (1-gain)*s.Uncertainty + s.processNoise,
		measurementUncertainty: s.measurementUncertainty,
		processNoise:           s.processNoise,
	}
}

// FoldFloat applies UpdateFloat once per observation, in order. This is the
// sequential fold used to blend several sensors' readings into one state.
func FoldFloat[T constraints.Float](s State[T], observations ...T) State[T] {
	for _, o := range observations {
		s = UpdateFloat(s, o)
	}
	return s
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

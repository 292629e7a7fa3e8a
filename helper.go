package kalmanfusion

import "math"

// SteadyStateUncertainty returns the fixed point of the additive uncertainty
// recursion for the given tuning values, i.e. the variance the filter settles
// at under a steady stream of observations. Solving
// u = u·mu/(u+mu) + pn for u gives the closed form below.
func SteadyStateUncertainty(measurementUncertainty, processNoise float64) float64 {
	mu := math.Abs(measurementUncertainty)
	pn := math.Abs(processNoise)
	return (pn + math.Sqrt(pn*pn+4*pn*mu)) / 2
}

// TwoSigmaBounds returns the estimate's ±2σ envelope.
func TwoSigmaBounds(est Estimate) (upper, lower float64) {
	twoσ := 2 * math.Sqrt(est.Uncertainty())
	return est.State() + twoσ, est.State() - twoσ
}

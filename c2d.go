package kalmanfusion

import (
	"fmt"
)

// DiscretizeNoise computes the discrete noise values from the provided CT
// intensities q and r and the sampling rate Δt. For the scalar random walk
// the Van Loan construction collapses to products: the process noise
// integrates to q·Δt and a measurement noise rate r sampled at Δt gives r/Δt.
func DiscretizeNoise(q, r, Δt float64) (processNoise, measurementUncertainty float64, err error) {
	if Δt <= 0 {
		return 0, 0, fmt.Errorf("kalmanfusion: sampling interval Δt=%f must be positive", Δt)
	}
	return q * Δt, r / Δt, nil
}

package kalmanfusion

import (
	"testing"
)

func TestGroundTruthError(t *testing.T) {
	truth := NewGroundTruth([]float64{1, 2})
	if truth.Len() != 2 {
		t.Fatalf("expected 2 steps of ground truth, got %d", truth.Len())
	}
	est := TrackEstimate{state: 1.5, observation: 1.75, innovation: 0.3, uncertainty: 0.2, priorUnc: 0.5, gain: 0.4}

	for k, exp := range []struct {
		state, observation float64
	}{
		{state: 0.5, observation: 0.75},
		{state: -0.5, observation: -0.25},
	} {
		trueEst := truth.Error(k, est)
		if trueEst.State() != exp.state {
			t.Fatalf("state error failed at k=%d: got %f, want %f", k, trueEst.State(), exp.state)
		}
		if trueEst.Observation() != exp.observation {
			t.Fatalf("observation error failed at k=%d: got %f, want %f", k, trueEst.Observation(), exp.observation)
		}
		if trueEst.Uncertainty() != est.Uncertainty() || trueEst.Gain() != est.Gain() {
			t.Fatalf("uncertainty and gain must carry over unchanged at k=%d", k)
		}
	}

	// Test panics
	assertPanic(t, func() {
		truth.Error(2, est)
	})
	assertPanic(t, func() {
		truth.StateAt(5)
	})
}

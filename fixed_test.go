package kalmanfusion

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/tstellanova/kalman-fusion/fixpoint"
)

func TestFixedConcreteScenarioI8F24(t *testing.T) {
	state := NewFixed(
		fixpoint.I8F24FromFloat(0.5),
		fixpoint.I8F24FromFloat(0.1),
		fixpoint.I8F24FromFloat(1e-4),
		fixpoint.I8F24FromFloat(1.0),
	)
	one := fixpoint.I8F24FromFloat(1.0)
	for i := 0; i < 10; i++ {
		state = UpdateFixed(state, one)
	}
	if !scalar.EqualWithinAbs(state.Estimate.Float64(), 1.0, 1e-4) {
		t.Fatalf("estimate %v did not converge to 1.0", state.Estimate)
	}
}

func TestFixedTracksMonotonicI8F24(t *testing.T) {
	state := NewFixed(
		fixpoint.I8F24FromFloat(0),
		fixpoint.I8F24FromFloat(1),
		fixpoint.I8F24FromFloat(1e-6),
		fixpoint.I8F24FromFloat(1e-3),
	)
	max := int(int32(fixpoint.MaxI8F24) >> 24)
	for i := 1; i <= max; i++ {
		state = UpdateFixed(state, fixpoint.I8F24FromFloat(float64(i)))
	}
	if !scalar.EqualWithinAbs(state.Estimate.Float64(), float64(max), 2e-3) {
		t.Fatalf("final estimate %v is not near %d", state.Estimate, max)
	}
	if !scalar.EqualWithinAbs(state.Uncertainty.Float64(), 1e-3, 1e-6) {
		t.Fatalf("final uncertainty %v is not near its steady state", state.Uncertainty)
	}
}

func TestFixedTracksMonotonicI16F16(t *testing.T) {
	state := NewFixed(
		fixpoint.I16F16FromFloat(1.0),
		fixpoint.I16F16FromFloat(1.0),
		fixpoint.I16F16FromFloat(1e-3),
		fixpoint.I16F16FromFloat(1e-3),
	)
	max := int(int32(fixpoint.MaxI16F16) >> 16)
	for i := 1; i <= max; i++ {
		state = UpdateFixed(state, fixpoint.I16F16FromFloat(float64(i)))
	}
	if !scalar.EqualWithinAbs(state.Estimate.Float64(), float64(max), 0.75) {
		t.Fatalf("final estimate %v is not near %d", state.Estimate, max)
	}
	if !scalar.EqualWithinAbs(state.Uncertainty.Float64(), 1e-3, 1e-3) {
		t.Fatalf("final uncertainty %v is not near its steady state", state.Uncertainty)
	}
}

// The widest unsigned format is exercised with a stride so the ramp still
// reaches the largest representable integer in reasonable time.
func TestFixedTracksMonotonicU32F32(t *testing.T) {
	state := NewFixed(
		fixpoint.U32F32FromFloat(0),
		fixpoint.U32F32FromFloat(1),
		fixpoint.U32F32FromFloat(1e-6),
		fixpoint.U32F32FromFloat(1e-6),
	)
	max := uint64(fixpoint.MaxU32F32) >> 32
	const stride = 1000
	for i := uint64(1); i <= max; i += stride {
		state = UpdateFixed(state, fixpoint.U32F32FromFloat(float64(i)))
	}
	if !scalar.EqualWithinAbs(state.Estimate.Float64(), float64(max), stride) {
		t.Fatalf("final estimate %v is not near %d", state.Estimate, max)
	}
	if !scalar.EqualWithinAbs(state.Uncertainty.Float64(), 2e-6, 1e-6) {
		t.Fatalf("final uncertainty %v is not near its steady state", state.Uncertainty)
	}
}

// Unit-stride ramp to the maximum representable integer of an unsigned
// format. At U16F16 resolution the 1e-6 measurement uncertainty quantizes to
// zero, so the gain is exactly one and the filter tracks the ramp exactly.
func TestFixedRampToUnsignedMax(t *testing.T) {
	state := NewFixed(
		fixpoint.U16F16FromFloat(0),
		fixpoint.U16F16FromFloat(1),
		fixpoint.U16F16FromFloat(1e-6),
		fixpoint.U16F16FromFloat(2),
	)
	max := uint64(uint32(fixpoint.MaxU16F16) >> 16)
	for i := uint64(1); i <= max; i++ {
		state = UpdateFixed(state, fixpoint.U16F16FromFloat(float64(i)))
	}
	if got := state.Estimate.Float64(); got != float64(max) {
		t.Fatalf("final estimate %v, expected exactly %d", state.Estimate, max)
	}
	if got := state.Uncertainty.Float64(); got != 2.0 {
		t.Fatalf("final uncertainty %v, expected the process noise", state.Uncertainty)
	}
}

func TestFixedSignNormalization(t *testing.T) {
	state := NewFixed(
		fixpoint.I16F16FromFloat(0.5),
		fixpoint.I16F16FromFloat(-0.25),
		fixpoint.I16F16FromFloat(-0.125),
		fixpoint.I16F16FromFloat(-1.0),
	)
	if got := state.Uncertainty.Float64(); got != 0.25 {
		t.Fatalf("uncertainty not normalized: %v", got)
	}
	if got := state.MeasurementUncertainty().Float64(); got != 0.125 {
		t.Fatalf("measurement uncertainty not normalized: %v", got)
	}
	if got := state.ProcessNoise().Float64(); got != 1.0 {
		t.Fatalf("process noise not normalized: %v", got)
	}
	if got := state.Estimate.Float64(); got != 0.5 {
		t.Fatalf("estimate must not be normalized: %v", got)
	}
}

func TestFixedObservationBelowEstimate(t *testing.T) {
	// The unsigned path must step downward without underflowing.
	state := NewFixed(
		fixpoint.U16F16FromFloat(10),
		fixpoint.U16F16FromFloat(1),
		fixpoint.U16F16FromFloat(1),
		fixpoint.U16F16FromFloat(0.01),
	)
	next := UpdateFixed(state, fixpoint.U16F16FromFloat(2))
	got := next.Estimate.Float64()
	if got >= 10 || got < 2 {
		t.Fatalf("estimate %v did not interpolate between observation and estimate", got)
	}
	// gain is 1/2, so the estimate lands halfway.
	if !scalar.EqualWithinAbs(got, 6.0, 1e-4) {
		t.Fatalf("estimate %v, expected 6.0", got)
	}
}

func TestFixedUpdateIsPure(t *testing.T) {
	state := NewFixed(
		fixpoint.I16F16FromFloat(0.5),
		fixpoint.I16F16FromFloat(0.1),
		fixpoint.I16F16FromFloat(1e-3),
		fixpoint.I16F16FromFloat(1e-3),
	)
	obs := fixpoint.I16F16FromFloat(0.75)
	a := UpdateFixed(state, obs)
	b := UpdateFixed(state, obs)
	if a != b {
		t.Fatalf("two independent updates of the same inputs differ: %+v vs %+v", a, b)
	}
}

func TestFixedFold(t *testing.T) {
	state := NewFixed(
		fixpoint.U32F32FromFloat(0),
		fixpoint.U32F32FromFloat(1),
		fixpoint.U32F32FromFloat(1e-3),
		fixpoint.U32F32FromFloat(1e-3),
	)
	a := fixpoint.U32F32FromFloat(1)
	b := fixpoint.U32F32FromFloat(2)
	folded := FoldFixed(state, a, b)
	chained := UpdateFixed(UpdateFixed(state, a), b)
	if folded != chained {
		t.Fatalf("fold and chained updates differ: %+v vs %+v", folded, chained)
	}
}

func TestFixedDegenerateGainFaults(t *testing.T) {
	state := NewFixed(
		fixpoint.I16F16FromFloat(0.5),
		fixpoint.I16F16(0),
		fixpoint.I16F16(0),
		fixpoint.I16F16FromFloat(1e-3),
	)
	assertPanic(t, func() {
		UpdateFixed(state, fixpoint.I16F16FromFloat(1.0))
	})
}

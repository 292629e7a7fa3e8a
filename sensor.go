package kalmanfusion

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source models a stream of scalar observations fed to the filter.
type Source interface {
	Observe(k int) float64 // Returns the observation at step k
	Reset()                // Returns the source to its initial value
	String() string        // Stringer interface implementation
}

// SteadyClock is an ideal monotonic clock advancing by exactly one step per
// observation. It implements the Source interface and doubles as the ground
// truth for its drifting counterparts.
type SteadyClock struct {
	Start, Step float64
}

// NewSteadyClock creates an ideal clock from the start value and per-step increment.
func NewSteadyClock(start, step float64) *SteadyClock {
	return &SteadyClock{start, step}
}

// Observe implements the Source interface.
func (c SteadyClock) Observe(k int) float64 {
	return c.Start + c.Step*float64(k+1)
}

// Reset implements the Source interface. An ideal clock carries no state.
func (c SteadyClock) Reset() {}

// String implements the Stringer interface.
func (c SteadyClock) String() string {
	return fmt.Sprintf("SteadyClock{start=%g step=%g}", c.Start, c.Step)
}

// DriftingClock is a simulated clock whose value advances by |N(step, σ)| per
// observation, the magnitude keeping it monotonic. It implements the Source
// interface.
type DriftingClock struct {
	start, cur float64
	dist       distuv.Normal
}

// NewDriftingClock creates a drifting clock.
// Parameters:
// - start: initial clock value
// - step: nominal per-observation increment
// - σ: standard deviation of the increment
// - seed: seed for the increment stream, for reproducible simulations
func NewDriftingClock(start, step, σ float64, seed uint64) *DriftingClock {
	dist := distuv.Normal{Mu: step, Sigma: math.Abs(σ), Src: rand.NewPCG(seed, seed)}
	return &DriftingClock{start, start, dist}
}

// Observe implements the Source interface. The step index is ignored since
// the clock accumulates its own drift.
func (c *DriftingClock) Observe(k int) float64 {
	c.cur += math.Abs(c.dist.Rand())
	return c.cur
}

// Reset implements the Source interface. The clock returns to its start value
// without reseeding, so successive runs see fresh increments.
func (c *DriftingClock) Reset() {
	c.cur = c.start
}

// String implements the Stringer interface.
func (c *DriftingClock) String() string {
	return fmt.Sprintf("DriftingClock{start=%g step=%g σ=%g}", c.start, c.dist.Mu, c.dist.Sigma)
}

// Replay replays a recorded observation slice. It implements the Source
// interface.
type Replay struct {
	values []float64
}

// NewReplay creates a source that replays the provided observations.
func NewReplay(values []float64) *Replay {
	return &Replay{values}
}

// Observe implements the Source interface.
func (r *Replay) Observe(k int) float64 {
	if k >= len(r.values) {
		panic(fmt.Errorf("no observation recorded at step k=%d", k))
	}
	return r.values[k]
}

// Reset implements the Source interface.
func (r *Replay) Reset() {}

// String implements the Stringer interface.
func (r *Replay) String() string {
	return fmt.Sprintf("Replay{%d observations}", len(r.values))
}

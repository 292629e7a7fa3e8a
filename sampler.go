package kalmanfusion

import (
	"fmt"
	"time"

	"github.com/tstellanova/kalman-fusion/internal/timeutil"
)

// ClockSampler observes the host clock in seconds since the Unix epoch,
// sleeping until the next interval boundary before each sample. It implements
// the Source interface and is the live counterpart of the simulated clocks.
type ClockSampler struct {
	clock    timeutil.Clock
	interval time.Duration
}

// NewClockSampler creates a sampler reading the provided clock every interval.
func NewClockSampler(clock timeutil.Clock, interval time.Duration) *ClockSampler {
	if interval <= 0 {
		panic(fmt.Errorf("kalmanfusion: sampling interval %s must be positive", interval))
	}
	return &ClockSampler{clock, interval}
}

// Observe implements the Source interface. It blocks until the next interval
// boundary and returns the clock reading in epoch seconds. The step index is
// ignored since the host clock keeps its own time.
func (s *ClockSampler) Observe(k int) float64 {
	now := s.clock.Now()
	s.clock.Sleep(now.Truncate(s.interval).Add(s.interval).Sub(now))
	return float64(s.clock.Now().UnixNano()) / 1e9
}

// Reset implements the Source interface. The host clock cannot rewind.
func (s *ClockSampler) Reset() {}

// String implements the Stringer interface.
func (s *ClockSampler) String() string {
	return fmt.Sprintf("ClockSampler{interval=%s}", s.interval)
}

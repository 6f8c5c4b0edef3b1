package sampling

import (
	"errors"
)

// Scheduler decides which decoded frame indices are retained to hit a target
// output rate. It keeps a real-valued threshold that advances by the frame
// interval on every emission, so fractional drift accumulates across steps and
// the long-run average converges to the target rate even when the interval is
// non-integral. The threshold is never reset or rounded.
type Scheduler struct {
	interval float64
	next     float64
}

// NewScheduler builds a scheduler for the given native and target frame rates.
func NewScheduler(nativeFPS, targetFPS float64) (*Scheduler, error) {
	if nativeFPS <= 0 {
		return nil, errors.New("sampling: native fps must be positive")
	}
	if targetFPS <= 0 {
		return nil, errors.New("sampling: target fps must be positive")
	}
	return &Scheduler{interval: nativeFPS / targetFPS}, nil
}

// Interval reports the real-valued frame interval (native fps / target fps).
func (s *Scheduler) Interval() float64 {
	return s.interval
}

// ShouldEmit reports whether the frame at the given index is retained. Frame
// indices must be fed in strictly increasing order starting at 0; each call
// that returns true advances the internal threshold by the frame interval.
func (s *Scheduler) ShouldEmit(frameIndex int) bool {
	if float64(frameIndex) < s.next {
		return false
	}
	s.next += s.interval
	return true
}

package anim

import "time"

// Playback applies the frame budget of an interactive session.
type Playback struct {
	Frames int // <= 0 plays forever
	Loop   bool
}

// Next returns the frame after f. done reports that a bounded, non-looping
// run has no next frame; f is returned unchanged in that case.
func (p Playback) Next(f int) (next int, done bool) {
	n := f + 1
	if p.Frames > 0 && n >= p.Frames {
		if !p.Loop {
			return f, true
		}
		return 0, false
	}
	return n, false
}

// Accumulator converts wall-clock deltas into whole frame ticks.
type Accumulator struct {
	Interval time.Duration
	acc      time.Duration
}

// Add records dt and returns how many frame intervals have elapsed.
// A non-positive interval ticks once per call.
func (a *Accumulator) Add(dt time.Duration) int {
	if a.Interval <= 0 {
		return 1
	}
	a.acc += dt
	n := int(a.acc / a.Interval)
	a.acc -= time.Duration(n) * a.Interval
	return n
}

// Reset drops any partial interval.
func (a *Accumulator) Reset() { a.acc = 0 }

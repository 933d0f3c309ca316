package scene

import (
	"math"
	"time"
)

// MaxFrameDt bounds the wall-clock interval fed into a single tick.
const MaxFrameDt = 0.05

// FrameDt converts a raw frame interval into a simulation increment:
// the interval is clamped to MaxFrameDt, then scaled by the time
// multiplier. Negative inputs yield 0.
func FrameDt(raw, timeScale float64) float64 {
	return clampDt(raw, MaxFrameDt, timeScale)
}

func clampDt(raw, limit, timeScale float64) float64 {
	if raw <= 0 || timeScale <= 0 {
		return 0
	}
	if limit > 0 {
		raw = min(raw, limit)
	}
	return raw * timeScale
}

// Clock turns frame timestamps into simulation increments for a driver
// loop. MaxDt may tighten the clamp but never loosen it past MaxFrameDt.
// The zero value clamps to MaxFrameDt at normal speed.
type Clock struct {
	MaxDt     float64
	TimeScale float64

	last time.Time
}

// Tick returns the increment since the previous Tick. The first call
// after construction or Restart returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	raw := now.Sub(c.last).Seconds()
	c.last = now

	limit, scale := c.MaxDt, c.TimeScale
	if limit <= 0 || limit > MaxFrameDt {
		limit = MaxFrameDt
	}
	if scale == 0 {
		scale = 1
	}
	return clampDt(raw, limit, scale)
}

// Restart forgets the previous timestamp, e.g. after a pause.
func (c *Clock) Restart() { c.last = time.Time{} }

// SubSteps splits dt into n equal slices no longer than MaxFrameDt.
func SubSteps(dt float64) (n int, h float64) {
	if dt <= 0 {
		return 0, 0
	}
	n = int(math.Ceil(dt/MaxFrameDt - 1e-9))
	if n < 1 {
		n = 1
	}
	return n, dt / float64(n)
}

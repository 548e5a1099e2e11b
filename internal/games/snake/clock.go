package snake

import (
	"context"
	"time"
)

// Clock accumulates elapsed frame time and decides when a tick is due.
// It is decoupled from the render rate: frames arrive as often as the
// front-end likes, ticks happen once per tick interval.
type Clock struct {
	acc time.Duration
}

// Advance adds delta to the accumulator. When the accumulated time reaches
// interval the accumulator is reset to zero and Advance returns true.
// Negative deltas are ignored.
func (c *Clock) Advance(delta, interval time.Duration) bool {
	if delta > 0 {
		c.acc += delta
	}
	if c.acc >= interval {
		c.acc = 0
		return true
	}
	return false
}

// Elapsed returns the time accumulated since the last tick.
func (c *Clock) Elapsed() time.Duration {
	return c.acc
}

// Reset discards the accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}

// RunFrames calls fn with the wall time elapsed since the previous frame,
// fps times per second, until ctx is cancelled. It is the headless
// counterpart of the TUI frame loop.
func RunFrames(ctx context.Context, fps int, fn func(delta time.Duration)) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(now.Sub(last))
			last = now
		}
	}
}

package main

import "time"

// runState is the frame scheduler state.
type runState int

const (
	runStopped runState = iota
	runRunning
)

// frameClock owns the Stopped/Running transitions and the per-frame elapsed
// time. The elapsed value is clamped so a stall (or a platform without
// visibility events) cannot inject a large simulation jump, and the pending
// handle makes cancellation idempotent under rapid hide/show toggles.
type frameClock struct {
	state  runState
	last   time.Time
	handle int
}

// start transitions Stopped to Running, issuing a fresh frame handle. It
// reports whether a transition happened; starting an already running clock is
// a no-op.
func (c *frameClock) start(now time.Time) bool {
	if c.state == runRunning {
		return false
	}
	c.state = runRunning
	c.last = now
	c.handle++
	return true
}

// stop cancels the pending frame and parks the clock. Stopping an already
// stopped clock is a no-op.
func (c *frameClock) stop() bool {
	if c.state == runStopped {
		return false
	}
	c.state = runStopped
	c.handle++
	return true
}

// running reports whether frames are currently scheduled.
func (c *frameClock) running() bool {
	return c.state == runRunning
}

// tick returns the elapsed wall time since the previous frame in seconds,
// clamped to maxFrameDelta. It reports false while the clock is stopped.
func (c *frameClock) tick(now time.Time) (float64, bool) {
	if c.state != runRunning {
		return 0, false
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameDelta {
		elapsed = maxFrameDelta
	}
	return elapsed.Seconds(), true
}

package main

import (
	"testing"
	"time"
)

func TestFrameClockStoppedTick(t *testing.T) {
	var c frameClock
	if dt, ok := c.tick(time.Now()); ok || dt != 0 {
		t.Fatalf("tick on stopped clock = (%v, %v), want (0, false)", dt, ok)
	}
}

func TestFrameClockTickElapsed(t *testing.T) {
	var c frameClock
	now := time.Now()
	c.start(now)

	dt, ok := c.tick(now.Add(10 * time.Millisecond))
	if !ok {
		t.Fatal("tick on running clock reported not ok")
	}
	if dt != 0.010 {
		t.Fatalf("elapsed = %v, want 0.010", dt)
	}
}

func TestFrameClockClampsStalls(t *testing.T) {
	var c frameClock
	now := time.Now()
	c.start(now)

	dt, ok := c.tick(now.Add(500 * time.Millisecond))
	if !ok || dt != maxFrameDelta.Seconds() {
		t.Fatalf("stalled elapsed = (%v, %v), want (%v, true)", dt, ok, maxFrameDelta.Seconds())
	}

	dt, ok = c.tick(now.Add(400 * time.Millisecond))
	if !ok || dt != 0 {
		t.Fatalf("backwards elapsed = (%v, %v), want (0, true)", dt, ok)
	}
}

func TestFrameClockIdempotentTransitions(t *testing.T) {
	var c frameClock
	now := time.Now()

	if !c.start(now) {
		t.Fatal("first start reported no transition")
	}
	if c.start(now) {
		t.Fatal("second start transitioned again")
	}
	if !c.running() {
		t.Fatal("clock not running after start")
	}

	if !c.stop() {
		t.Fatal("first stop reported no transition")
	}
	if c.stop() {
		t.Fatal("second stop transitioned again")
	}
	if c.running() {
		t.Fatal("clock still running after stop")
	}
}

func TestFrameClockRapidHideShow(t *testing.T) {
	var c frameClock
	now := time.Now()

	c.start(now)
	h := c.handle
	for i := 0; i < 10; i++ {
		c.stop()
		c.start(now)
	}
	if c.handle != h+20 {
		t.Fatalf("handle advanced %d, want exactly one increment per transition", c.handle-h)
	}
	if !c.running() {
		t.Fatal("clock not running after hide/show churn")
	}

	// The restart resets the reference instant, so the first tick after the
	// churn measures from the last start, not from before it.
	dt, ok := c.tick(now.Add(5 * time.Millisecond))
	if !ok || dt != 0.005 {
		t.Fatalf("post-churn elapsed = (%v, %v), want (0.005, true)", dt, ok)
	}
}

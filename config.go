package main

import "time"

// Rendering and simulation configuration constants used throughout the
// application. These values define the mesh resolution bounds, the wave and
// pointer tuning, and the frame timing behavior of the field background.
const (
	defaultWindowW = 1366
	defaultWindowH = 768

	// Mesh resolution bounds. The effective line counts chosen by density
	// adaptation always land inside these ranges so the per-frame node count
	// stays bounded.
	minHLines = 24
	maxHLines = 96
	minVLines = 12
	maxVLines = 56

	// Density adaptation. The scale factor compares the viewport area against
	// the reference area and applies a penalty for narrow viewports before the
	// user multiplier is folded in.
	refViewportW       = 1366.0
	refViewportH       = 768.0
	narrowViewportW    = 720.0
	narrowPenalty      = 0.82
	minDensityScale    = 0.5
	maxDensityScale    = 2.0
	strokeCompExponent = 0.6
	minStrokeComp      = 0.5
	maxStrokeComp      = 1.6
	baseStrokeWidth    = 1.1

	// Wave displacement. Spatial frequencies and phase offsets are fixed; the
	// kScale parameter multiplies the spatial terms and amp/amp2 bound the
	// displacement in pixels.
	waveFreqX1, waveFreqY1, waveRateT1, wavePhase1 = 2.4, 1.6, 1.15, 0.0
	waveFreqX2, waveFreqY2, waveRateT2, wavePhase2 = 3.2, -2.1, -0.85, 2.0
	waveFreqX3, waveFreqY3, waveRateT3, wavePhase3 = 1.2, 3.4, 0.55, 4.1

	waveMixX2 = 0.6
	waveMixY1 = 0.85
	waveMixY3 = 0.5

	// Pointer drift. Velocity magnitude is normalized by velGainMax and the
	// result clamps to [0, 1] so fast pointer motion cannot produce runaway
	// displacement.
	velGainMax    = 900.0
	driftPixels   = 26.0
	driftPerpMix  = 0.65
	driftTanMix   = 0.35
	pointerDamp   = 0.90
	springFreq    = 6.0
	springDamping = 0.8

	// Brightness. Per-line alpha is the baseline plus the averaged Gaussian
	// boost, clamped to maxStrokeAlpha.
	maxStrokeAlpha  = 0.42
	velBoostGain    = 0.08
	glowBoostFloor  = 0.05
	vLineAlphaRatio = 0.85

	// Idle autopilot timing, adopted from the scripted walk in the original
	// listener simulation.
	idleAutoDelay     = 6 * time.Second
	autoHeadingMin    = 20
	autoHeadingJitter = 50
	autoPointerSpeed  = 3.0
	autoPointerMargin = 0.08

	// Frame timing.
	maxFrameDelta  = 50 * time.Millisecond
	defaultTPS     = 60.0
	minDeviceScale = 1.0
	maxDeviceScale = 2.0

	pgoRecordDuration = 15 * time.Second
)

package main

import "math"

// fieldParams bundles the frame-constant inputs of the mesh displacement
// model. One value is built per frame from the parameter snapshot and the
// pointer state, then shared read-only by every populate worker.
type fieldParams struct {
	width  float64
	height float64
	t      float64

	amp    float64
	amp2   float64
	kScale float64

	pointerX float64
	pointerY float64
	velX     float64
	velY     float64
	velGain  float64

	radius   float64
	strength float64
}

// waveOffset evaluates the three additive sinusoidal wave terms for a
// normalized grid position. Displacement is continuous in t and bounded by
// amp+amp2 pixels on each axis.
func waveOffset(nx, ny, t, amp, amp2, k float64) (float64, float64) {
	w1 := math.Sin((waveFreqX1*nx+waveFreqY1*ny)*k*math.Pi + waveRateT1*t + wavePhase1)
	w2 := math.Sin((waveFreqX2*nx+waveFreqY2*ny)*k*math.Pi + waveRateT2*t + wavePhase2)
	w3 := math.Sin((waveFreqX3*nx+waveFreqY3*ny)*k*math.Pi + waveRateT3*t + wavePhase3)
	dx := amp*w1 + amp2*waveMixX2*w3
	dy := amp*waveMixY1*w2 + amp2*waveMixY3*w3
	return dx, dy
}

// pointerInfluence computes the Gaussian falloff for a pointer-relative
// offset: 1 at the pointer, decaying smoothly to ~0 beyond a few radii. A
// non-positive radius yields zero influence rather than a non-finite result.
func pointerInfluence(pdx, pdy, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Exp(-(pdx*pdx + pdy*pdy) / (2 * radius * radius))
}

// driftOffset derives the pointer-drift displacement for one node: a
// component perpendicular to the smoothed velocity and a component tangential
// to the pointer-to-node radius vector, both scaled by the Gaussian influence
// and the clamped velocity gain. A stationary pointer yields zero drift.
func driftOffset(fp *fieldParams, pdx, pdy, infl float64) (float64, float64) {
	if fp.strength <= 0 || fp.velGain <= 0 || infl <= 0 {
		return 0, 0
	}
	speed := math.Hypot(fp.velX, fp.velY)
	if speed < 1e-9 {
		return 0, 0
	}
	perpX := -fp.velY / speed
	perpY := fp.velX / speed

	var tanX, tanY float64
	if dist := math.Hypot(pdx, pdy); dist > 1e-9 {
		tanX = -pdy / dist
		tanY = pdx / dist
	}

	scale := driftPixels * fp.strength * infl * fp.velGain
	dx := scale * (driftPerpMix*perpX + driftTanMix*tanX)
	dy := scale * (driftPerpMix*perpY + driftTanMix*tanY)
	return dx, dy
}

// normalizedIndex maps a grid index to [0, 1], collapsing to the midpoint
// when the dimension is a single line.
func normalizedIndex(i, count int) float64 {
	if count <= 1 {
		return 0.5
	}
	return float64(i) / float64(count-1)
}

// nodePoint maps one grid index to its displaced display-space position.
func nodePoint(fp *fieldParams, cols, rows, ix, iy int) (float64, float64) {
	nx := normalizedIndex(ix, cols)
	ny := normalizedIndex(iy, rows)
	baseX := nx * fp.width
	baseY := ny * fp.height

	waveX, waveY := waveOffset(nx, ny, fp.t, fp.amp, fp.amp2, fp.kScale)

	pdx := baseX - fp.pointerX
	pdy := baseY - fp.pointerY
	infl := pointerInfluence(pdx, pdy, fp.radius)
	driftX, driftY := driftOffset(fp, pdx, pdy, infl)

	return baseX + waveX + driftX, baseY + waveY + driftY
}

// populateRange fills the displaced node positions for the row range
// [y0, y1). Rows outside the buffer are skipped.
func populateRange(buf *meshBuffer, fp *fieldParams, y0, y1 int) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > buf.rows {
		y1 = buf.rows
	}
	for iy := y0; iy < y1; iy++ {
		base := iy * buf.cols
		for ix := 0; ix < buf.cols; ix++ {
			x, y := nodePoint(fp, buf.cols, buf.rows, ix, iy)
			buf.xs[base+ix] = float32(x)
			buf.ys[base+ix] = float32(y)
		}
	}
}

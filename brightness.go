package main

// rowBoost averages the per-node Gaussian pointer falloff over one horizontal
// polyline of the mesh.
func rowBoost(buf *meshBuffer, iy int, pointerX, pointerY, radius float64) float64 {
	if buf.cols == 0 {
		return 0
	}
	base := iy * buf.cols
	var sum float64
	for ix := 0; ix < buf.cols; ix++ {
		pdx := float64(buf.xs[base+ix]) - pointerX
		pdy := float64(buf.ys[base+ix]) - pointerY
		sum += pointerInfluence(pdx, pdy, radius)
	}
	return sum / float64(buf.cols)
}

// colBoost averages the per-node Gaussian pointer falloff over one vertical
// polyline of the mesh.
func colBoost(buf *meshBuffer, ix int, pointerX, pointerY, radius float64) float64 {
	if buf.rows == 0 {
		return 0
	}
	var sum float64
	for iy := 0; iy < buf.rows; iy++ {
		i := iy*buf.cols + ix
		pdx := float64(buf.xs[i]) - pointerX
		pdy := float64(buf.ys[i]) - pointerY
		sum += pointerInfluence(pdx, pdy, radius)
	}
	return sum / float64(buf.rows)
}

// strokeAlpha combines the baseline alpha with the averaged pointer boost and
// the velocity-driven extra boost, clamped to [0, maxStrokeAlpha] so extreme
// inputs never over-saturate a stroke.
func strokeAlpha(baseAlpha, boostAlpha, velBoost, avgBoost float64) float64 {
	return clampFloat(baseAlpha+(boostAlpha+velBoost)*avgBoost, 0, maxStrokeAlpha)
}

// velocityBoost converts the clamped velocity gain into the extra alpha
// contribution; the ceiling is velBoostGain by construction.
func velocityBoost(velGain float64) float64 {
	return velBoostGain * clampFloat(velGain, 0, 1)
}

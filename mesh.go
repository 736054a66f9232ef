package main

import "math"

// meshBuffer stores the displaced node positions for the current frame as two
// flat arrays indexed by iy*cols+ix. The buffers are resized only when the
// line counts change and are reused across frames.
type meshBuffer struct {
	cols int
	rows int
	xs   []float32
	ys   []float32
}

// newMeshBuffer allocates a buffer for the given line counts.
func newMeshBuffer(cols, rows int) *meshBuffer {
	m := &meshBuffer{}
	m.resize(cols, rows)
	return m
}

// resize reallocates the node arrays when the dimensions change. It reports
// whether a reallocation happened; calling it again with the same dimensions
// is a no-op.
func (m *meshBuffer) resize(cols, rows int) bool {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if m.cols == cols && m.rows == rows && len(m.xs) == cols*rows {
		return false
	}
	m.cols = cols
	m.rows = rows
	m.xs = make([]float32, cols*rows)
	m.ys = make([]float32, cols*rows)
	return true
}

// idx returns the flat index of a grid node.
func (m *meshBuffer) idx(ix, iy int) int {
	return iy*m.cols + ix
}

// node returns the displaced position of a grid node.
func (m *meshBuffer) node(ix, iy int) (float32, float32) {
	i := m.idx(ix, iy)
	return m.xs[i], m.ys[i]
}

// clampInt constrains v to lie within the inclusive [min, max] range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampFloat constrains v to lie within the inclusive [min, max] range.
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// densityScale derives the mesh density multiplier from the viewport area, a
// narrow-viewport penalty, and the user density parameter.
func densityScale(width, height, userMult float64) float64 {
	if width <= 0 || height <= 0 {
		return minDensityScale
	}
	scale := math.Sqrt((width * height) / (refViewportW * refViewportH))
	if width < narrowViewportW {
		scale *= narrowPenalty
	}
	return clampFloat(scale*userMult, minDensityScale, maxDensityScale)
}

// effectiveLines converts the preset base counts and a density scale into
// clamped line counts. Horizontal counts stay in [24, 96] and vertical counts
// in [12, 56] so the per-frame node budget is bounded.
func effectiveLines(baseH, baseV int, scale float64) (int, int) {
	h := clampInt(int(math.Round(float64(baseH)*scale)), minHLines, maxHLines)
	v := clampInt(int(math.Round(float64(baseV)*scale)), minVLines, maxVLines)
	return h, v
}

// strokeCompensation returns the width/alpha multiplier that keeps perceived
// brightness roughly density-invariant: a denser mesh draws proportionally
// thinner and dimmer strokes via an inverse power law on the node-count
// ratio.
func strokeCompensation(baseH, baseV, effH, effV int) float64 {
	baseNodes := float64(baseH * baseV)
	effNodes := float64(effH * effV)
	if baseNodes <= 0 || effNodes <= 0 {
		return 1
	}
	comp := math.Pow(baseNodes/effNodes, strokeCompExponent)
	return clampFloat(comp, minStrokeComp, maxStrokeComp)
}

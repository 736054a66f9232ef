package main

import (
	"math"
	"testing"
)

func homeFieldParams() fieldParams {
	ov := pageHome.overrides()
	return fieldParams{
		width:    1366,
		height:   768,
		t:        0,
		amp:      ov.amp,
		amp2:     ov.amp2,
		kScale:   1.0,
		pointerX: 0.5 * 1366,
		pointerY: 0.45 * 768,
		radius:   240,
		strength: 1.0,
	}
}

func TestNodePointFinite(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
		fp         fieldParams
	}{
		{"typical", 46, 22, fieldParams{width: 1366, height: 768, t: 12.5, amp: 20, amp2: 16, kScale: 1, pointerX: 100, pointerY: 100, velX: 300, velY: -200, velGain: 0.4, radius: 240, strength: 1}},
		{"single column", 1, 22, fieldParams{width: 1366, height: 768, amp: 20, amp2: 16, kScale: 1, radius: 240, strength: 1}},
		{"single row", 46, 1, fieldParams{width: 1366, height: 768, amp: 20, amp2: 16, kScale: 1, radius: 240, strength: 1}},
		{"single node", 1, 1, fieldParams{width: 1366, height: 768, amp: 20, amp2: 16, kScale: 1, radius: 240, strength: 1}},
		{"pointer on node", 3, 3, fieldParams{width: 100, height: 100, amp: 20, amp2: 16, kScale: 1, pointerX: 50, pointerY: 50, velX: 500, velY: 0, velGain: 1, radius: 240, strength: 2.5}},
		{"zero radius", 46, 22, fieldParams{width: 1366, height: 768, amp: 20, amp2: 16, kScale: 1, velX: 1e9, velY: 1e9, velGain: 1, radius: 0, strength: 2.5}},
		{"huge time", 46, 22, fieldParams{width: 1366, height: 768, t: 1e7, amp: 20, amp2: 16, kScale: 3, pointerX: -1e5, pointerY: 1e5, velX: 1e6, velY: -1e6, velGain: 1, radius: 120, strength: 2.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for iy := 0; iy < tc.rows; iy++ {
				for ix := 0; ix < tc.cols; ix++ {
					x, y := nodePoint(&tc.fp, tc.cols, tc.rows, ix, iy)
					if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
						t.Fatalf("nodePoint(%d,%d) = (%v, %v), want finite", ix, iy, x, y)
					}
				}
			}
		})
	}
}

func TestNodePointRestIsPureWave(t *testing.T) {
	fp := homeFieldParams()
	// Pointer parked far outside the mesh with zero velocity: the drift term
	// must vanish and leave only the wave displacement.
	fp.pointerX = -1e6
	fp.pointerY = -1e6
	fp.velGain = 0

	for iy := 0; iy < 22; iy++ {
		for ix := 0; ix < 46; ix++ {
			nx := normalizedIndex(ix, 46)
			ny := normalizedIndex(iy, 22)
			waveX, waveY := waveOffset(nx, ny, fp.t, fp.amp, fp.amp2, fp.kScale)
			wantX := nx*fp.width + waveX
			wantY := ny*fp.height + waveY
			gotX, gotY := nodePoint(&fp, 46, 22, ix, iy)
			if gotX != wantX || gotY != wantY {
				t.Fatalf("node (%d,%d) = (%v, %v), want pure wave (%v, %v)", ix, iy, gotX, gotY, wantX, wantY)
			}
		}
	}
}

func TestNodePointDisplacementBounded(t *testing.T) {
	fp := homeFieldParams()
	fp.velX = 5000
	fp.velY = -5000
	fp.velGain = 1
	fp.strength = 2.5
	fp.t = 33.7

	limit := fp.amp + fp.amp2 + driftPixels*fp.strength + 1e-6
	for iy := 0; iy < 22; iy++ {
		for ix := 0; ix < 46; ix++ {
			nx := normalizedIndex(ix, 46)
			ny := normalizedIndex(iy, 22)
			x, y := nodePoint(&fp, 46, 22, ix, iy)
			if dx := math.Abs(x - nx*fp.width); dx > limit {
				t.Fatalf("node (%d,%d) x displaced %v, limit %v", ix, iy, dx, limit)
			}
			if dy := math.Abs(y - ny*fp.height); dy > limit {
				t.Fatalf("node (%d,%d) y displaced %v, limit %v", ix, iy, dy, limit)
			}
		}
	}
}

func TestPopulateRangeDeterministic(t *testing.T) {
	fp := homeFieldParams()
	fp.velX = 120
	fp.velY = 60
	fp.velGain = 0.2

	a := newMeshBuffer(46, 22)
	b := newMeshBuffer(46, 22)
	populateRange(a, &fp, 0, a.rows)
	populateRange(b, &fp, 0, b.rows)
	for i := range a.xs {
		if a.xs[i] != b.xs[i] || a.ys[i] != b.ys[i] {
			t.Fatalf("node %d differs between identical populate passes", i)
		}
	}
}

// Golden baseline: preset home at 1366x768, t=0, pointer parked at
// (0.5, 0.45) with no velocity. Pins the documented wave formula.
func TestPopulateHomeGolden(t *testing.T) {
	fp := homeFieldParams()
	buf := newMeshBuffer(46, 22)
	populateRange(buf, &fp, 0, buf.rows)

	w1 := func(nx, ny float64) float64 {
		return math.Sin((waveFreqX1*nx + waveFreqY1*ny) * math.Pi)
	}
	w2 := func(nx, ny float64) float64 {
		return math.Sin((waveFreqX2*nx+waveFreqY2*ny)*math.Pi + wavePhase2)
	}
	w3 := func(nx, ny float64) float64 {
		return math.Sin((waveFreqX3*nx+waveFreqY3*ny)*math.Pi + wavePhase3)
	}

	checks := []struct{ ix, iy int }{{0, 0}, {45, 0}, {0, 21}, {45, 21}, {23, 11}}
	for _, c := range checks {
		nx := normalizedIndex(c.ix, 46)
		ny := normalizedIndex(c.iy, 22)
		wantX := nx*1366 + 20*w1(nx, ny) + 16*waveMixX2*w3(nx, ny)
		wantY := ny*768 + 20*waveMixY1*w2(nx, ny) + 16*waveMixY3*w3(nx, ny)
		gotX, gotY := buf.node(c.ix, c.iy)
		if math.Abs(float64(gotX)-wantX) > 1e-3 || math.Abs(float64(gotY)-wantY) > 1e-3 {
			t.Fatalf("node (%d,%d) = (%v, %v), want (%v, %v)", c.ix, c.iy, gotX, gotY, wantX, wantY)
		}
	}
}

func TestWorkerPoolMatchesSequential(t *testing.T) {
	fp := homeFieldParams()
	fp.velX = 200
	fp.velY = -150
	fp.velGain = 0.3

	want := newMeshBuffer(46, 22)
	populateRange(want, &fp, 0, want.rows)

	pool := newMeshWorkerPool()
	pool.count = 3
	pool.start()
	got := newMeshBuffer(46, 22)
	pool.run(got, &fp)

	for i := range want.xs {
		if want.xs[i] != got.xs[i] || want.ys[i] != got.ys[i] {
			t.Fatalf("node %d: pool result differs from sequential populate", i)
		}
	}
}

func TestAssignRowBandsCoversAllRows(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 7, 16} {
		for _, rows := range []int{1, 12, 22, 56} {
			bands := assignRowBands(workers, rows)
			covered := make([]bool, rows)
			for _, b := range bands {
				for y := b.y0; y < b.y1; y++ {
					if covered[y] {
						t.Fatalf("workers=%d rows=%d: row %d assigned twice", workers, rows, y)
					}
					covered[y] = true
				}
			}
			for y, ok := range covered {
				if !ok {
					t.Fatalf("workers=%d rows=%d: row %d unassigned", workers, rows, y)
				}
			}
		}
	}
}

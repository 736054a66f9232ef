package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game owns the engine state: viewport, clock, mesh buffers, pointer model,
// and the per-frame schedule. It implements ebiten.Game; Update is the sole
// writer of the geometry buffers.
type Game struct {
	store  *paramStore
	pg     page
	preset presetOverrides

	clock   frameClock
	pointer *pointerModel
	mesh    *meshBuffer
	pool    *meshWorkerPool
	panel   *sliderPanel

	t float64

	outsideW int
	outsideH int
	width    float64
	height   float64
	dpr      float64

	snap paramSnapshot
	fp   fieldParams
	comp float64

	rowAlpha  []float64
	rowBoosts []float64
	colAlpha  []float64
	colBoosts []float64

	vs []ebiten.Vertex
	is []uint16

	staticFrameDone bool
	lastPopulate    time.Duration

	recorder *profileRecorder
}

// newGame constructs a fully initialized engine for the selected page preset.
func newGame(store *paramStore, pg page, panel *sliderPanel, now time.Time) *Game {
	ov := pg.overrides()
	g := &Game{
		store:    store,
		pg:       pg,
		preset:   ov,
		pointer:  newPointerModel(defaultWindowW, defaultWindowH, now),
		pool:     newMeshWorkerPool(),
		panel:    panel,
		outsideW: defaultWindowW,
		outsideH: defaultWindowH,
		width:    defaultWindowW,
		height:   defaultWindowH,
		dpr:      1,
		comp:     1,
	}
	g.mesh = newMeshBuffer(ov.vLines, ov.hLines)
	g.resizeLineState()
	g.snap = store.Snapshot()
	if !*reducedMotionFlag {
		g.pool.start()
		g.clock.start(now)
	}
	return g
}

// Update runs one engine frame: ingest parameters, advance the clock and
// pointer, repopulate the mesh, and refresh the per-line brightness.
func (g *Game) Update() error {
	now := time.Now()

	if *reducedMotionFlag {
		if !g.staticFrameDone {
			g.renderFrame(0, now)
			g.staticFrameDone = true
		}
		return nil
	}

	g.handleWindowKeys()

	if ebiten.IsWindowMinimized() {
		g.clock.stop()
		g.pointer.decay()
		return nil
	}
	g.clock.start(now)

	dt, ok := g.clock.tick(now)
	if !ok {
		return nil
	}

	g.readPointerInput(now)
	if g.panel != nil {
		g.panel.handleInput(g.store, g.width, g.dpr)
	}
	g.renderFrame(dt, now)

	if g.recorder != nil {
		g.recorder.tick(now)
	}
	return nil
}

// renderFrame applies the viewport and parameter state, advances simulation
// time, and rebuilds the geometry and brightness buffers.
func (g *Game) renderFrame(dt float64, now time.Time) {
	g.applyViewport()
	g.snap = g.store.Snapshot()
	g.applyDensity()

	g.t += dt * g.snap.Speed
	g.pointer.step(g.width, g.height, now)

	g.fp = fieldParams{
		width:    g.width,
		height:   g.height,
		t:        g.t,
		amp:      g.preset.amp * g.snap.Turbulence,
		amp2:     g.preset.amp2 * g.snap.Turbulence,
		kScale:   g.snap.Coherence,
		pointerX: g.pointer.x,
		pointerY: g.pointer.y,
		velX:     g.pointer.vx,
		velY:     g.pointer.vy,
		velGain:  g.pointer.velocityGain(),
		radius:   g.snap.Radius,
		strength: g.snap.Strength,
	}

	start := time.Now()
	g.pool.run(g.mesh, &g.fp)
	g.lastPopulate = time.Since(start)

	g.refreshBrightness()
}

// applyViewport folds the most recent layout dimensions into the engine
// state. Layout may fire many times during a continuous resize; the values
// are read back at most once per frame.
func (g *Game) applyViewport() {
	g.width = float64(g.outsideW)
	g.height = float64(g.outsideH)
	if g.width < 1 {
		g.width = 1
	}
	if g.height < 1 {
		g.height = 1
	}
}

// applyDensity recomputes the effective line counts from the viewport and the
// density parameter, resizing the geometry buffers only when the counts
// actually change.
func (g *Game) applyDensity() {
	scale := densityScale(g.width, g.height, g.snap.Density)
	effH, effV := effectiveLines(g.preset.hLines, g.preset.vLines, scale)
	if g.mesh.resize(effV, effH) {
		g.resizeLineState()
	}
	g.comp = strokeCompensation(g.preset.hLines, g.preset.vLines, effH, effV)
}

// resizeLineState re-sizes the per-line brightness scratch to the mesh shape.
func (g *Game) resizeLineState() {
	g.rowAlpha = make([]float64, g.mesh.rows)
	g.rowBoosts = make([]float64, g.mesh.rows)
	g.colAlpha = make([]float64, g.mesh.cols)
	g.colBoosts = make([]float64, g.mesh.cols)
}

// refreshBrightness recomputes the per-line averaged boost and final alpha
// for every horizontal and vertical polyline.
func (g *Game) refreshBrightness() {
	velB := velocityBoost(g.fp.velGain)
	baseH := g.snap.BaseAlpha * g.comp
	baseV := baseH * vLineAlphaRatio
	for iy := 0; iy < g.mesh.rows; iy++ {
		avg := rowBoost(g.mesh, iy, g.fp.pointerX, g.fp.pointerY, g.snap.Radius)
		g.rowBoosts[iy] = avg
		g.rowAlpha[iy] = strokeAlpha(baseH, g.preset.boostAlpha, velB, avg)
	}
	for ix := 0; ix < g.mesh.cols; ix++ {
		avg := colBoost(g.mesh, ix, g.fp.pointerX, g.fp.pointerY, g.snap.Radius)
		g.colBoosts[ix] = avg
		g.colAlpha[ix] = strokeAlpha(baseV, g.preset.boostAlpha, velB, avg)
	}
}

// readPointerInput feeds the most recent cursor or touch position into the
// pointer model. Positions arrive in device pixels and are converted to the
// logical coordinate space the engine simulates in.
func (g *Game) readPointerInput(now time.Time) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		g.pointer.setTarget(float64(tx)/g.dpr, float64(ty)/g.dpr, now)
		return
	}
	mx, my := ebiten.CursorPosition()
	x := float64(mx) / g.dpr
	y := float64(my) / g.dpr
	if x != g.pointer.targetX || y != g.pointer.targetY {
		if x >= 0 && y >= 0 && x <= g.width && y <= g.height {
			g.pointer.setTarget(x, y, now)
		}
	}
}

// handleWindowKeys processes the panel toggle, fullscreen toggle, and debug
// density nudges.
func (g *Game) handleWindowKeys() {
	if g.panel != nil && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.store.Set(paramDensity, g.store.Get(paramDensity)-0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.store.Set(paramDensity, g.store.Get(paramDensity)+0.1)
	}
}

// Layout reports the screen size in device pixels; the engine simulates in
// logical pixels and scales by the clamped device scale factor while drawing.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW = outsideWidth
	g.outsideH = outsideHeight
	g.dpr = clampFloat(ebiten.Monitor().DeviceScaleFactor(), minDeviceScale, maxDeviceScale)
	return int(float64(outsideWidth) * g.dpr), int(float64(outsideHeight) * g.dpr)
}

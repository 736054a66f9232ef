package main

import (
	"runtime"
	"sync"
)

// rowBand is the half-open row range [y0, y1) assigned to one worker for a
// populate pass.
type rowBand struct {
	y0 int
	y1 int
}

// meshWorkerPool runs the per-frame mesh populate pass across persistent
// goroutines. The frame step remains the sole writer of the geometry buffers;
// workers only ever touch disjoint row bands handed out for the current step.
type meshWorkerPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	count   int
	pending int
	step    int
	started bool

	buf   *meshBuffer
	fp    fieldParams
	bands []rowBand
}

// newMeshWorkerPool sizes the pool for the available CPUs.
func newMeshWorkerPool() *meshWorkerPool {
	p := &meshWorkerPool{count: runtime.NumCPU()}
	if p.count < 1 {
		p.count = 1
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// assignRowBands splits the mesh rows into contiguous bands, one per worker.
// Workers past the last row receive an empty band.
func assignRowBands(workerCount, rows int) []rowBand {
	if workerCount < 1 {
		workerCount = 1
	}
	bands := make([]rowBand, workerCount)
	per := (rows + workerCount - 1) / workerCount
	for i := range bands {
		y0 := i * per
		y1 := y0 + per
		if y0 > rows {
			y0 = rows
		}
		if y1 > rows {
			y1 = rows
		}
		bands[i] = rowBand{y0: y0, y1: y1}
	}
	return bands
}

// start launches the background populate goroutines once.
func (p *meshWorkerPool) start() {
	if p.started {
		return
	}
	p.started = true
	for i := 0; i < p.count; i++ {
		go p.workerLoop(i)
	}
}

// workerLoop waits for populate steps and fills the rows assigned to this
// worker.
func (p *meshWorkerPool) workerLoop(index int) {
	lastStep := 0
	p.mu.Lock()
	for {
		for p.step == lastStep {
			p.cond.Wait()
		}
		lastStep = p.step
		var band rowBand
		if index < len(p.bands) {
			band = p.bands[index]
		}
		buf := p.buf
		fp := p.fp
		p.mu.Unlock()

		if buf != nil && band.y1 > band.y0 {
			populateRange(buf, &fp, band.y0, band.y1)
		}

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// run executes one synchronous populate pass over the whole buffer. Small
// meshes skip the pool and fill inline; everything else fans out across the
// workers and blocks until the pass completes.
func (p *meshWorkerPool) run(buf *meshBuffer, fp *fieldParams) {
	if buf == nil || buf.rows == 0 || buf.cols == 0 {
		return
	}
	if !p.started || buf.rows < p.count*2 {
		populateRange(buf, fp, 0, buf.rows)
		return
	}
	p.mu.Lock()
	p.buf = buf
	p.fp = *fp
	p.bands = assignRowBands(p.count, buf.rows)
	p.pending = p.count
	p.step++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.buf = nil
	p.mu.Unlock()
}

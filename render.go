package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shared 1x1 white source for stroked triangles.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Stroke tint for the mesh lines; alpha is supplied per polyline.
const (
	strokeTintR = float32(198.0 / 255.0)
	strokeTintG = float32(212.0 / 255.0)
	strokeTintB = float32(1.0)
)

// Draw renders the displaced mesh as stroked polylines: one pass at the
// per-line alpha, then an additive glow pass restroking the lines whose
// averaged pointer boost crosses the floor.
func (g *Game) Draw(screen *ebiten.Image) {
	g.strokeMesh(screen, false)
	g.strokeMesh(screen, true)

	if g.panel != nil {
		g.panel.draw(screen, g.width, g.dpr, g.store)
	}
	if *debugFlag {
		g.drawDebugOverlay(screen)
	}
}

// strokeMesh accumulates every polyline of one pass into the reusable vertex
// buffers and issues a single triangle draw. The baseline pass draws all
// lines with their full per-line alpha; the glow pass draws only boosted
// lines, using the boost share of the alpha and additive ("lighten")
// blending.
func (g *Game) strokeMesh(dst *ebiten.Image, glow bool) {
	width := float32(baseStrokeWidth * g.comp * g.dpr)

	baseH := g.snap.BaseAlpha * g.comp
	baseV := baseH * vLineAlphaRatio

	g.vs = g.vs[:0]
	g.is = g.is[:0]

	for iy := 0; iy < g.mesh.rows; iy++ {
		alpha := g.rowAlpha[iy]
		if glow {
			if g.rowBoosts[iy] < glowBoostFloor {
				continue
			}
			alpha = clampFloat(alpha-baseH, 0, maxStrokeAlpha)
		}
		if alpha <= 0 || g.mesh.cols < 2 {
			continue
		}
		g.appendRowStroke(iy, width, float32(alpha))
	}
	for ix := 0; ix < g.mesh.cols; ix++ {
		alpha := g.colAlpha[ix]
		if glow {
			if g.colBoosts[ix] < glowBoostFloor {
				continue
			}
			alpha = clampFloat(alpha-baseV, 0, maxStrokeAlpha)
		}
		if alpha <= 0 || g.mesh.rows < 2 {
			continue
		}
		g.appendColStroke(ix, width, float32(alpha))
	}

	if len(g.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if glow {
		op.Blend = ebiten.BlendLighter
	}
	dst.DrawTriangles(g.vs, g.is, whiteSubImage, op)
}

// appendRowStroke appends the stroke geometry of one horizontal polyline.
func (g *Game) appendRowStroke(iy int, width, alpha float32) {
	s := float32(g.dpr)
	base := iy * g.mesh.cols
	var path vector.Path
	path.MoveTo(g.mesh.xs[base]*s, g.mesh.ys[base]*s)
	for ix := 1; ix < g.mesh.cols; ix++ {
		path.LineTo(g.mesh.xs[base+ix]*s, g.mesh.ys[base+ix]*s)
	}
	g.appendStroke(&path, width, alpha)
}

// appendColStroke appends the stroke geometry of one vertical polyline.
func (g *Game) appendColStroke(ix int, width, alpha float32) {
	s := float32(g.dpr)
	var path vector.Path
	path.MoveTo(g.mesh.xs[ix]*s, g.mesh.ys[ix]*s)
	for iy := 1; iy < g.mesh.rows; iy++ {
		i := iy*g.mesh.cols + ix
		path.LineTo(g.mesh.xs[i]*s, g.mesh.ys[i]*s)
	}
	g.appendStroke(&path, width, alpha)
}

// appendStroke tessellates the path into the shared buffers and tints the new
// vertices.
func (g *Game) appendStroke(path *vector.Path, width, alpha float32) {
	opts := &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	n := len(g.vs)
	g.vs, g.is = path.AppendVerticesAndIndicesForStroke(g.vs, g.is, opts)
	for i := n; i < len(g.vs); i++ {
		g.vs[i].SrcX = 1
		g.vs[i].SrcY = 1
		g.vs[i].ColorR = strokeTintR
		g.vs[i].ColorG = strokeTintG
		g.vs[i].ColorB = strokeTintB
		g.vs[i].ColorA = alpha
	}
}

// drawDebugOverlay prints frame statistics in the corner.
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nmesh: %dx%d (%d nodes)\npopulate: %.2f ms\npointer gain: %.2f\npreset: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.mesh.cols, g.mesh.rows, g.mesh.cols*g.mesh.rows,
		g.lastPopulate.Seconds()*1000,
		g.fp.velGain, g.pg.name())
	ebitenutil.DebugPrint(screen, msg)
}

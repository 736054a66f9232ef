package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Panel layout in logical pixels.
const (
	panelMargin = 16.0
	panelWidth  = 252.0
	panelPad    = 14.0
	sliderRowH  = 42.0
	trackInset  = 4.0
	knobRadius  = 6.0
	labelSize   = 12.0
)

var (
	panelBG    = color.NRGBA{R: 12, G: 16, B: 28, A: 210}
	trackDim   = color.NRGBA{R: 90, G: 100, B: 130, A: 255}
	trackLit   = color.NRGBA{R: 198, G: 212, B: 255, A: 255}
	labelColor = color.NRGBA{R: 210, G: 218, B: 240, A: 255}
)

// sliderEntry binds one panel row to a parameter key.
type sliderEntry struct {
	key   paramKey
	label string
}

// sliderPanel is the in-window settings panel: one draggable slider per
// engine parameter, writing into the shared parameter store on input events.
type sliderPanel struct {
	visible   bool
	entries   []sliderEntry
	face      *text.GoTextFace
	dragIndex int
}

// newSliderPanel builds the panel and parses the bundled typeface.
func newSliderPanel() (*sliderPanel, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse panel font: %w", err)
	}
	return &sliderPanel{
		entries: []sliderEntry{
			{key: paramTurbulence, label: "Turbulence"},
			{key: paramCoherence, label: "Coherence scale"},
			{key: paramSpeed, label: "Animation speed"},
			{key: paramRadius, label: "Distortion radius"},
			{key: paramStrength, label: "Distortion strength"},
			{key: paramDensity, label: "Mesh density"},
			{key: paramBaseAlpha, label: "Baseline brightness"},
		},
		face:      &text.GoTextFace{Source: src, Size: labelSize},
		dragIndex: -1,
	}, nil
}

// toggle shows or hides the panel.
func (sp *sliderPanel) toggle() {
	sp.visible = !sp.visible
	sp.dragIndex = -1
}

// trackSpan returns the horizontal extent of every slider track.
func (sp *sliderPanel) trackSpan(width float64) (float64, float64) {
	x0 := width - panelMargin - panelWidth + panelPad
	return x0, x0 + panelWidth - 2*panelPad
}

// trackY returns the vertical center of the slider track for row i.
func (sp *sliderPanel) trackY(i int) float64 {
	return panelMargin + panelPad + float64(i)*sliderRowH + labelSize + 12
}

// handleInput processes mouse interaction with the sliders, pushing dragged
// values into the parameter store.
func (sp *sliderPanel) handleInput(store *paramStore, width, dpr float64) {
	if !sp.visible {
		return
	}
	mxi, myi := ebiten.CursorPosition()
	mx := float64(mxi) / dpr
	my := float64(myi) / dpr

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x0, x1 := sp.trackSpan(width)
		for i := range sp.entries {
			ty := sp.trackY(i)
			if mx >= x0-knobRadius && mx <= x1+knobRadius && my >= ty-10 && my <= ty+10 {
				sp.dragIndex = i
				break
			}
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		sp.dragIndex = -1
		return
	}
	if sp.dragIndex < 0 {
		return
	}

	entry := sp.entries[sp.dragIndex]
	r := paramRanges[entry.key]
	x0, x1 := sp.trackSpan(width)
	frac := clampFloat((mx-x0)/(x1-x0), 0, 1)
	store.Set(entry.key, r.min+frac*(r.max-r.min))
}

// draw renders the panel background, sliders, and value labels.
func (sp *sliderPanel) draw(screen *ebiten.Image, width, dpr float64, store *paramStore) {
	if !sp.visible {
		return
	}
	s := float32(dpr)

	panelX := width - panelMargin - panelWidth
	panelH := panelPad*2 + float64(len(sp.entries))*sliderRowH
	vector.DrawFilledRect(screen,
		float32(panelX)*s, float32(panelMargin)*s,
		float32(panelWidth)*s, float32(panelH)*s,
		panelBG, false)

	sp.face.Size = labelSize * dpr
	x0, x1 := sp.trackSpan(width)

	for i, entry := range sp.entries {
		r := paramRanges[entry.key]
		value := store.Get(entry.key)
		frac := clampFloat((value-r.min)/(r.max-r.min), 0, 1)
		ty := sp.trackY(i)
		knobX := x0 + frac*(x1-x0)

		label := fmt.Sprintf("%s  %.2f", entry.label, value)
		if entry.key == paramRadius {
			label = fmt.Sprintf("%s  %.0f", entry.label, value)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x0*dpr, (ty-labelSize-10)*dpr)
		op.ColorScale.ScaleWithColor(labelColor)
		text.Draw(screen, label, sp.face, op)

		vector.StrokeLine(screen,
			float32(x0)*s, float32(ty)*s, float32(x1)*s, float32(ty)*s,
			trackInset*s/2, trackDim, true)
		vector.StrokeLine(screen,
			float32(x0)*s, float32(ty)*s, float32(knobX)*s, float32(ty)*s,
			trackInset*s/2, trackLit, true)
		vector.DrawFilledCircle(screen,
			float32(knobX)*s, float32(ty)*s, knobRadius*s, trackLit, true)
	}
}

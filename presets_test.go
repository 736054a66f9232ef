package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allPages = []page{pageHome, pageAbout, pageResearch, pagePublications, pageOutreach, pageMusic, pageContact}

func TestParsePageFallsBackToHome(t *testing.T) {
	assert.Equal(t, pageHome, parsePage(""))
	assert.Equal(t, pageHome, parsePage("blog"))
	assert.Equal(t, pageHome, parsePage("HOME"))
}

func TestPageNameRoundTrip(t *testing.T) {
	for _, p := range allPages {
		assert.Equal(t, p, parsePage(p.name()), "page %q", p.name())
	}
}

func TestHomeOverrides(t *testing.T) {
	ov := pageHome.overrides()
	assert.Equal(t, presetOverrides{hLines: 46, vLines: 22, amp: 20, amp2: 16, boostAlpha: 0.18}, ov)
}

func TestAllOverridesWithinMeshBounds(t *testing.T) {
	for _, p := range allPages {
		ov := p.overrides()
		assert.GreaterOrEqual(t, ov.hLines, minHLines, "page %q hLines", p.name())
		assert.LessOrEqual(t, ov.hLines, maxHLines, "page %q hLines", p.name())
		assert.GreaterOrEqual(t, ov.vLines, minVLines, "page %q vLines", p.name())
		assert.LessOrEqual(t, ov.vLines, maxVLines, "page %q vLines", p.name())
		assert.Greater(t, ov.amp, 0.0, "page %q amp", p.name())
		assert.Greater(t, ov.amp2, 0.0, "page %q amp2", p.name())
		assert.Greater(t, ov.boostAlpha, 0.0, "page %q boostAlpha", p.name())
		assert.LessOrEqual(t, ov.boostAlpha, maxStrokeAlpha, "page %q boostAlpha", p.name())
	}
}

package main

import "sync"

// paramKey names one user-adjustable parameter. The key set matches the
// sliders exposed by the settings panel and the fields accepted from the
// settings file.
type paramKey string

const (
	paramTurbulence paramKey = "turbulence"
	paramCoherence  paramKey = "coherence"
	paramSpeed      paramKey = "speed"
	paramRadius     paramKey = "distortion-radius"
	paramStrength   paramKey = "distortion-strength"
	paramDensity    paramKey = "density"
	paramBaseAlpha  paramKey = "baseline-brightness"
)

// paramRange documents the clamp bounds and default for one parameter. Values
// pushed into the store are clamped here so the engine never sees an
// out-of-range value regardless of what a writer supplies.
type paramRange struct {
	min, max, def float64
}

var paramRanges = map[paramKey]paramRange{
	paramTurbulence: {min: 0.0, max: 2.5, def: 1.0},
	paramCoherence:  {min: 0.25, max: 3.0, def: 1.0},
	paramSpeed:      {min: 0.0, max: 3.0, def: 1.0},
	paramRadius:     {min: 120.0, max: 520.0, def: 240.0},
	paramStrength:   {min: 0.0, max: 2.5, def: 1.0},
	paramDensity:    {min: 0.5, max: 2.0, def: 1.0},
	paramBaseAlpha:  {min: 0.02, max: 0.30, def: 0.10},
}

// paramSnapshot is the immutable per-frame view of the parameter store.
type paramSnapshot struct {
	Turbulence float64
	Coherence  float64
	Speed      float64
	Radius     float64
	Strength   float64
	Density    float64
	BaseAlpha  float64
}

// paramStore is the shared state between the parameter writers (settings
// panel, settings file watcher) and the engine. Writers push values through
// Set on input events; the engine pulls one snapshot per frame.
type paramStore struct {
	mu     sync.RWMutex
	values map[paramKey]float64
}

// newParamStore builds a store populated with every parameter's default.
func newParamStore() *paramStore {
	s := &paramStore{values: make(map[paramKey]float64, len(paramRanges))}
	for key, r := range paramRanges {
		s.values[key] = r.def
	}
	return s
}

// clampParam constrains v to the documented range for key.
func clampParam(key paramKey, v float64) float64 {
	r, ok := paramRanges[key]
	if !ok {
		return v
	}
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

// Set stores a clamped value for key. Unknown keys are ignored so a stale
// settings file cannot poison the render state.
func (s *paramStore) Set(key paramKey, v float64) {
	if _, ok := paramRanges[key]; !ok {
		return
	}
	s.mu.Lock()
	s.values[key] = clampParam(key, v)
	s.mu.Unlock()
}

// Get returns the current clamped value for key, or the default when the key
// is unknown.
func (s *paramStore) Get(key paramKey) float64 {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return paramRanges[key].def
	}
	return v
}

// Snapshot copies the current values into an immutable frame-local view.
func (s *paramStore) Snapshot() paramSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paramSnapshot{
		Turbulence: s.values[paramTurbulence],
		Coherence:  s.values[paramCoherence],
		Speed:      s.values[paramSpeed],
		Radius:     s.values[paramRadius],
		Strength:   s.values[paramStrength],
		Density:    s.values[paramDensity],
		BaseAlpha:  s.values[paramBaseAlpha],
	}
}

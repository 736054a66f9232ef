package main

import (
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// profileRecorder captures a CPU profile while the pointer autopilot sweeps
// the field, producing a default.pgo representative of steady rendering.
type profileRecorder struct {
	stop     func()
	deadline time.Time
	done     bool
}

// startProfileRecorder begins writing a CPU profile to path and schedules its
// end.
func startProfileRecorder(path string, now time.Time) (*profileRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	return &profileRecorder{
		stop: func() {
			once.Do(func() {
				pprof.StopCPUProfile()
				_ = f.Close()
			})
		},
		deadline: now.Add(pgoRecordDuration),
	}, nil
}

// tick finalizes the profile once the recording window has elapsed. Calling
// it after completion is a no-op.
func (r *profileRecorder) tick(now time.Time) {
	if r.done || now.Before(r.deadline) {
		return
	}
	r.stop()
	r.done = true
}

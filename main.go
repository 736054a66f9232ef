package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	store := newParamStore()
	if *settingsFlag != "" {
		if err := loadSettings(*settingsFlag, store); err != nil {
			log.Printf("settings: %v", err)
		}
		if *watchSettingsFlag {
			closeWatcher, err := watchSettings(*settingsFlag, store)
			if err != nil {
				log.Printf("settings: %v", err)
			} else {
				defer closeWatcher()
			}
		}
	}

	panel, err := newSliderPanel()
	if err != nil {
		log.Fatalf("panel initialization failed: %v", err)
	}

	now := time.Now()
	pg := parsePage(*pageFlag)
	g := newGame(store, pg, panel, now)

	if *recordDefaultPGO {
		recorder, err := startProfileRecorder("default.pgo", now)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		g.recorder = recorder
		defer recorder.stop()
		// Backdate the last input so the autopilot starts sweeping at once.
		g.pointer.lastInput = now.Add(-idleAutoDelay)
	}

	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowTitle("fieldlines")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)
	ebiten.SetVsyncEnabled(*vsyncFlag)
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("run: %v", err)
	}
}

package main

import "flag"

// Command-line flags that control the preset selection, the parameter sources,
// and optional rendering and runtime behavior.
var (
	// pageFlag selects the per-page preset used for the initial engine state.
	pageFlag = flag.String("page", "home", "page preset (home, about, research, publications, outreach, music, contact)")

	// settingsFlag points at an optional JSON file with parameter overrides.
	settingsFlag = flag.String("settings", "", "path to a JSON settings file with parameter overrides")

	// watchSettingsFlag reloads the settings file whenever it changes on disk.
	watchSettingsFlag = flag.Bool("watch-settings", false, "watch the settings file and apply changes live")

	// reducedMotionFlag renders a single static frame and never animates.
	reducedMotionFlag = flag.Bool("reduced-motion", false, "honor a reduced-motion preference: render one static frame")

	// debugFlag enables the FPS and mesh statistics overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, node count, and populate timing overlay")

	// fullscreenFlag starts the window in fullscreen mode.
	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen")

	// vsyncFlag toggles display synchronization.
	vsyncFlag = flag.Bool("vsync", true, "enable vsync")

	// recordDefaultPGO drives the pointer autonomously for 15s while capturing
	// default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "sweep the pointer automatically for 15s while capturing default.pgo")
)

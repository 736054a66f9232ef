package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// loadSettings reads a JSON settings file and pushes every recognized
// parameter into the store. Unknown keys are logged and skipped; values pass
// through the store's clamping like any other writer.
func loadSettings(path string, store *paramStore) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	applySettings(raw, store)
	return nil
}

// applySettings copies recognized keys into the store and returns how many
// were applied.
func applySettings(raw map[string]float64, store *paramStore) int {
	applied := 0
	for key, value := range raw {
		if _, ok := paramRanges[paramKey(key)]; !ok {
			log.Printf("settings: ignoring unknown key %q", key)
			continue
		}
		store.Set(paramKey(key), value)
		applied++
	}
	return applied
}

// watchSettings reloads the settings file whenever it changes on disk. The
// parent directory is watched so editors that replace the file atomically
// still trigger a reload. The returned function stops the watcher.
func watchSettings(path string, store *paramStore) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := loadSettings(path, store); err != nil {
					log.Printf("settings reload failed: %v", err)
				} else {
					log.Printf("settings reloaded from %s", path)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("settings watcher error: %v", err)
			}
		}
	}()
	return watcher.Close, nil
}

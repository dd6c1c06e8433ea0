// Package viewerconfig persists viewer preferences and loads per-category
// style sheets. Preferences are JSON; style sheets are YAML applied on top of
// the avatar's built-in defaults.
package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultPrefsPath is the preferences file, relative to the working directory.
const DefaultPrefsPath = "config/viewer.json"

// Prefs holds viewer-only preferences (overlays, grid, background). Persisted
// across runs; avatar styles are separate (see LoadStyles).
type Prefs struct {
	ShowFPS      bool       `json:"show_fps"`
	ShowMemAlloc bool       `json:"show_memalloc"`
	GridVisible  bool       `json:"grid_visible"`
	Background   [3]float32 `json:"background"`
}

// DefaultPrefs returns the defaults: overlays off, grid on, black background.
func DefaultPrefs() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		Background:   [3]float32{0, 0, 0},
	}
}

// LoadPrefs reads preferences from path (DefaultPrefsPath when empty). A
// missing or invalid file yields the defaults without error and without
// creating a file.
func LoadPrefs(path string) (Prefs, error) {
	if path == "" {
		path = DefaultPrefsPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPrefs(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), nil
	}
	return p, nil
}

// SavePrefs writes preferences to path (DefaultPrefsPath when empty), creating
// the directory if needed.
func SavePrefs(path string, p Prefs) error {
	if path == "" {
		path = DefaultPrefsPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

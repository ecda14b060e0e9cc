// Package config loads the demo application's configuration from JSON
// files using the fs.FS interface.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// WindowConfig describes the demo window.
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// TransitionConfig holds the durations (seconds) of the registered
// transition effects.
type TransitionConfig struct {
	FadeDuration  float64 `json:"fade_duration"`
	SlideDuration float64 `json:"slide_duration"`
	PushDuration  float64 `json:"push_duration"`
}

// DemoConfig holds all loaded configuration.
type DemoConfig struct {
	Window      WindowConfig     `json:"window"`
	Transitions TransitionConfig `json:"transitions"`
}

// Default returns the configuration used when no file is supplied.
func Default() *DemoConfig {
	return &DemoConfig{
		Window: WindowConfig{
			Width:     960,
			Height:    540,
			Title:     "screenflow demo",
			Resizable: true,
		},
		Transitions: TransitionConfig{
			FadeDuration:  0.35,
			SlideDuration: 0.5,
			PushDuration:  0.5,
		},
	}
}

// Loader loads demo configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load loads demo.json. Fields missing from the file keep their default
// values.
func (l *Loader) Load() (*DemoConfig, error) {
	data, err := fs.ReadFile(l.fsys, "demo.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read demo.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo.json: %w", err)
	}

	return cfg, nil
}

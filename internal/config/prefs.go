package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"anatomy-viewer/internal/anatomy"
)

// PrefsPath is the default preferences file, relative to the process working directory.
const PrefsPath = "config/prefs.json"

// Prefs is what the viewer remembers between runs. Zero values mean "not saved yet".
type Prefs struct {
	Layers        []bool `json:"layers,omitempty"`
	Language      string `json:"language,omitempty"`
	ShowInfoPanel *bool  `json:"show_info_panel,omitempty"`
}

// LoadPrefs reads preferences from path. If the file is missing or invalid it returns empty
// prefs and does not create a file.
func LoadPrefs(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Prefs{}
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	return p
}

// SavePrefs writes p to path, creating the directory if needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SetVisibility stores a layer visibility vector.
func (p *Prefs) SetVisibility(v [anatomy.LayerCount]bool) {
	p.Layers = v[:]
}

// Visibility returns the saved vector. ok is false unless exactly one flag per layer was saved.
func (p Prefs) Visibility() (v [anatomy.LayerCount]bool, ok bool) {
	if len(p.Layers) != anatomy.LayerCount {
		return v, false
	}
	copy(v[:], p.Layers)
	return v, true
}

// Apply overlays the saved language and info panel flag onto cfg.
func (p Prefs) Apply(cfg *Config) {
	if p.Language != "" {
		cfg.Display.Language = p.Language
	}
	if p.ShowInfoPanel != nil {
		cfg.Display.ShowInfoPanel = *p.ShowInfoPanel
	}
}

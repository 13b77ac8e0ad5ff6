// Package config loads viewer settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/orbit"

	"github.com/caarlos0/env/v11"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// EnvPrefix prefixes every environment override, e.g. ANATOMY_CAMERA_ZOOM_SPEED.
const EnvPrefix = "ANATOMY_"

// Config is the full viewer configuration.
type Config struct {
	Camera  orbit.Config  `yaml:"camera" envPrefix:"CAMERA_"`
	Search  SearchConfig  `yaml:"search" envPrefix:"SEARCH_"`
	Display DisplayConfig `yaml:"display" envPrefix:"DISPLAY_"`
	Paths   PathsConfig   `yaml:"paths" envPrefix:"PATH_"`
}

type SearchConfig struct {
	MinLength int `yaml:"min_length" env:"MIN_LENGTH"`
	// AutoSelectFirst selects the top result after every search that finds something.
	AutoSelectFirst bool `yaml:"auto_select_first" env:"AUTO_SELECT_FIRST"`
}

type DisplayConfig struct {
	DefaultVisibleLayers []anatomy.Layer `yaml:"default_visible_layers" env:"DEFAULT_LAYERS" envSeparator:","`
	ShowInfoPanel        bool            `yaml:"show_info_panel" env:"SHOW_INFO_PANEL"`
	Language             string          `yaml:"language" env:"LANGUAGE"`
	// HighlightColor is "#rrggbb" or "#rrggbbaa".
	HighlightColor string `yaml:"highlight_color" env:"HIGHLIGHT_COLOR"`
}

// PathsConfig locates the files the viewer reads and writes. An empty Database uses the built-in sample.
type PathsConfig struct {
	Database string `yaml:"database" env:"DATABASE"`
	Log      string `yaml:"log" env:"LOG"`
	Prefs    string `yaml:"prefs" env:"PREFS"`
}

// Default returns the stock configuration: bones and superficial muscles shown, Chinese UI.
func Default() Config {
	return Config{
		Camera: orbit.DefaultConfig(),
		Search: SearchConfig{MinLength: 2, AutoSelectFirst: true},
		Display: DisplayConfig{
			DefaultVisibleLayers: []anatomy.Layer{anatomy.Bone, anatomy.Muscle1},
			ShowInfoPanel:        true,
			Language:             "zh",
			HighlightColor:       "#ffff00",
		},
		Paths: PathsConfig{
			Log:   "logs/viewer.txt",
			Prefs: PrefsPath,
		},
	}
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ANATOMY_* variables. Unset variables leave fields alone.
func ApplyEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix: EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(anatomy.Layer(0)): parseLayer,
		},
	})
	if err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

func parseLayer(v string) (interface{}, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", v, err)
	}
	return anatomy.Layer(n), nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if err := c.Camera.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	if c.Search.MinLength < 1 {
		errs = append(errs, fmt.Errorf("search: min_length must be at least 1, got %d", c.Search.MinLength))
	}
	for _, l := range c.Display.DefaultVisibleLayers {
		if !l.Valid() {
			errs = append(errs, fmt.Errorf("display: default layer %d out of range", int(l)))
		}
	}
	if _, err := ParseColor(c.Display.HighlightColor); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}
	return errors.Join(errs...)
}

// Highlight returns the parsed highlight colour, falling back to yellow.
func (d DisplayConfig) Highlight() rl.Color {
	c, err := ParseColor(d.HighlightColor)
	if err != nil {
		return rl.Yellow
	}
	return c
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (rl.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return rl.Color{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

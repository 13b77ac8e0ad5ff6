package orbit

import (
	"errors"
	"fmt"
)

// Config holds the camera tuning values. Speeds are per unit of input axis; distances are world units.
type Config struct {
	RotationSpeed   float32 `yaml:"rotation_speed" env:"ROTATION_SPEED"`
	PanSpeed        float32 `yaml:"pan_speed" env:"PAN_SPEED"`
	ZoomSpeed       float32 `yaml:"zoom_speed" env:"ZOOM_SPEED"`
	PinchZoomSpeed  float32 `yaml:"pinch_zoom_speed" env:"PINCH_ZOOM_SPEED"`
	MinDistance     float32 `yaml:"min_distance" env:"MIN_DISTANCE"`
	MaxDistance     float32 `yaml:"max_distance" env:"MAX_DISTANCE"`
	InitialDistance float32 `yaml:"initial_distance" env:"INITIAL_DISTANCE"`
	EnableDamping   bool    `yaml:"enable_damping" env:"ENABLE_DAMPING"`
	DampingFactor   float32 `yaml:"damping_factor" env:"DAMPING_FACTOR"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		RotationSpeed:   5,
		PanSpeed:        0.5,
		ZoomSpeed:       2,
		PinchZoomSpeed:  0.01,
		MinDistance:     2,
		MaxDistance:     20,
		InitialDistance: 10,
		EnableDamping:   true,
		DampingFactor:   5,
	}
}

// Validate reports every field that is out of range.
func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float32
	}{
		{"rotation_speed", c.RotationSpeed},
		{"pan_speed", c.PanSpeed},
		{"zoom_speed", c.ZoomSpeed},
		{"pinch_zoom_speed", c.PinchZoomSpeed},
		{"min_distance", c.MinDistance},
	}
	for _, f := range positive {
		if f.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", f.name, f.v))
		}
	}
	if c.MaxDistance < c.MinDistance {
		errs = append(errs, fmt.Errorf("max_distance %g is below min_distance %g", c.MaxDistance, c.MinDistance))
	}
	if c.DampingFactor < 0 {
		errs = append(errs, fmt.Errorf("damping_factor must not be negative, got %g", c.DampingFactor))
	}
	return errors.Join(errs...)
}

// clampDistance keeps d inside [MinDistance, MaxDistance].
func (c Config) clampDistance(d float32) float32 {
	if d < c.MinDistance {
		return c.MinDistance
	}
	if d > c.MaxDistance {
		return c.MaxDistance
	}
	return d
}

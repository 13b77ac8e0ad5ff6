// Package input defines the per-frame input snapshot the engines consume and a raylib poller that fills it.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Phase is the lifecycle stage of a touch within the current frame.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseMoved
	PhaseStationary
	PhaseEnded
	PhaseCanceled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseStationary:
		return "stationary"
	case PhaseEnded:
		return "ended"
	case PhaseCanceled:
		return "canceled"
	}
	return "unknown"
}

// Touch is one finger. Delta is the movement since the previous frame.
type Touch struct {
	ID       int32
	Position rl.Vector2
	Delta    rl.Vector2
	Phase    Phase
}

// PreviousPosition is where the touch was last frame.
func (t Touch) PreviousPosition() rl.Vector2 {
	return rl.Vector2Subtract(t.Position, t.Delta)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Buttons is a set of held mouse buttons.
type Buttons uint8

// With returns the set plus b.
func (s Buttons) With(b MouseButton) Buttons {
	return s | 1<<b
}

// Has reports whether b is in the set.
func (s Buttons) Has(b MouseButton) bool {
	return s&(1<<b) != 0
}

// Snapshot is everything the engines read about input for one frame.
// Screen coordinates are pixels with the origin at the top-left.
type Snapshot struct {
	Touches       []Touch
	MouseHeld     Buttons
	MousePosition rl.Vector2
	MouseDelta    rl.Vector2
	Scroll        float32
}

// TouchCount returns the number of active touches.
func (s Snapshot) TouchCount() int {
	return len(s.Touches)
}

// HasTouch reports whether any finger is down; touch input then takes precedence over the mouse.
func (s Snapshot) HasTouch() bool {
	return len(s.Touches) > 0
}

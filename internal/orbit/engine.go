// Package orbit integrates mouse and touch gestures into an orbiting camera around an anchor point.
package orbit

import (
	"anatomy-viewer/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxPitch is the pitch limit in degrees, either side of the horizon.
const MaxPitch = 89

// Input scaling. Mouse deltas arrive in pixels and are turned into axis units first.
const (
	MouseAxisScale   = 0.1
	TouchRotateScale = 0.1
	TouchPanScale    = 0.01
	ScrollThreshold  = 0.01
	// PinchDeadZone is the change in finger spread, in pixels, below which a two-finger drag pans.
	PinchDeadZone = 1
)

var (
	worldUp  = rl.NewVector3(0, 1, 0)
	worldX   = rl.NewVector3(1, 0, 0)
	backward = rl.NewVector3(0, 0, 1)
)

// Rotation is yaw about world up and pitch above the horizon, in degrees.
type Rotation struct {
	Yaw   float32
	Pitch float32
}

// State is one side of the camera: where it wants to be (target) or where it is (current).
type State struct {
	Rotation Rotation
	Pan      rl.Vector3
	Distance float32
}

// Pose is the resolved camera placement for rendering.
type Pose struct {
	Position rl.Vector3
	LookAt   rl.Vector3
	Up       rl.Vector3
}

// Engine keeps target and current orbit state. Input moves the target; Update eases current toward it.
type Engine struct {
	cfg     Config
	anchor  rl.Vector3
	target  State
	current State

	initialPos *rl.Vector3
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnchor sets the point the camera orbits. Without it the camera orbits the world origin.
func WithAnchor(p rl.Vector3) Option {
	return func(e *Engine) { e.anchor = p }
}

// WithInitialPosition derives the starting rotation and distance from a camera position.
// Applied after WithAnchor regardless of option order.
func WithInitialPosition(pos rl.Vector3) Option {
	return func(e *Engine) { e.initialPos = &pos }
}

// New returns an engine at the initial distance, looking at the anchor along -Z.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	start := State{Distance: cfg.clampDistance(cfg.InitialDistance)}
	if e.initialPos != nil {
		if s, ok := stateFromOffset(rl.Vector3Subtract(*e.initialPos, e.anchor)); ok {
			s.Distance = cfg.clampDistance(s.Distance)
			start = s
		}
		e.initialPos = nil
	}
	e.target = start
	e.current = start
	return e
}

// stateFromOffset inverts the orbit placement for a camera offset from the anchor.
func stateFromOffset(off rl.Vector3) (State, bool) {
	d := rl.Vector3Length(off)
	if d == 0 {
		return State{}, false
	}
	pitch := math32.Asin(rl.Clamp(off.Y/d, -1, 1)) * rl.Rad2deg
	yaw := math32.Atan2(off.X, off.Z) * rl.Rad2deg
	return State{
		Rotation: Rotation{Yaw: yaw, Pitch: rl.Clamp(pitch, -MaxPitch, MaxPitch)},
		Distance: d,
	}, true
}

// Config returns the active tuning.
func (e *Engine) Config() Config { return e.cfg }

// Configure swaps the tuning at runtime. Distances are re-clamped to the new range.
func (e *Engine) Configure(cfg Config) {
	e.cfg = cfg
	e.target.Distance = cfg.clampDistance(e.target.Distance)
	e.current.Distance = e.target.Distance
}

func (e *Engine) Anchor() rl.Vector3 { return e.anchor }

// SetAnchor moves the orbit point. Pan offsets stay relative to it.
func (e *Engine) SetAnchor(p rl.Vector3) { e.anchor = p }

func (e *Engine) Target() State { return e.target }

func (e *Engine) Current() State { return e.current }

// Update runs one frame: read gestures into the target, clamp, ease current toward target.
// Touch input takes precedence over the mouse whenever a finger is down.
func (e *Engine) Update(s input.Snapshot, dt float32) {
	if s.HasTouch() {
		e.handleTouch(s.Touches)
	} else {
		e.handleMouse(s)
	}

	e.target.Rotation.Pitch = rl.Clamp(e.target.Rotation.Pitch, -MaxPitch, MaxPitch)
	e.target.Distance = e.cfg.clampDistance(e.target.Distance)

	if e.cfg.EnableDamping {
		t := rl.Clamp(1-math32.Exp(-e.cfg.DampingFactor*dt), 0, 1)
		e.current.Rotation.Yaw = rl.Lerp(e.current.Rotation.Yaw, e.target.Rotation.Yaw, t)
		e.current.Rotation.Pitch = rl.Lerp(e.current.Rotation.Pitch, e.target.Rotation.Pitch, t)
		e.current.Pan = rl.Vector3Lerp(e.current.Pan, e.target.Pan, t)
	} else {
		e.current.Rotation = e.target.Rotation
		e.current.Pan = e.target.Pan
	}
	e.current.Distance = e.target.Distance
}

func (e *Engine) handleMouse(s input.Snapshot) {
	// Axis values: x to the right, y up.
	ax := s.MouseDelta.X * MouseAxisScale
	ay := -s.MouseDelta.Y * MouseAxisScale

	if s.MouseHeld.Has(input.MouseLeft) {
		e.rotate(ax, ay)
	}
	if s.MouseHeld.Has(input.MouseMiddle) {
		e.pan(ax*e.cfg.PanSpeed, ay*e.cfg.PanSpeed)
	}
	if math32.Abs(s.Scroll) > ScrollThreshold {
		e.target.Distance -= s.Scroll * e.cfg.ZoomSpeed
	}
}

func (e *Engine) handleTouch(touches []input.Touch) {
	switch len(touches) {
	case 1:
		t := touches[0]
		if t.Phase == input.PhaseMoved {
			e.rotate(t.Delta.X*TouchRotateScale, -t.Delta.Y*TouchRotateScale)
		}
	case 2:
		t0, t1 := touches[0], touches[1]
		if t0.Phase != input.PhaseMoved && t1.Phase != input.PhaseMoved {
			return
		}
		prev := rl.Vector2Distance(t0.PreviousPosition(), t1.PreviousPosition())
		cur := rl.Vector2Distance(t0.Position, t1.Position)
		spread := prev - cur
		if math32.Abs(spread) > PinchDeadZone {
			e.target.Distance += spread * e.cfg.PinchZoomSpeed
			return
		}
		avg := rl.Vector2Scale(rl.Vector2Add(t0.Delta, t1.Delta), 0.5)
		k := e.cfg.PanSpeed * TouchPanScale
		e.pan(avg.X*k, -avg.Y*k)
	}
}

func (e *Engine) rotate(ax, ay float32) {
	e.target.Rotation.Yaw += ax * e.cfg.RotationSpeed
	e.target.Rotation.Pitch -= ay * e.cfg.RotationSpeed
}

// pan moves the target against the drag along the camera's current right and up axes.
func (e *Engine) pan(right, up float32) {
	q := rotationOf(e.current.Rotation)
	r := rl.Vector3RotateByQuaternion(worldX, q)
	u := rl.Vector3RotateByQuaternion(worldUp, q)
	move := rl.Vector3Add(rl.Vector3Scale(r, right), rl.Vector3Scale(u, up))
	e.target.Pan = rl.Vector3Subtract(e.target.Pan, move)
}

// rotationOf applies pitch about the local X axis, then yaw about world up.
// Positive pitch raises the camera above the anchor.
func rotationOf(r Rotation) rl.Quaternion {
	yaw := rl.QuaternionFromAxisAngle(worldUp, r.Yaw*rl.Deg2rad)
	pitch := rl.QuaternionFromAxisAngle(worldX, -r.Pitch*rl.Deg2rad)
	return rl.QuaternionMultiply(yaw, pitch)
}

// ResetCamera sends the target back to the initial distance with no rotation or pan.
// Rotation and pan ease back when damping is on; distance snaps.
func (e *Engine) ResetCamera() {
	e.target.Rotation = Rotation{}
	e.target.Pan = rl.Vector3{}
	e.target.Distance = e.cfg.clampDistance(e.cfg.InitialDistance)
	e.current.Distance = e.target.Distance
}

// FocusOnPoint pans so the camera looks at p. Rotation and distance are unchanged.
func (e *Engine) FocusOnPoint(p rl.Vector3) {
	e.target.Pan = rl.Vector3Subtract(p, e.anchor)
}

// Pose resolves the current state into a camera placement.
func (e *Engine) Pose() Pose {
	look := rl.Vector3Add(e.anchor, e.current.Pan)
	off := rl.Vector3Scale(rl.Vector3RotateByQuaternion(backward, rotationOf(e.current.Rotation)), e.current.Distance)
	return Pose{
		Position: rl.Vector3Add(look, off),
		LookAt:   look,
		Up:       worldUp,
	}
}

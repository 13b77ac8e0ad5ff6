package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poller reads raylib's input state once per frame into a Snapshot.
// Touch must be enabled explicitly: on desktop raylib reports the mouse as touch point 0,
// which would otherwise be read twice.
type Poller struct {
	Touch bool
	prev  map[int32]rl.Vector2
}

// NewPoller returns a poller; touch selects whether touch points are read.
func NewPoller(touch bool) *Poller {
	return &Poller{Touch: touch, prev: make(map[int32]rl.Vector2)}
}

// Poll captures the current frame. Call once per frame, before ticking the engines.
func (p *Poller) Poll() Snapshot {
	var s Snapshot
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s.MouseHeld = s.MouseHeld.With(MouseLeft)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		s.MouseHeld = s.MouseHeld.With(MouseRight)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		s.MouseHeld = s.MouseHeld.With(MouseMiddle)
	}
	s.MousePosition = rl.GetMousePosition()
	s.MouseDelta = rl.GetMouseDelta()
	s.Scroll = rl.GetMouseWheelMove()

	if p.Touch {
		n := int(rl.GetTouchPointCount())
		points := make([]touchPoint, 0, n)
		for i := 0; i < n; i++ {
			points = append(points, touchPoint{
				id:  rl.GetTouchPointId(int32(i)),
				pos: rl.GetTouchPosition(int32(i)),
			})
		}
		s.Touches = trackTouches(p.prev, points)
	}
	return s
}

type touchPoint struct {
	id  int32
	pos rl.Vector2
}

// trackTouches derives per-touch delta and phase from last frame's positions and
// replaces prev with this frame's positions. Fingers that lifted are dropped.
func trackTouches(prev map[int32]rl.Vector2, points []touchPoint) []Touch {
	touches := make([]Touch, 0, len(points))
	seen := make(map[int32]struct{}, len(points))
	for _, pt := range points {
		seen[pt.id] = struct{}{}
		t := Touch{ID: pt.id, Position: pt.pos, Phase: PhaseBegan}
		if last, ok := prev[pt.id]; ok {
			t.Delta = rl.Vector2Subtract(pt.pos, last)
			if t.Delta.X != 0 || t.Delta.Y != 0 {
				t.Phase = PhaseMoved
			} else {
				t.Phase = PhaseStationary
			}
		}
		prev[pt.id] = pt.pos
		touches = append(touches, t)
	}
	for id := range prev {
		if _, ok := seen[id]; !ok {
			delete(prev, id)
		}
	}
	return touches
}

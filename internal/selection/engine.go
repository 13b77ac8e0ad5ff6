// Package selection turns pointer presses into single-part selections.
package selection

import (
	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/events"
	"anatomy-viewer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Projector turns a screen position into a world-space ray through the active camera.
type Projector interface {
	ScreenToWorldRay(pos rl.Vector2) rl.Ray
}

// Hit is the nearest object a ray struck.
type Hit struct {
	Object   any
	Distance float32
	Point    rl.Vector3
}

// HitTester casts rays into the scene. Only objects on layers in mask take part.
type HitTester interface {
	Raycast(ray rl.Ray, mask LayerMask) (Hit, bool)
}

// LayerMask has one bit per anatomy layer.
type LayerMask uint32

// AllLayers lets every layer take part in hit-testing.
const AllLayers = ^LayerMask(0)

// MaskOf builds a mask from layers; out-of-range layers are skipped.
func MaskOf(layers ...anatomy.Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l.Valid() {
			m |= 1 << uint(l)
		}
	}
	return m
}

// Includes reports whether l's bit is set.
func (m LayerMask) Includes(l anatomy.Layer) bool {
	return l.Valid() && m&(1<<uint(l)) != 0
}

// PartHolder is implemented by hit objects that wrap a part (e.g. a scene node).
type PartHolder interface {
	AnatomyPart() *anatomy.Part
}

// Engine keeps at most one part highlighted as "selected".
type Engine struct {
	// PartSelected fires once per change of selection, carrying the new part.
	PartSelected events.Feed[*anatomy.Part]
	// SelectionCleared fires only when a selection actually existed.
	SelectionCleared events.Feed[struct{}]

	projector    Projector
	hits         HitTester
	mask         LayerMask
	current      *anatomy.Part
	mouseWasDown bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLayerMask restricts hit-testing to the given layers.
func WithLayerMask(m LayerMask) Option {
	return func(e *Engine) { e.mask = m }
}

// New returns an engine. Either collaborator may be nil; screen-position selection is then a no-op.
func New(projector Projector, hits HitTester, opts ...Option) *Engine {
	e := &Engine{projector: projector, hits: hits, mask: AllLayers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetProjector swaps the camera used for picking.
func (e *Engine) SetProjector(p Projector) {
	e.projector = p
}

// SetLayerMask changes which layers are pickable.
func (e *Engine) SetLayerMask(m LayerMask) {
	e.mask = m
}

// Selected returns the current part, or nil.
func (e *Engine) Selected() *anatomy.Part {
	return e.current
}

// HandleInput makes at most one selection attempt per discrete press: the frame the
// left mouse button goes down, or the frame a lone finger begins touching.
func (e *Engine) HandleInput(s input.Snapshot) {
	down := s.MouseHeld.Has(input.MouseLeft)
	pressed := down && !e.mouseWasDown
	e.mouseWasDown = down
	if pressed {
		e.SelectAtScreenPosition(s.MousePosition)
		return
	}
	if s.TouchCount() == 1 && s.Touches[0].Phase == input.PhaseBegan {
		e.SelectAtScreenPosition(s.Touches[0].Position)
	}
}

// SelectAtScreenPosition picks the part under pos. Hitting empty space or a non-part clears the selection.
func (e *Engine) SelectAtScreenPosition(pos rl.Vector2) {
	if e.projector == nil || e.hits == nil {
		return
	}
	ray := e.projector.ScreenToWorldRay(pos)
	hit, ok := e.hits.Raycast(ray, e.mask)
	if !ok {
		e.ClearSelection()
		return
	}
	if part := resolve(hit.Object); part != nil {
		e.SelectPart(part)
		return
	}
	e.ClearSelection()
}

func resolve(obj any) *anatomy.Part {
	switch v := obj.(type) {
	case *anatomy.Part:
		return v
	case PartHolder:
		return v.AnatomyPart()
	}
	return nil
}

// SelectPart highlights part and makes it current, unhighlighting the previous one.
// Selecting the current part again only reasserts its highlight. A nil part clears the selection.
func (e *Engine) SelectPart(part *anatomy.Part) {
	if part == nil {
		e.ClearSelection()
		return
	}
	if part == e.current {
		part.Highlight()
		return
	}
	if e.current != nil {
		e.current.Unhighlight()
	}
	e.current = part
	part.Highlight()
	e.PartSelected.Emit(part)
}

// ClearSelection unhighlights the current part. With nothing selected it does nothing and fires nothing.
func (e *Engine) ClearSelection() {
	if e.current == nil {
		return
	}
	e.current.Unhighlight()
	e.current = nil
	e.SelectionCleared.Emit(struct{}{})
}

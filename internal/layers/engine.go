// Package layers tracks which anatomical layers are shown and pushes that onto the parts.
package layers

import (
	"anatomy-viewer/internal/anatomy"
)

// Engine owns the per-layer visibility vector. Parts are re-enumerated only on RefreshPartSnapshot.
type Engine struct {
	registry   anatomy.Registry
	parts      []*anatomy.Part
	visibility [anatomy.LayerCount]bool
}

// New returns an engine with every layer visible, takes a snapshot of reg and applies visibility to it.
// A nil registry is treated as empty.
func New(reg anatomy.Registry) *Engine {
	e := &Engine{registry: reg}
	for i := range e.visibility {
		e.visibility[i] = true
	}
	e.RefreshPartSnapshot()
	e.Reapply()
	return e
}

// RefreshPartSnapshot re-enumerates the registry. Call after parts are added or removed.
func (e *Engine) RefreshPartSnapshot() {
	if e.registry == nil {
		e.parts = nil
		return
	}
	e.parts = e.registry.Enumerate()
}

// SetVisibility sets one layer and updates the parts in it. Out-of-range layers are ignored.
func (e *Engine) SetVisibility(layer anatomy.Layer, visible bool) {
	if !layer.Valid() {
		return
	}
	e.visibility[layer] = visible
	e.applyLayer(layer)
}

// Toggle flips one layer. Out-of-range layers are ignored.
func (e *Engine) Toggle(layer anatomy.Layer) {
	if !layer.Valid() {
		return
	}
	e.SetVisibility(layer, !e.visibility[layer])
}

// IsVisible reports the layer's flag; out-of-range layers report false.
func (e *Engine) IsVisible(layer anatomy.Layer) bool {
	if !layer.Valid() {
		return false
	}
	return e.visibility[layer]
}

// Visibility returns a copy of the whole vector, indexed by layer.
func (e *Engine) Visibility() [anatomy.LayerCount]bool {
	return e.visibility
}

// ShowOnly hides every layer except the given ones, then updates all parts in one pass.
// Out-of-range layers in the list are skipped.
func (e *Engine) ShowOnly(layers ...anatomy.Layer) {
	e.visibility = [anatomy.LayerCount]bool{}
	for _, l := range layers {
		if l.Valid() {
			e.visibility[l] = true
		}
	}
	e.Reapply()
}

// ShowAll makes every layer visible.
func (e *Engine) ShowAll() {
	e.setAll(true)
}

// HideAll hides every layer.
func (e *Engine) HideAll() {
	e.setAll(false)
}

// SetAll replaces the whole vector, e.g. when restoring saved preferences.
func (e *Engine) SetAll(visibility [anatomy.LayerCount]bool) {
	e.visibility = visibility
	e.Reapply()
}

// RevealUpTo shows the skeleton plus muscle layers 1..n and hides the deeper ones.
func (e *Engine) RevealUpTo(n int) {
	show := []anatomy.Layer{anatomy.Bone}
	for i := 1; i <= n && i < anatomy.LayerCount; i++ {
		show = append(show, anatomy.Layer(i))
	}
	e.ShowOnly(show...)
}

func (e *Engine) setAll(visible bool) {
	for i := range e.visibility {
		e.visibility[i] = visible
	}
	e.Reapply()
}

// Reapply writes every part's visibility from its layer flag.
func (e *Engine) Reapply() {
	for _, p := range e.parts {
		p.SetVisible(e.IsVisible(p.Layer()))
	}
}

func (e *Engine) applyLayer(layer anatomy.Layer) {
	visible := e.visibility[layer]
	for _, p := range e.parts {
		if p.Layer() == layer {
			p.SetVisible(visible)
		}
	}
}

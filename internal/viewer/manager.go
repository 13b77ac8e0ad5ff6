// Package viewer wires the layer, search, selection and camera engines into one viewer.
package viewer

import (
	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/config"
	"anatomy-viewer/internal/input"
	"anatomy-viewer/internal/layers"
	"anatomy-viewer/internal/orbit"
	"anatomy-viewer/internal/search"
	"anatomy-viewer/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Journal receives one line per user-visible event. Satisfied by *logger.Logger.
type Journal interface {
	Logf(format string, args ...any)
}

// Manager owns the four engines and the cross-engine presets.
type Manager struct {
	Layers    *layers.Engine
	Search    *search.Engine
	Selection *selection.Engine
	Camera    *orbit.Engine

	registry anatomy.Registry
	cfg      config.Config
	journal  Journal
}

type options struct {
	projector  selection.Projector
	hits       selection.HitTester
	journal    Journal
	cameraOpts []orbit.Option
}

// Option configures a Manager.
type Option func(*options)

// WithProjector sets the camera used to turn clicks into rays.
func WithProjector(p selection.Projector) Option {
	return func(o *options) { o.projector = p }
}

// WithHitTester replaces the default AABB hit tester over the registry.
func WithHitTester(h selection.HitTester) Option {
	return func(o *options) { o.hits = h }
}

// WithJournal logs selections and search results.
func WithJournal(j Journal) Option {
	return func(o *options) { o.journal = j }
}

// WithCameraOptions passes extra options to the orbit engine. They run after the default anchor.
func WithCameraOptions(opts ...orbit.Option) Option {
	return func(o *options) { o.cameraOpts = append(o.cameraOpts, opts...) }
}

// New builds the engines over reg and applies cfg. The camera orbits the centre of the parts.
func New(reg anatomy.Registry, cfg config.Config, opts ...Option) *Manager {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hits == nil {
		o.hits = selection.PartHitTester{Registry: reg}
	}

	m := &Manager{registry: reg, journal: o.journal}
	m.Layers = layers.New(reg)
	m.Selection = selection.New(o.projector, o.hits)
	m.Search = search.New(reg,
		search.WithLayers(m.Layers),
		search.WithSelector(m.Selection),
		search.WithMinLength(cfg.Search.MinLength),
	)
	camOpts := append([]orbit.Option{orbit.WithAnchor(m.center())}, o.cameraOpts...)
	m.Camera = orbit.New(cfg.Camera, camOpts...)

	if m.journal != nil {
		m.subscribeJournal()
	}
	m.Search.ResultsChanged.Subscribe(m.autoSelect)
	m.ApplyConfig(cfg)
	return m
}

func (m *Manager) center() rl.Vector3 {
	if m.registry == nil {
		return rl.Vector3{}
	}
	b := anatomy.Bounds(m.registry.Enumerate())
	return rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
}

func (m *Manager) autoSelect(results []*anatomy.Part) {
	if m.cfg.Search.AutoSelectFirst && len(results) > 0 {
		m.Search.SelectResult(0)
	}
}

func (m *Manager) subscribeJournal() {
	m.Selection.PartSelected.Subscribe(func(p *anatomy.Part) {
		m.journal.Logf("Selected: %s (%s, Layer: %s)", p.Name, p.Type(), p.Layer())
		if p.Description != "" {
			m.journal.Logf("Description: %s", p.Description)
		}
	})
	m.Selection.SelectionCleared.Subscribe(func(struct{}) {
		m.journal.Logf("Selection cleared")
	})
	m.Search.ResultsChanged.Subscribe(func(results []*anatomy.Part) {
		if m.Search.Query() == "" {
			return
		}
		m.journal.Logf("Search %q found %d results", m.Search.Query(), len(results))
		for _, p := range results {
			m.journal.Logf("- %s", p.Name)
		}
	})
}

// Config returns the configuration last applied.
func (m *Manager) Config() config.Config { return m.cfg }

// Tick feeds one frame of input to the selection and camera engines.
func (m *Manager) Tick(s input.Snapshot, dt float32) {
	m.Selection.HandleInput(s)
	m.Camera.Update(s, dt)
}

// ApplyConfig shows only the default layers and pushes camera and search settings to the engines.
func (m *Manager) ApplyConfig(cfg config.Config) {
	m.cfg = cfg
	m.Layers.ShowOnly(cfg.Display.DefaultVisibleLayers...)
	m.Camera.Configure(cfg.Camera)
	m.Search.SetMinLength(cfg.Search.MinLength)
}

// Refresh re-enumerates the registry after parts were added or removed.
func (m *Manager) Refresh() {
	m.Layers.RefreshPartSnapshot()
	m.Layers.Reapply()
	m.Search.RefreshPartSnapshot()
}

// Reload is Refresh for a registry whose parts were all swapped out: it also drops the
// selection and search results, which may point at old parts, and re-centres the camera anchor.
func (m *Manager) Reload() {
	m.Selection.ClearSelection()
	m.Search.ClearSearch()
	m.Refresh()
	m.Camera.SetAnchor(m.center())
}

// Reset returns the camera home, clears the selection and the search, and shows every layer.
func (m *Manager) Reset() {
	m.Camera.ResetCamera()
	m.Selection.ClearSelection()
	m.Layers.ShowAll()
	m.Search.ClearSearch()
}

func (m *Manager) ShowBonesOnly() {
	m.Layers.ShowOnly(anatomy.Bone)
}

func (m *Manager) ShowMusclesOnly() {
	m.Layers.ShowOnly(anatomy.MuscleLayers...)
}

// ToggleBonesAndMuscles switches to muscles when bones are showing, otherwise to bones.
func (m *Manager) ToggleBonesAndMuscles() {
	if m.Layers.IsVisible(anatomy.Bone) {
		m.ShowMusclesOnly()
		return
	}
	m.ShowBonesOnly()
}

// ShowSuperficialMuscles shows the skeleton and the outermost muscle layer.
func (m *Manager) ShowSuperficialMuscles() {
	m.Layers.ShowOnly(anatomy.Bone, anatomy.Muscle1)
}

// ShowDeepMuscles shows the skeleton and the deepest muscle layer.
func (m *Manager) ShowDeepMuscles() {
	m.Layers.ShowOnly(anatomy.Bone, anatomy.Muscle7)
}

// RevealLayersProgressively shows the skeleton and muscle layers 1..n.
func (m *Manager) RevealLayersProgressively(n int) {
	m.Layers.RevealUpTo(n)
}

// FocusOnPart pans the camera onto p.
func (m *Manager) FocusOnPart(p *anatomy.Part) {
	if p == nil {
		return
	}
	m.Camera.FocusOnPoint(p.Position)
}

// Focus pans onto the selected part. It reports false when nothing is selected.
func (m *Manager) Focus() bool {
	p := m.Selection.Selected()
	if p == nil {
		return false
	}
	m.FocusOnPart(p)
	return true
}

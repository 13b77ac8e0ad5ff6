// Package scene renders the anatomy model through a raylib camera driven by the orbit engine.
package scene

import (
	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/orbit"
	"anatomy-viewer/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 100
	defaultFovy    = 45
)

// Scene holds the 3D camera and draws parts. It also turns screen positions into pick rays.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	// GridY is the height of the floor grid, usually just under the model.
	GridY     float32
	Highlight rl.Color
	renderer  *primitives.Renderer
}

// New returns a perspective scene with a yellow highlight and the grid shown.
func New() *Scene {
	s := &Scene{
		GridVisible: true,
		Highlight:   rl.Yellow,
		renderer:    primitives.NewRenderer(),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = defaultFovy
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// ApplyPose moves the camera to the orbit pose. Call once per frame after the camera update.
func (s *Scene) ApplyPose(p orbit.Pose) {
	s.Camera.Position = p.Position
	s.Camera.Target = p.LookAt
	s.Camera.Up = p.Up
}

// ScreenToWorldRay returns the pick ray through pos for the current camera.
func (s *Scene) ScreenToWorldRay(pos rl.Vector2) rl.Ray {
	return rl.GetScreenToWorldRay(pos, s.Camera)
}

// Draw renders the grid and every visible part. Highlighted parts also get a bounding box outline.
// Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw(parts []*anatomy.Part) {
	s.renderer.SetView(s.Camera.Position)
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid(s.GridY)
	}
	for _, p := range parts {
		if !p.Visible() {
			continue
		}
		s.renderer.DrawPart(p, primitives.Tint(p, s.Highlight))
		if p.Highlighted() {
			rl.DrawBoundingBox(p.Bounds(), s.Highlight)
		}
	}
	rl.EndMode3D()
}

// Unload frees GPU resources. Call before closing the window.
func (s *Scene) Unload() {
	s.renderer.Unload()
}

// FloorUnder returns a grid height just below parts.
func FloorUnder(parts []*anatomy.Part) float32 {
	return anatomy.Bounds(parts).Min.Y - 0.1
}

// drawGrid draws a grid on the XZ plane at height y with major and minor lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid(y float32) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}

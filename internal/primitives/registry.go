// Package primitives draws anatomy parts as lit cubes, spheres and cylinders.
package primitives

import (
	"anatomy-viewer/internal/anatomy"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
	// highlightRim brightens the silhouette of highlighted parts.
	highlightRim = 0.6
)

// Renderer caches one mesh per shape and a shared lit material. Meshes are created on first use
// so GPU resources are allocated after the window/OpenGL context exists.
type Renderer struct {
	meshes   map[string]rl.Mesh
	mtl      rl.Material
	shader   rl.Shader
	loc      uniforms
	ready    bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRenderer returns a renderer lit from above-right.
func NewRenderer() *Renderer {
	return &Renderer{
		meshes:   make(map[string]rl.Mesh),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets the camera position for this frame. Call once per frame before DrawPart.
func (r *Renderer) SetView(viewPos rl.Vector3) {
	r.viewPos = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
}

func (r *Renderer) ensureMaterial() {
	if r.ready {
		return
	}
	r.ready = true
	r.mtl = rl.LoadMaterialDefault()
	r.shader, r.loc = loadLitShader()
	if rl.IsShaderValid(r.shader) {
		r.mtl.Shader = r.shader
	}
}

func (r *Renderer) mesh(shape string) (rl.Mesh, bool) {
	if m, ok := r.meshes[shape]; ok {
		return m, true
	}
	var m rl.Mesh
	switch shape {
	case "cube":
		m = rl.GenMeshCube(1, 1, 1)
	case "sphere":
		// Radius 0.5 so diameter matches the unit cube.
		m = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case "cylinder":
		m = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
	default:
		return m, false
	}
	r.meshes[shape] = m
	return m, true
}

// DrawPart draws p with tint. Must be called between BeginMode3D and EndMode3D.
// Unknown shapes are drawn as cubes.
func (r *Renderer) DrawPart(p *anatomy.Part, tint rl.Color) {
	r.ensureMaterial()
	shape := p.Shape
	m, ok := r.mesh(shape)
	if !ok {
		shape = "cube"
		m, _ = r.mesh(shape)
	}
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rim := float32(0)
	if p.Highlighted() {
		rim = highlightRim
	}
	r.setUniforms(rim)
	rl.DrawMesh(m, r.mtl, Transform(shape, p.Position, p.Size))
}

func (r *Renderer) setUniforms(rim float32) {
	if !rl.IsShaderValid(r.shader) {
		return
	}
	view := r.viewPos
	light := r.lightDir
	amb := ambient
	if r.loc.viewPos >= 0 {
		rl.SetShaderValueV(r.shader, r.loc.viewPos, view[:], rl.ShaderUniformVec3, 1)
	}
	if r.loc.lightDir >= 0 {
		rl.SetShaderValueV(r.shader, r.loc.lightDir, light[:], rl.ShaderUniformVec3, 1)
	}
	if r.loc.ambient >= 0 {
		rl.SetShaderValueV(r.shader, r.loc.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	if r.loc.rim >= 0 {
		rl.SetShaderValue(r.shader, r.loc.rim, []float32{rim}, rl.ShaderUniformFloat)
	}
}

// Unload frees the cached meshes and the shader.
func (r *Renderer) Unload() {
	for k, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, k)
	}
	if r.ready && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.ready = false
}

// Tint picks the draw colour: highlight for highlighted parts, the layer colour otherwise.
func Tint(p *anatomy.Part, highlight rl.Color) rl.Color {
	if p.Highlighted() {
		return highlight
	}
	return p.Layer().Color()
}

// Transform places a unit mesh of shape at position with size (zero components → 1).
// Cylinders are generated base-up from Y=0 and are shifted down by half their height.
func Transform(shape string, position, size rl.Vector3) rl.Matrix {
	sx, sy, sz := size.X, size.Y, size.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	// Order: centre the mesh, then scale, then translate to position.
	m := rl.MatrixScale(sx, sy, sz)
	if shape == "cylinder" {
		m = rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), m)
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position.X, position.Y, position.Z))
}

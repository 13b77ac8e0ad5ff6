package anatomy

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/cases"
)

// Part is one bone or muscle. Type and layer are fixed at construction; the
// engines only write visibility and highlight state.
type Part struct {
	ID          string
	Name        string
	Description string
	// Shape is the primitive used to draw the part ("cube", "sphere", "cylinder").
	Shape    string
	Position rl.Vector3
	Size     rl.Vector3

	typ         PartType
	layer       Layer
	visible     bool
	highlighted bool
}

// NewPart returns a visible, unhighlighted part. Shape defaults to "cube" and a zero size to 1×1×1.
func NewPart(id, name, description string, typ PartType, layer Layer) *Part {
	return &Part{
		ID:          id,
		Name:        name,
		Description: description,
		Shape:       "cube",
		Size:        rl.NewVector3(1, 1, 1),
		typ:         typ,
		layer:       layer,
		visible:     true,
	}
}

func (p *Part) Type() PartType { return p.typ }

func (p *Part) Layer() Layer { return p.layer }

func (p *Part) Visible() bool { return p.visible }

// SetVisible shows or hides the part.
func (p *Part) SetVisible(visible bool) {
	p.visible = visible
}

func (p *Part) Highlighted() bool { return p.highlighted }

// Highlight marks the part highlighted. Highlighting twice is a no-op.
func (p *Part) Highlight() {
	p.highlighted = true
}

// Unhighlight clears the highlight flag.
func (p *Part) Unhighlight() {
	p.highlighted = false
}

// Bounds returns the world-space AABB centred on Position. Zero size components count as 1.
func (p *Part) Bounds() rl.BoundingBox {
	sx, sy, sz := p.Size.X, p.Size.Y, p.Size.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	return rl.NewBoundingBox(
		rl.NewVector3(p.Position.X-sx*0.5, p.Position.Y-sy*0.5, p.Position.Z-sz*0.5),
		rl.NewVector3(p.Position.X+sx*0.5, p.Position.Y+sy*0.5, p.Position.Z+sz*0.5),
	)
}

// MatchesSearch reports whether name or description contains query, ignoring case.
// An empty query matches every part.
func (p *Part) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := Fold(query)
	return strings.Contains(Fold(p.Name), q) || strings.Contains(Fold(p.Description), q)
}

// Fold returns the Unicode case-folded form of s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Bounds returns the union AABB of parts. With no parts it returns a unit box at the origin.
func Bounds(parts []*Part) rl.BoundingBox {
	if len(parts) == 0 {
		return rl.NewBoundingBox(rl.NewVector3(-0.5, -0.5, -0.5), rl.NewVector3(0.5, 0.5, 0.5))
	}
	out := parts[0].Bounds()
	for _, p := range parts[1:] {
		b := p.Bounds()
		out.Min = rl.Vector3Min(out.Min, b.Min)
		out.Max = rl.Vector3Max(out.Max, b.Max)
	}
	return out
}

package selection

import (
	"testing"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topDown maps screen (x, y) to a ray pointing down -Z from z=100.
type topDown struct{}

func (topDown) ScreenToWorldRay(pos rl.Vector2) rl.Ray {
	return rl.NewRay(rl.NewVector3(pos.X, pos.Y, 100), rl.NewVector3(0, 0, -1))
}

// fixedHit always returns the same result and records the mask it was given.
type fixedHit struct {
	hit   Hit
	ok    bool
	masks []LayerMask
}

func (f *fixedHit) Raycast(_ rl.Ray, mask LayerMask) (Hit, bool) {
	f.masks = append(f.masks, mask)
	return f.hit, f.ok
}

type recorder struct {
	selected []*anatomy.Part
	cleared  int
}

func record(e *Engine) *recorder {
	r := &recorder{}
	e.PartSelected.Subscribe(func(p *anatomy.Part) { r.selected = append(r.selected, p) })
	e.SelectionCleared.Subscribe(func(struct{}) { r.cleared++ })
	return r
}

func part(name string, layer anatomy.Layer) *anatomy.Part {
	typ := anatomy.TypeMuscle
	if layer == anatomy.Bone {
		typ = anatomy.TypeBone
	}
	return anatomy.NewPart(anatomy.Slug(name), name, "", typ, layer)
}

func TestSelectPartExclusive(t *testing.T) {
	e := New(nil, nil)
	r := record(e)
	a, b := part("A", anatomy.Bone), part("B", anatomy.Muscle1)

	e.SelectPart(a)
	e.SelectPart(b)

	assert.False(t, a.Highlighted())
	assert.True(t, b.Highlighted())
	assert.Same(t, b, e.Selected())
	assert.Equal(t, []*anatomy.Part{a, b}, r.selected)
	assert.Zero(t, r.cleared, "switching parts fires no clear")
}

func TestReselectIsIdempotent(t *testing.T) {
	e := New(nil, nil)
	r := record(e)
	a := part("A", anatomy.Bone)

	e.SelectPart(a)
	a.Unhighlight()
	e.SelectPart(a)

	assert.True(t, a.Highlighted(), "highlight reasserted")
	assert.Len(t, r.selected, 1)
}

func TestClearSelection(t *testing.T) {
	e := New(nil, nil)
	r := record(e)

	e.ClearSelection()
	e.ClearSelection()
	assert.Zero(t, r.cleared)

	a := part("A", anatomy.Bone)
	e.SelectPart(a)
	e.ClearSelection()
	e.ClearSelection()
	assert.Equal(t, 1, r.cleared)
	assert.False(t, a.Highlighted())
	assert.Nil(t, e.Selected())

	e.SelectPart(a)
	e.SelectPart(nil)
	assert.Equal(t, 2, r.cleared)
}

func TestSelectAtScreenPosition(t *testing.T) {
	near := part("Near", anatomy.Muscle1)
	near.Position = rl.NewVector3(0, 0, 5)
	far := part("Far", anatomy.Bone)
	far.Position = rl.NewVector3(0, 0, 0)
	other := part("Other", anatomy.Muscle2)
	other.Position = rl.NewVector3(10, 10, 0)
	set := anatomy.NewSet(far, near, other)

	e := New(topDown{}, PartHitTester{Registry: set})
	r := record(e)

	e.SelectAtScreenPosition(rl.NewVector2(0, 0))
	assert.Same(t, near, e.Selected(), "nearest hit wins")

	near.SetVisible(false)
	e.SelectAtScreenPosition(rl.NewVector2(0, 0))
	assert.Same(t, far, e.Selected(), "hidden parts are not pickable")

	e.SelectAtScreenPosition(rl.NewVector2(50, 50))
	assert.Nil(t, e.Selected())
	assert.Equal(t, 1, r.cleared)

	e.SetLayerMask(MaskOf(anatomy.Muscle1))
	e.SelectAtScreenPosition(rl.NewVector2(10, 10))
	assert.Nil(t, e.Selected(), "layer filtered out")
	assert.Equal(t, 1, r.cleared, "nothing to clear")
}

func TestNonPartHitClears(t *testing.T) {
	hits := &fixedHit{ok: true, hit: Hit{Object: "a wall"}}
	e := New(topDown{}, hits, WithLayerMask(MaskOf(anatomy.Bone)))
	r := record(e)
	a := part("A", anatomy.Bone)
	e.SelectPart(a)

	e.SelectAtScreenPosition(rl.NewVector2(1, 1))
	assert.Nil(t, e.Selected())
	assert.Equal(t, 1, r.cleared)
	require.Len(t, hits.masks, 1)
	assert.Equal(t, MaskOf(anatomy.Bone), hits.masks[0])
}

type holder struct{ p *anatomy.Part }

func (h holder) AnatomyPart() *anatomy.Part { return h.p }

func TestHitResolvesThroughHolder(t *testing.T) {
	a := part("A", anatomy.Bone)
	e := New(topDown{}, &fixedHit{ok: true, hit: Hit{Object: holder{a}}})
	e.SelectAtScreenPosition(rl.NewVector2(0, 0))
	assert.Same(t, a, e.Selected())
}

func TestMissingCollaboratorsAreNoOps(t *testing.T) {
	e := New(nil, &fixedHit{ok: true})
	r := record(e)
	a := part("A", anatomy.Bone)
	e.SelectPart(a)
	e.SelectAtScreenPosition(rl.NewVector2(0, 0))
	assert.Same(t, a, e.Selected())
	assert.Zero(t, r.cleared)
}

func TestHandleInputOnePerPress(t *testing.T) {
	hits := &fixedHit{}
	e := New(topDown{}, hits)
	held := input.Snapshot{MouseHeld: input.Buttons(0).With(input.MouseLeft)}

	e.HandleInput(held)
	e.HandleInput(held)
	e.HandleInput(held)
	assert.Len(t, hits.masks, 1, "holding the button is one action")

	e.HandleInput(input.Snapshot{})
	e.HandleInput(held)
	assert.Len(t, hits.masks, 2)
}

func TestHandleInputTouchBegin(t *testing.T) {
	hits := &fixedHit{}
	e := New(topDown{}, hits)
	begin := input.Snapshot{Touches: []input.Touch{{ID: 1, Phase: input.PhaseBegan}}}
	moved := input.Snapshot{Touches: []input.Touch{{ID: 1, Phase: input.PhaseMoved}}}
	two := input.Snapshot{Touches: []input.Touch{{ID: 1, Phase: input.PhaseBegan}, {ID: 2, Phase: input.PhaseBegan}}}

	e.HandleInput(begin)
	e.HandleInput(moved)
	e.HandleInput(moved)
	e.HandleInput(two)
	assert.Len(t, hits.masks, 1)
}

func TestLayerMask(t *testing.T) {
	m := MaskOf(anatomy.Bone, anatomy.Muscle3, anatomy.Layer(40))
	assert.True(t, m.Includes(anatomy.Bone))
	assert.True(t, m.Includes(anatomy.Muscle3))
	assert.False(t, m.Includes(anatomy.Muscle2))
	assert.False(t, AllLayers.Includes(anatomy.Layer(-1)))
	assert.True(t, AllLayers.Includes(anatomy.Muscle7))
}

package search

import (
	"testing"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/layers"
	"anatomy-viewer/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(parts []*anatomy.Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Name
	}
	return out
}

func boneSet() *anatomy.Set {
	return anatomy.NewSet(
		anatomy.NewPart("clavicle", "Clavicle", "The collarbone connects the shoulder blade to the sternum.", anatomy.TypeBone, anatomy.Bone),
		anatomy.NewPart("boneset", "Boneset", "Made-up part for ranking.", anatomy.TypeBone, anatomy.Bone),
		anatomy.NewPart("deltoid", "Deltoid", "Shoulder muscle responsible for arm abduction.", anatomy.TypeMuscle, anatomy.Muscle1),
		anatomy.NewPart("bone", "Bone", "Generic.", anatomy.TypeBone, anatomy.Bone),
	)
}

func TestRankingOrder(t *testing.T) {
	e := New(boneSet())
	e.Search("bone")
	assert.Equal(t, []string{"Bone", "Boneset", "Clavicle"}, names(e.Results()))
}

func TestRankTiesKeepRegistryOrder(t *testing.T) {
	set := anatomy.NewSet(
		anatomy.NewPart("c", "Teres Minor", "", anatomy.TypeMuscle, anatomy.Muscle2),
		anatomy.NewPart("a", "Biceps Brachii", "upper arm", anatomy.TypeMuscle, anatomy.Muscle4),
		anatomy.NewPart("b", "Triceps Brachii", "", anatomy.TypeMuscle, anatomy.Muscle4),
		anatomy.NewPart("d", "Brachialis", "", anatomy.TypeMuscle, anatomy.Muscle4),
	)
	got := Rank(set.Enumerate(), "BRACHI")
	assert.Equal(t, []string{"Brachialis", "Biceps Brachii", "Triceps Brachii"}, names(got))
}

func TestShortQueriesYieldNothing(t *testing.T) {
	e := New(boneSet(), WithMinLength(3))
	var fired [][]*anatomy.Part
	e.ResultsChanged.Subscribe(func(r []*anatomy.Part) { fired = append(fired, r) })

	for _, q := range []string{"", "b", "bo"} {
		e.Search(q)
		assert.Empty(t, e.Results(), "query %q", q)
	}
	require.Len(t, fired, 3, "empty results still notify")
	for _, r := range fired {
		assert.NotNil(t, r)
		assert.Empty(t, r)
	}
	assert.Equal(t, "bo", e.Query())
}

func TestMinLengthCountsCharacters(t *testing.T) {
	set := anatomy.NewSet(anatomy.NewPart("femur", "股骨", "", anatomy.TypeBone, anatomy.Bone))
	e := New(set)
	e.Search("股骨")
	assert.Len(t, e.Results(), 1)

	e.SetMinLength(0)
	assert.Equal(t, 1, e.MinLength())
}

func TestSearchClearSearchRoundTrip(t *testing.T) {
	e := New(anatomy.SampleDatabase().Instantiate())
	e.Search("Femur")
	first := e.Results()
	require.NotEmpty(t, first)
	assert.Equal(t, "Femur", first[0].Name)

	e.ClearSearch()
	assert.Empty(t, e.Results())
	assert.Equal(t, "", e.Query())

	e.Search("Femur")
	assert.Equal(t, first, e.Results())
}

func TestStaleResultsReplaced(t *testing.T) {
	e := New(boneSet())
	e.Search("bone")
	e.Search("deltoid")
	assert.Equal(t, []string{"Deltoid"}, names(e.Results()))
	e.Search("zzz")
	assert.Empty(t, e.Results())
}

func TestResultsAreCopies(t *testing.T) {
	e := New(boneSet())
	var delivered []*anatomy.Part
	e.ResultsChanged.Subscribe(func(r []*anatomy.Part) { delivered = r })
	e.Search("bone")
	delivered[0] = nil
	got := e.Results()
	got[1] = nil
	assert.Equal(t, []string{"Bone", "Boneset", "Clavicle"}, names(e.Results()))
}

func TestEmptySnapshotRefreshesOnSearch(t *testing.T) {
	set := anatomy.NewSet()
	e := New(set)
	set.Add(anatomy.NewPart("femur", "Femur", "", anatomy.TypeBone, anatomy.Bone))
	e.Search("fem")
	assert.Len(t, e.Results(), 1)
}

func TestSelectResultRevealsLayerFirst(t *testing.T) {
	set := anatomy.SampleDatabase().Instantiate()
	vis := layers.New(set)
	sel := selection.New(nil, nil)
	e := New(set, WithLayers(vis), WithSelector(sel))

	vis.ShowOnly(anatomy.Bone)
	e.Search("piriformis")
	require.Len(t, e.Results(), 1)
	target := e.Results()[0]
	require.False(t, target.Visible())

	var visibleAtSelect bool
	sel.PartSelected.Subscribe(func(p *anatomy.Part) {
		visibleAtSelect = vis.IsVisible(p.Layer()) && p.Visible()
	})
	e.SelectResult(0)

	assert.True(t, vis.IsVisible(anatomy.Muscle7))
	assert.Same(t, target, sel.Selected())
	assert.True(t, target.Highlighted())
	assert.True(t, visibleAtSelect, "layer revealed before the selection event")
}

type callLog struct{ calls []string }

func (c *callLog) SetVisibility(l anatomy.Layer, v bool) { c.calls = append(c.calls, "layer") }
func (c *callLog) SelectPart(p *anatomy.Part)            { c.calls = append(c.calls, "select") }

func TestSelectResultBounds(t *testing.T) {
	log := &callLog{}
	e := New(boneSet(), WithLayers(log), WithSelector(log))
	e.Search("bone")

	e.SelectResult(-1)
	e.SelectResult(3)
	assert.Empty(t, log.calls)

	e.SelectResult(2)
	assert.Equal(t, []string{"layer", "select"}, log.calls)

	New(boneSet()).SelectResult(0)
}

func TestHighlightResults(t *testing.T) {
	e := New(boneSet())
	e.Search("bone")
	e.HighlightResults()
	for _, p := range e.Results() {
		assert.True(t, p.Highlighted())
	}
	e.UnhighlightResults()
	for _, p := range e.Results() {
		assert.False(t, p.Highlighted())
	}
}

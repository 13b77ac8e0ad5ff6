package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtons(t *testing.T) {
	var b Buttons
	assert.False(t, b.Has(MouseLeft))
	b = b.With(MouseLeft).With(MouseMiddle)
	assert.True(t, b.Has(MouseLeft))
	assert.True(t, b.Has(MouseMiddle))
	assert.False(t, b.Has(MouseRight))
}

func TestTouchPreviousPosition(t *testing.T) {
	tc := Touch{Position: rl.NewVector2(10, 20), Delta: rl.NewVector2(3, -4)}
	assert.Equal(t, rl.NewVector2(7, 24), tc.PreviousPosition())
}

func TestTrackTouchesPhases(t *testing.T) {
	prev := map[int32]rl.Vector2{}

	got := trackTouches(prev, []touchPoint{{id: 1, pos: rl.NewVector2(5, 5)}})
	require.Len(t, got, 1)
	assert.Equal(t, PhaseBegan, got[0].Phase)
	assert.Equal(t, rl.Vector2{}, got[0].Delta)

	got = trackTouches(prev, []touchPoint{{id: 1, pos: rl.NewVector2(8, 1)}, {id: 2, pos: rl.NewVector2(0, 0)}})
	require.Len(t, got, 2)
	assert.Equal(t, PhaseMoved, got[0].Phase)
	assert.Equal(t, rl.NewVector2(3, -4), got[0].Delta)
	assert.Equal(t, PhaseBegan, got[1].Phase)

	got = trackTouches(prev, []touchPoint{{id: 2, pos: rl.NewVector2(0, 0)}})
	require.Len(t, got, 1)
	assert.Equal(t, PhaseStationary, got[0].Phase)
	assert.NotContains(t, prev, int32(1))

	got = trackTouches(prev, []touchPoint{{id: 1, pos: rl.NewVector2(50, 50)}})
	assert.Equal(t, PhaseBegan, got[0].Phase, "lifted finger starts fresh")
}

package commands

import (
	"errors"
	"fmt"
	"testing"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/config"
	"anatomy-viewer/internal/locale"
	"anatomy-viewer/internal/viewer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type output struct{ lines []string }

func (o *output) Logf(format string, args ...any) {
	o.lines = append(o.lines, fmt.Sprintf(format, args...))
}

func TestParse(t *testing.T) {
	args, ok, err := Parse(`cmd search "pectoralis major"`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"search", "pectoralis major"}, args)

	args, ok, err = Parse("cmd   ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok, _ = Parse("femur")
	assert.False(t, ok)
	_, ok, _ = Parse("CMD layer 1")
	assert.False(t, ok)

	_, ok, err = Parse(`cmd search "open`)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("echo")
	loud := fs.Bool("loud", false, "")
	var got []string
	var gotLoud []bool
	r.Register("echo", "echo [--loud] <words>", fs, func(args []string) error {
		got = args
		gotLoud = append(gotLoud, *loud)
		return nil
	})
	r.Register("fail", "fail", nil, func([]string) error { return errors.New("boom") })

	require.NoError(t, r.Execute([]string{"echo", "a", "--loud", "b"}))
	assert.Equal(t, []string{"a", "b"}, got)
	require.NoError(t, r.Execute([]string{"echo", "c"}))
	assert.Equal(t, []bool{true, false}, gotLoud, "flags reset between runs")

	assert.EqualError(t, r.Execute([]string{"fail"}), "boom")
	assert.EqualError(t, r.Execute(nil), "missing subcommand")
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.ErrorContains(t, r.Execute([]string{"echo", "--quiet"}), "usage: echo [--loud] <words>")
	assert.Equal(t, []string{"echo", "fail"}, r.Names())
}

func setup(t *testing.T) (*Registry, *viewer.Manager, *anatomy.Set, *output) {
	t.Helper()
	set := anatomy.SampleDatabase().Instantiate()
	cfg := config.Default()
	cfg.Search.AutoSelectFirst = false
	m := viewer.New(set, cfg)
	out := &output{}
	r := NewRegistry()
	RegisterViewer(r, m, locale.New("en"), out)
	return r, m, set, out
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok, err := Parse(line)
	require.True(t, ok, line)
	require.NoError(t, err, line)
	return r.Execute(args)
}

func TestLayerCommand(t *testing.T) {
	r, m, _, out := setup(t)

	require.NoError(t, run(t, r, "cmd layer 3 --show"))
	assert.True(t, m.Layers.IsVisible(anatomy.Muscle3))
	assert.Equal(t, "Muscle Layer 3: shown", out.lines[len(out.lines)-1])

	require.NoError(t, run(t, r, "cmd layer 3"))
	assert.True(t, m.Layers.IsVisible(anatomy.Muscle3), "no flag only reports")

	require.NoError(t, run(t, r, "cmd layer --toggle 0"))
	assert.False(t, m.Layers.IsVisible(anatomy.Bone))

	require.NoError(t, run(t, r, "cmd layer 1 --hide"))
	assert.False(t, m.Layers.IsVisible(anatomy.Muscle1))

	assert.Error(t, run(t, r, "cmd layer 8 --show"))
	assert.Error(t, run(t, r, "cmd layer bone"))
	assert.Error(t, run(t, r, "cmd layer 2 --show --hide"))
	assert.Error(t, run(t, r, "cmd layer"))
}

func TestLayerPresetCommands(t *testing.T) {
	r, m, _, _ := setup(t)

	require.NoError(t, run(t, r, "cmd only 2 4"))
	assert.Equal(t, [anatomy.LayerCount]bool{false, false, true, false, true}, m.Layers.Visibility())

	require.NoError(t, run(t, r, "cmd hideall"))
	assert.Equal(t, [anatomy.LayerCount]bool{}, m.Layers.Visibility())

	require.NoError(t, run(t, r, "cmd showall"))
	assert.True(t, m.Layers.IsVisible(anatomy.Muscle7))

	require.NoError(t, run(t, r, "cmd bones"))
	assert.Equal(t, [anatomy.LayerCount]bool{true}, m.Layers.Visibility())

	require.NoError(t, run(t, r, "cmd swap"))
	assert.False(t, m.Layers.IsVisible(anatomy.Bone))
	assert.True(t, m.Layers.IsVisible(anatomy.Muscle4))

	require.NoError(t, run(t, r, "cmd deep"))
	assert.Equal(t, [anatomy.LayerCount]bool{true, false, false, false, false, false, false, true}, m.Layers.Visibility())

	require.NoError(t, run(t, r, "cmd reveal 2"))
	assert.Equal(t, [anatomy.LayerCount]bool{true, true, true}, m.Layers.Visibility())

	assert.Error(t, run(t, r, "cmd only"))
	assert.Error(t, run(t, r, "cmd only 1 x"))
	assert.Error(t, run(t, r, "cmd bones 1"))
	assert.Error(t, run(t, r, "cmd reveal many"))
}

func TestSearchAndSelectCommands(t *testing.T) {
	r, m, set, out := setup(t)

	require.NoError(t, run(t, r, `cmd search "biceps brachii"`))
	assert.Equal(t, "biceps brachii", m.Search.Query())
	assert.Equal(t, []string{"0. Biceps Brachii (Muscle Layer 4)"}, out.lines)

	require.NoError(t, run(t, r, "cmd select 0"))
	biceps, _ := set.Find("biceps_brachii")
	assert.Same(t, biceps, m.Selection.Selected())
	assert.True(t, m.Layers.IsVisible(anatomy.Muscle4))
	assert.Error(t, run(t, r, "cmd select 5"))
	assert.Error(t, run(t, r, "cmd select first"))

	out.lines = nil
	require.NoError(t, run(t, r, "cmd search zzz"))
	assert.Equal(t, []string{"No results found"}, out.lines)

	require.NoError(t, run(t, r, "cmd search vertebrae"))
	require.NoError(t, run(t, r, "cmd highlight --on"))
	for _, p := range m.Search.Results() {
		assert.True(t, p.Highlighted())
	}
	require.NoError(t, run(t, r, "cmd highlight --off"))
	for _, p := range m.Search.Results() {
		assert.False(t, p.Highlighted())
	}
	assert.Error(t, run(t, r, "cmd highlight"))

	require.NoError(t, run(t, r, "cmd clear"))
	assert.Empty(t, m.Search.Results())
}

func TestCameraCommands(t *testing.T) {
	r, m, set, out := setup(t)

	require.NoError(t, run(t, r, "cmd focus"))
	assert.Equal(t, "nothing selected", out.lines[len(out.lines)-1])

	femur, _ := set.Find("femur")
	m.Selection.SelectPart(femur)
	require.NoError(t, run(t, r, "cmd focus"))
	assert.NotZero(t, m.Camera.Target().Pan)

	require.NoError(t, run(t, r, "cmd reset"))
	assert.Zero(t, m.Camera.Target().Pan)
	assert.Nil(t, m.Selection.Selected())
}

func TestLangAndHelp(t *testing.T) {
	r, _, _, out := setup(t)
	require.NoError(t, run(t, r, "cmd lang zh"))
	assert.Equal(t, "language: zh", out.lines[len(out.lines)-1])

	require.NoError(t, run(t, r, "cmd layer 0"))
	assert.Equal(t, "骨骼系统: shown", out.lines[len(out.lines)-1])

	out.lines = nil
	require.NoError(t, run(t, r, "cmd help"))
	assert.Len(t, out.lines, len(r.Names()))
	assert.Contains(t, out.lines, "cmd layer <0-7> [--show|--hide|--toggle]")
}

func TestWithoutLocale(t *testing.T) {
	m := viewer.New(anatomy.SampleDatabase().Instantiate(), config.Default())
	r := NewRegistry()
	out := &output{}
	RegisterViewer(r, m, nil, out)
	assert.NotContains(t, r.Names(), "lang")

	require.NoError(t, run(t, r, "cmd layer 7"))
	assert.Equal(t, "Deep Muscles (Layer 7): hidden", out.lines[0])
}

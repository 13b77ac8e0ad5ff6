package commands

import (
	"fmt"
	"strconv"
	"strings"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/locale"
	"anatomy-viewer/internal/viewer"
)

// Output receives command feedback. Satisfied by *logger.Logger.
type Output interface {
	Logf(format string, args ...any)
}

// RegisterViewer adds the viewer commands: layer visibility, search, selection, camera and language.
// loc may be nil, in which case "lang" is not registered and names are shown in English.
func RegisterViewer(r *Registry, m *viewer.Manager, loc *locale.Localizer, out Output) {
	layerName := func(l anatomy.Layer) string {
		if loc == nil {
			return l.DisplayName()
		}
		return loc.LayerName(l)
	}
	partName := func(p *anatomy.Part) string {
		if loc == nil {
			return p.Name
		}
		return loc.PartName(p)
	}

	layerFS := NewFlagSet("layer")
	show := layerFS.Bool("show", false, "show the layer")
	hide := layerFS.Bool("hide", false, "hide the layer")
	toggle := layerFS.Bool("toggle", false, "flip the layer")
	r.Register("layer", "layer <0-7> [--show|--hide|--toggle]", layerFS, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("layer: want one layer number")
		}
		l, err := parseLayer(args[0])
		if err != nil {
			return err
		}
		switch {
		case *show && *hide, *show && *toggle, *hide && *toggle:
			return fmt.Errorf("layer: --show, --hide and --toggle are exclusive")
		case *show:
			m.Layers.SetVisibility(l, true)
		case *hide:
			m.Layers.SetVisibility(l, false)
		case *toggle:
			m.Layers.Toggle(l)
		}
		out.Logf("%s: %s", layerName(l), onOff(m.Layers.IsVisible(l)))
		return nil
	})

	r.Register("only", "only <0-7>...", nil, func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("only: want at least one layer number")
		}
		ls := make([]anatomy.Layer, 0, len(args))
		for _, a := range args {
			l, err := parseLayer(a)
			if err != nil {
				return err
			}
			ls = append(ls, l)
		}
		m.Layers.ShowOnly(ls...)
		return nil
	})

	noArgs := func(name string, fn func()) {
		r.Register(name, name, nil, func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%s takes no arguments", name)
			}
			fn()
			return nil
		})
	}
	noArgs("showall", m.Layers.ShowAll)
	noArgs("hideall", m.Layers.HideAll)
	noArgs("bones", m.ShowBonesOnly)
	noArgs("muscles", m.ShowMusclesOnly)
	noArgs("swap", m.ToggleBonesAndMuscles)
	noArgs("superficial", m.ShowSuperficialMuscles)
	noArgs("deep", m.ShowDeepMuscles)
	noArgs("clear", m.Search.ClearSearch)
	noArgs("reset", m.Reset)

	r.Register("reveal", "reveal <1-7>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("reveal: want a layer count")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("reveal: %w", err)
		}
		m.RevealLayersProgressively(n)
		return nil
	})

	r.Register("search", "search <query>", nil, func(args []string) error {
		m.Search.Search(strings.Join(args, " "))
		results := m.Search.Results()
		if len(results) == 0 {
			if loc != nil {
				out.Logf("%s", loc.GetString("no_results"))
			}
			return nil
		}
		for i, p := range results {
			out.Logf("%d. %s (%s)", i, partName(p), layerName(p.Layer()))
		}
		return nil
	})

	r.Register("select", "select <result index>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("select: want a result index")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		if n := len(m.Search.Results()); i < 0 || i >= n {
			return fmt.Errorf("select: index %d out of range (%d results)", i, n)
		}
		m.Search.SelectResult(i)
		return nil
	})

	hlFS := NewFlagSet("highlight")
	on := hlFS.Bool("on", false, "highlight every result")
	off := hlFS.Bool("off", false, "remove result highlights")
	r.Register("highlight", "highlight --on|--off", hlFS, func(args []string) error {
		switch {
		case *on == *off:
			return fmt.Errorf("highlight: want exactly one of --on or --off")
		case *on:
			m.Search.HighlightResults()
		default:
			m.Search.UnhighlightResults()
		}
		return nil
	})

	noArgs("focus", func() {
		if !m.Focus() {
			out.Logf("nothing selected")
		}
	})

	if loc != nil {
		r.Register("lang", "lang <en|zh>", nil, func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("lang: want a language tag")
			}
			loc.SetLanguage(args[0])
			out.Logf("language: %s", loc.Language())
			return nil
		})
	}

	r.Register("help", "help", nil, func([]string) error {
		for _, n := range r.Names() {
			u, _ := r.Usage(n)
			out.Logf("cmd %s", u)
		}
		return nil
	})
}

func parseLayer(s string) (anatomy.Layer, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("layer %q: want a number 0-7", s)
	}
	l := anatomy.Layer(n)
	if !l.Valid() {
		return 0, fmt.Errorf("layer %d out of range 0-7", n)
	}
	return l, nil
}

func onOff(v bool) string {
	if v {
		return "shown"
	}
	return "hidden"
}

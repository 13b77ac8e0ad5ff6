// Package locale provides the English and Chinese UI strings.
package locale

import (
	"slices"

	"anatomy-viewer/internal/anatomy"

	"golang.org/x/text/language"
)

// Supported lists the UI languages; the first is the fallback.
var Supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(Supported)

// Match returns the supported language closest to tag (e.g. "zh-CN", "en-GB").
// Unknown or malformed tags give English.
func Match(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return language.English
	}
	_, i, _ := matcher.Match(t)
	return Supported[i]
}

// Localizer looks up strings in the current language.
type Localizer struct {
	lang language.Tag
}

// New returns a localizer for the language closest to tag.
func New(tag string) *Localizer {
	return &Localizer{lang: Match(tag)}
}

func (l *Localizer) Language() language.Tag { return l.lang }

// SetLanguage switches to the language closest to tag.
func (l *Localizer) SetLanguage(tag string) {
	l.lang = Match(tag)
}

// GetString returns key in the current language, then English, then the key itself.
func (l *Localizer) GetString(key string) string {
	e, ok := table[key]
	if !ok {
		return key
	}
	if l.lang == language.Chinese && e.zh != "" {
		return e.zh
	}
	if e.en != "" {
		return e.en
	}
	return key
}

var layerKeys = [anatomy.LayerCount]string{
	"skeletal_system",
	"superficial_muscles",
	"muscle_layer_2",
	"muscle_layer_3",
	"muscle_layer_4",
	"muscle_layer_5",
	"muscle_layer_6",
	"deep_muscles",
}

// LayerName returns the display name of layer.
func (l *Localizer) LayerName(layer anatomy.Layer) string {
	if !layer.Valid() {
		return layer.String()
	}
	return l.GetString(layerKeys[layer])
}

// TypeName returns "Bone" / "Muscle" in the current language.
func (l *Localizer) TypeName(t anatomy.PartType) string {
	switch t {
	case anatomy.TypeBone:
		return l.GetString("bone")
	case anatomy.TypeMuscle:
		return l.GetString("muscle")
	}
	return t.String()
}

// PartName translates a part by its ID, falling back to the part's own name.
func (l *Localizer) PartName(p *anatomy.Part) string {
	if p == nil {
		return ""
	}
	if s := l.GetString(p.ID); s != p.ID {
		return s
	}
	return p.Name
}

// Texts returns every translated string in every supported language, sorted by key.
func Texts() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		out = append(out, table[k].en, table[k].zh)
	}
	return out
}

// Package fonts finds a TTF/OTF font on disk that can draw the viewer's English and Chinese text.
package fonts

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// CJKFamilies are tried in order before falling back to any font found.
var CJKFamilies = []string{"Noto Sans SC", "Noto Sans CJK", "Source Han Sans", "WenQuanYi", "Noto Sans"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Noto/NotoSansSC-Regular.ttf"),
// sorted, with forward slashes. A missing dir gives an empty list.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	slices.Sort(out)
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find returns the full path of the first font under dirs matching one of families, tried in order.
// Within a family, a path containing "Regular" wins. With no family match the first font found is used.
func Find(dirs []string, families ...string) (string, error) {
	var all []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			all = append(all, filepath.ToSlash(filepath.Join(base, rel)))
		}
	}
	if len(all) == 0 {
		return "", os.ErrNotExist
	}
	for _, family := range families {
		norm := normalizeForMatch(family)
		if norm == "" {
			continue
		}
		var match string
		for _, full := range all {
			n := normalizeForMatch(filepath.Base(full))
			if !strings.Contains(n, norm) && !strings.Contains(normalizeForMatch(full), norm) {
				continue
			}
			if strings.Contains(n, "regular") {
				return full, nil
			}
			if match == "" {
				match = full
			}
		}
		if match != "" {
			return match, nil
		}
	}
	return all[0], nil
}

// Codepoints returns printable ASCII plus every rune in texts, deduplicated and sorted.
func Codepoints(texts ...string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	add := func(r rune) {
		if r < ' ' || seen[r] {
			return
		}
		seen[r] = true
		out = append(out, r)
	}
	for r := rune(' '); r <= '~'; r++ {
		add(r)
	}
	for _, s := range texts {
		for _, r := range s {
			add(r)
		}
	}
	slices.Sort(out)
	return out
}

// Load finds a CJK-capable font under BaseDirs and rasterizes the glyphs needed for texts at size.
// Needs an open window. Returns os.ErrNotExist when no usable font is present.
func Load(size int32, texts ...string) (rl.Font, error) {
	path, err := Find(BaseDirs(), CJKFamilies...)
	if err != nil {
		return rl.Font{}, err
	}
	f := rl.LoadFontEx(path, size, Codepoints(texts...))
	if f.Texture.ID == 0 {
		return rl.Font{}, os.ErrNotExist
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, nil
}

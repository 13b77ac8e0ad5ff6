// Package infopanel draws the selected part's details and an optional FPS counter.
package infopanel

import (
	"fmt"
	"strings"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/locale"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	panelWidth = 420
	// wrapAt is the description line length in runes.
	wrapAt = 40
	// fpsInterval: only refresh the FPS text every N frames to reduce allocations.
	fpsInterval = 30
)

var panelColor = rl.NewColor(20, 20, 24, 200)

// Panel shows name, type, layer and description of the selected part.
type Panel struct {
	Visible bool
	ShowFPS bool
	loc     *locale.Localizer
	part    *anatomy.Part
	font    rl.Font // optional; when set, Draw uses DrawTextEx instead of default font

	frameCount uint32
	fpsText    string
}

// New returns a visible panel with nothing selected.
func New(loc *locale.Localizer) *Panel {
	return &Panel{Visible: true, loc: loc}
}

// SetFont sets the font used to draw the panel. Zero texture ID = use raylib default.
func (p *Panel) SetFont(font rl.Font) {
	p.font = font
}

// SetPart shows part; nil clears the panel.
func (p *Panel) SetPart(part *anatomy.Part) {
	p.part = part
}

func (p *Panel) Clear() { p.part = nil }

func (p *Panel) Part() *anatomy.Part { return p.part }

// Lines returns the text rows for the current part, or nil when nothing is selected.
func (p *Panel) Lines() []string {
	if p.part == nil {
		return nil
	}
	tr := p.loc.GetString
	lines := []string{
		fmt.Sprintf("%s: %s", tr("name"), p.loc.PartName(p.part)),
		fmt.Sprintf("%s: %s", tr("type"), p.loc.TypeName(p.part.Type())),
		fmt.Sprintf("%s: %s", tr("layer"), p.loc.LayerName(p.part.Layer())),
	}
	if p.part.Description != "" {
		lines = append(lines, tr("description")+":")
		lines = append(lines, wrap(p.part.Description, wrapAt)...)
	}
	return lines
}

// wrap breaks s into lines of at most width runes, at spaces where possible.
func wrap(s string, width int) []string {
	var out []string
	var cur strings.Builder
	n := 0
	for _, w := range strings.Fields(s) {
		wl := len([]rune(w))
		if n > 0 && n+1+wl > width {
			out = append(out, cur.String())
			cur.Reset()
			n = 0
		}
		if n > 0 {
			cur.WriteByte(' ')
			n++
		}
		cur.WriteString(w)
		n += wl
	}
	if n > 0 {
		out = append(out, cur.String())
	}
	return out
}

// Draw renders the panel at the top-left and the FPS counter at the top-right.
func (p *Panel) Draw() {
	if p.ShowFPS {
		p.drawFPS()
	}
	if !p.Visible {
		return
	}
	lines := p.Lines()
	if len(lines) == 0 {
		return
	}
	h := int32(len(lines)*lineHeight + 2*padding)
	rl.DrawRectangle(padding, padding, panelWidth, h, panelColor)
	y := int32(2 * padding)
	for _, line := range lines {
		p.text(line, 2*padding, y, rl.RayWhite)
		y += lineHeight
	}
}

func (p *Panel) drawFPS() {
	p.frameCount++
	if p.fpsText == "" || p.frameCount%fpsInterval == 0 {
		p.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	w := rl.MeasureText(p.fpsText, fontSize)
	if p.font.Texture.ID != 0 {
		w = int32(rl.MeasureTextEx(p.font, p.fpsText, fontSize, 1).X)
	}
	p.text(p.fpsText, int32(rl.GetScreenWidth())-w-padding, padding, rl.Green)
}

func (p *Panel) text(s string, x, y int32, c rl.Color) {
	if p.font.Texture.ID != 0 {
		rl.DrawTextEx(p.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, x, y, fontSize, c)
}

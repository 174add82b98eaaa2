package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/spiral-carousel/parameter"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

type theme struct {
	background colorful.Color
	guide      colorful.Color
	label      colorful.Color
	status     colorful.Color
}

func newTheme() theme {
	return theme{
		background: mustHex(parameter.ColorBackground),
		guide:      mustHex(parameter.ColorGuide),
		label:      mustHex(parameter.ColorLabel),
		status:     mustHex(parameter.ColorStatus),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// faded blends c toward the background; opacity 1 keeps c, 0 is invisible
func (t theme) faded(c colorful.Color, opacity float64) colorful.Color {
	return t.background.BlendLab(c, vmath.Clamp(opacity, 0, 1)).Clamped()
}

func (v *Viewer) draw() {
	bg := tcell.StyleDefault.Background(toTcell(v.theme.background))
	v.screen.SetStyle(bg)
	v.screen.Clear()

	v.drawGuide(bg)
	v.drawItems(bg)
	v.drawCenterCard(bg)
	v.drawStatus(bg)

	v.screen.Show()
}

func (v *Viewer) drawGuide(bg tcell.Style) {
	key := guideKey{level: v.car.ZoomLevel(), width: v.proj.width, height: v.proj.height}
	if key != v.guideKey {
		// Half a cell between samples keeps the curve gap-free
		length := v.car.VisibleGuideLength(v.proj.halfDiagonal(), parameter.GuideOverscan)
		v.guide = v.car.GuidePathTo(vmath.Vec2{}, 0.5/v.proj.scaleX, length)
		v.guideKey = key
	}

	style := bg.Foreground(toTcell(v.theme.guide))
	for _, p := range v.guide {
		x, y := v.proj.toCell(p)
		if v.proj.inside(x, y) {
			v.screen.SetContent(x, y, parameter.GuideChar, nil, style)
		}
	}
}

func (v *Viewer) drawItems(bg tcell.Style) {
	v.placements = v.car.LayoutFrameAt(v.placements, vmath.Vec2{}, v.spring.Position())
	size := v.car.Tuned().ItemSize

	for _, p := range v.placements {
		if p.Fade <= 0 {
			continue
		}
		c := v.theme.faded(p.Item.Color, p.Fade)
		v.fillDisc(p.Position, size, bg.Foreground(toTcell(c)))
	}
}

// drawCenterCard draws the centered item enlarged at the viewport center with its label
func (v *Viewer) drawCenterCard(bg tcell.Style) {
	it, ok := v.displayedCenter()
	if !ok {
		return
	}
	v.fillDisc(vmath.Vec2{}, v.car.Tuned().CenterItemSize, bg.Foreground(toTcell(it.Color)))

	label := runewidth.Truncate(it.Label()+" "+it.Kind.String(), parameter.LabelMaxWidth, "")
	x, y := v.proj.toCell(vmath.Vec2{})
	x -= runewidth.StringWidth(label) / 2
	style := tcell.StyleDefault.Background(toTcell(it.Color)).Foreground(toTcell(v.theme.label))
	v.drawText(x, y, label, style)
}

func (v *Viewer) drawStatus(bg tcell.Style) {
	y := v.proj.height
	if y < 0 {
		return
	}
	w, _ := v.screen.Size()
	text := runewidth.Truncate(v.statusText(), w, "…")
	v.drawText(0, y, text, bg.Foreground(toTcell(v.theme.status)))
}

// fillDisc fills the ellipse of world diameter size around center
// Discs smaller than a cell collapse to a single marker
func (v *Viewer) fillDisc(center vmath.Vec2, size float64, style tcell.Style) {
	cx, cy := v.proj.toCell(center)
	rx, ry := v.proj.radiusCells(size)
	if rx < 0.75 || ry < 0.75 {
		if v.proj.inside(cx, cy) {
			v.screen.SetContent(cx, cy, parameter.ItemChar, nil, style)
		}
		return
	}

	ix, iy := int(rx), int(ry)
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			x, y := cx+dx, cy+dy
			if v.proj.inside(x, y) {
				v.screen.SetContent(x, y, '█', nil, style)
			}
		}
	}
}

// drawText writes s left to right honoring wide runes
func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	w, h := v.screen.Size()
	for _, r := range s {
		if x >= w || y >= h {
			return
		}
		rw := runewidth.RuneWidth(r)
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, style)
		}
		x += max(rw, 1)
	}
}


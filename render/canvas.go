// Package render draws rects, glyphs and text onto a tcell screen and registers
// a hit box for everything it draws
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/core"
)

// Canvas pairs a screen with the frame's hit-box registry
// Each primitive returns the collision observed against boxes drawn earlier in the frame
type Canvas struct {
	screen  tcell.Screen
	reg     *collision.Registry
	palette Palette
	base    tcell.Style
}

// NewCanvas creates a canvas drawing with the default palette
func NewCanvas(screen tcell.Screen, reg *collision.Registry) *Canvas {
	return &Canvas{
		screen:  screen,
		reg:     reg,
		palette: DefaultPalette(),
		base:    tcell.StyleDefault,
	}
}

// Registry returns the registry boxes are drawn into
func (c *Canvas) Registry() *collision.Registry {
	return c.reg
}

// Rect fills a w x h block with color and registers it tagged rect[color]
// Transparent rects register but paint nothing
func (c *Canvas) Rect(x, y, w, h int, color collision.RectColor) collision.Collision {
	box := collision.NewHitBox(float64(x), float64(y), float64(w), float64(h), collision.RectTag(color))
	result := c.reg.Draw(box)

	if color == collision.Transparent {
		return result
	}
	c.fill(x, y, w, h, color)
	return result
}

// Char draws a glyph and registers a box tagged char[glyph]
// Wide glyphs occupy two cells
func (c *Canvas) Char(r rune, x, y int, color collision.RectColor) collision.Collision {
	w := glyphWidth(r)
	box := collision.NewHitBox(float64(x), float64(y), float64(w), 1, collision.CharTag(string(r)))
	result := c.reg.Draw(box)

	c.screen.SetContent(x, y, r, nil, c.base.Foreground(c.palette.Color(color)))
	return result
}

// Text draws s left to right and registers one box per glyph tagged text[glyph]
// The line is a single primitive: its glyphs never collide with each other
func (c *Canvas) Text(s string, x, y int, color collision.RectColor) collision.Collision {
	style := c.base.Foreground(c.palette.Color(color))
	parts := make([]collision.HitBox, 0, len(s))

	col := x
	for _, r := range s {
		w := glyphWidth(r)
		if r != ' ' {
			parts = append(parts, collision.NewHitBox(float64(col), float64(y), float64(w), 1, collision.TextTag(string(r))))
		}
		c.screen.SetContent(col, y, r, nil, style)
		col += w
	}

	return c.reg.Draw(parts...)
}

// Probe queries the live set without drawing or registering
func (c *Canvas) Probe(box collision.HitBox) collision.Collision {
	return c.reg.CheckHitBoxes(box)
}

// Label draws text that takes no part in collision (HUD, status lines)
func (c *Canvas) Label(s string, x, y int, style tcell.Style) int {
	col := x
	for _, r := range s {
		c.screen.SetContent(col, y, r, nil, style)
		col += glyphWidth(r)
	}
	return col - x
}

func (c *Canvas) fill(x, y, w, h int, color collision.RectColor) {
	style := c.base.Background(c.palette.Color(color))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func glyphWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// Box draws a pre-tagged hit box such as one loaded from a scene file
// It paints with the first colour tag in palette order, or the first glyph tag, and registers the box unchanged
// Boxes without area register but paint nothing
func (c *Canvas) Box(hb collision.HitBox) collision.Collision {
	result := c.reg.Draw(hb)

	bounds := hb.Bounds()
	if bounds.Empty() {
		return result
	}
	x, y := bounds.Min().Cell()
	x1, y1 := bounds.Max().Cell()
	w, h := x1-x, y1-y

	for _, color := range collision.RectColors() {
		if !hb.Collision.Rect(color) {
			continue
		}
		if color != collision.Transparent {
			c.fill(x, y, w, h, color)
		}
		return result
	}

	for _, e := range core.Entries(hb.Collision.IsColliding.Char) {
		if e.Value {
			c.Label(e.Key, x, y, c.base.Foreground(tcell.ColorYellow))
			break
		}
	}
	return result
}

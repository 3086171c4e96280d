// Package collision tags axis-aligned hit boxes with rect colour, glyph and text
// categories and reports which categories a query box overlaps within a frame
package collision

import (
	"github.com/lixenwraith/hitbox/core"
)

// Flags holds the per-category overlap tags
// A present key is always true; an absent key means no such overlap was observed
type Flags struct {
	Rect map[RectColor]bool
	Text map[string]bool
	Char map[string]bool
}

// Collision is both the tag descriptor carried by a hit box and the result of a query
type Collision struct {
	IsColliding Flags
	// Shorthand mirrors the truthy rect colours that have a two-letter alias
	Shorthand map[Shorthand]bool
}

// NewCollision returns the explicit no-collision value with empty, non-nil maps
func NewCollision() Collision {
	return Collision{
		IsColliding: Flags{
			Rect: make(map[RectColor]bool),
			Text: make(map[string]bool),
			Char: make(map[string]bool),
		},
		Shorthand: make(map[Shorthand]bool),
	}
}

// RectTag builds a descriptor for a rect drawn in color
func RectTag(color RectColor) Collision {
	c := NewCollision()
	c.IsColliding.Rect[color] = true
	return c
}

// CharTag builds a descriptor for a glyph hit box
func CharTag(glyph string) Collision {
	c := NewCollision()
	c.IsColliding.Char[glyph] = true
	return c
}

// TextTag builds a descriptor for one letter of a text line
func TextTag(letter string) Collision {
	c := NewCollision()
	c.IsColliding.Text[letter] = true
	return c
}

// Rect reports whether an overlapping box carried the colour tag
func (c Collision) Rect(color RectColor) bool {
	return c.IsColliding.Rect[color]
}

// Text reports whether an overlapping box carried the text tag
func (c Collision) Text(key string) bool {
	return c.IsColliding.Text[key]
}

// Char reports whether an overlapping box carried the glyph tag
func (c Collision) Char(key string) bool {
	return c.IsColliding.Char[key]
}

// Has reports whether the shorthand flag is set
func (c Collision) Has(sh Shorthand) bool {
	return c.Shorthand[sh]
}

// Any reports whether any rect, text or char tag is set
func (c Collision) Any() bool {
	return anyTrue(c.IsColliding.Rect) || anyTrue(c.IsColliding.Text) || anyTrue(c.IsColliding.Char)
}

func anyTrue[K comparable](m map[K]bool) bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// Merge returns a new result holding the union of a and the tags carried by b
// Shorthand flags of the result are a's flags plus those derived from b's rect tags
func Merge(a, b Collision) Collision {
	out := NewCollision()
	out.fold(a)
	for sh, v := range a.Shorthand {
		if v {
			out.Shorthand[sh] = true
		}
	}
	out.fold(b)
	return out
}

// fold unions src's true tags into c; c must own non-nil maps
// Only true values are copied so no box can clear a tag another box set
func (c *Collision) fold(src Collision) {
	for k, v := range src.IsColliding.Rect {
		if v {
			c.IsColliding.Rect[k] = true
		}
	}
	for k, v := range src.IsColliding.Text {
		if v {
			c.IsColliding.Text[k] = true
		}
	}
	for k, v := range src.IsColliding.Char {
		if v {
			c.IsColliding.Char[k] = true
		}
	}
	for sh := range CreateShorthand(src.IsColliding.Rect) {
		c.Shorthand[sh] = true
	}
}

// CreateShorthand maps truthy rect tags to their two-letter aliases
// Colours without an alias (the light_* family) are omitted; nil input yields an empty map
func CreateShorthand(rects map[RectColor]bool) map[Shorthand]bool {
	out := make(map[Shorthand]bool)
	if rects == nil {
		return out
	}
	for _, e := range core.Entries(rects) {
		sh, ok := ShorthandOf(e.Key)
		if e.Value && ok {
			out[sh] = true
		}
	}
	return out
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hitbox/collision"
)

// Palette maps rect colour tags to terminal colours
type Palette [16]tcell.Color

// DefaultPalette uses the 16 ANSI colours: base colours for plain tags, bright ones for light_*
// Transparent maps to ColorDefault and is never painted
func DefaultPalette() Palette {
	return Palette{
		collision.Transparent: tcell.ColorDefault,
		collision.White:       tcell.ColorWhite,
		collision.Red:         tcell.ColorMaroon,
		collision.Green:       tcell.ColorGreen,
		collision.Yellow:      tcell.ColorOlive,
		collision.Blue:        tcell.ColorNavy,
		collision.Purple:      tcell.ColorPurple,
		collision.Cyan:        tcell.ColorTeal,
		collision.Black:       tcell.ColorBlack,
		collision.LightRed:    tcell.ColorRed,
		collision.LightGreen:  tcell.ColorLime,
		collision.LightYellow: tcell.ColorYellow,
		collision.LightBlue:   tcell.ColorBlue,
		collision.LightPurple: tcell.ColorFuchsia,
		collision.LightCyan:   tcell.ColorAqua,
		collision.LightBlack:  tcell.ColorGray,
	}
}

// Color returns the terminal colour for c, ColorDefault for out-of-range values
func (p Palette) Color(c collision.RectColor) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return p[c]
}

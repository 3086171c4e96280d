package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hitbox/collision"
)

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	hudHitStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// HUD writes the merged tags of col on the given row, clearing the rest of the row
func (c *Canvas) HUD(row int, frame uint64, col collision.Collision) {
	width, _ := c.screen.Size()
	for x := 0; x < width; x++ {
		c.screen.SetContent(x, row, ' ', nil, hudStyle)
	}

	n := c.Label(fmt.Sprintf("frame %d  ", frame), 0, row, hudStyle)
	style := hudStyle
	if col.Any() {
		style = hudHitStyle
	}
	c.Label("hit: "+col.String(), n, row, style)
}

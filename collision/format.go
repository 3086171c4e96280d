package collision

import (
	"strings"

	"github.com/lixenwraith/hitbox/core"
)

// String renders the present tags in stable order, e.g. "rect[red blue] char[@] sh[bl rd]"
// Rect tags follow palette order; text, char and shorthand keys are sorted
func (c Collision) String() string {
	var sb strings.Builder

	section := func(name string, keys []string) {
		if len(keys) == 0 {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
		sb.WriteByte('[')
		sb.WriteString(strings.Join(keys, " "))
		sb.WriteByte(']')
	}

	var rects []string
	for _, e := range core.Entries(c.IsColliding.Rect) {
		if e.Value {
			rects = append(rects, e.Key.String())
		}
	}
	section("rect", rects)
	section("text", trueKeys(c.IsColliding.Text))
	section("char", trueKeys(c.IsColliding.Char))
	section("sh", trueKeys(c.Shorthand))

	if sb.Len() == 0 {
		return "none"
	}
	return sb.String()
}

func trueKeys[K ~string](m map[K]bool) []string {
	var keys []string
	for _, e := range core.Entries(m) {
		if e.Value {
			keys = append(keys, string(e.Key))
		}
	}
	return keys
}

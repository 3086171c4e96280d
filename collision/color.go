package collision

import (
	"errors"
	"fmt"
)

// RectColor is the colour tag carried by rect hit boxes
type RectColor uint8

const (
	Transparent RectColor = iota
	White
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Black
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightPurple
	LightCyan
	LightBlack
	rectColorCount
)

// ErrUnknownColor is returned by ParseRectColor for names outside the palette
var ErrUnknownColor = errors.New("unknown rect color")

var rectColorNames = [rectColorCount]string{
	Transparent: "transparent",
	White:       "white",
	Red:         "red",
	Green:       "green",
	Yellow:      "yellow",
	Blue:        "blue",
	Purple:      "purple",
	Cyan:        "cyan",
	Black:       "black",
	LightRed:    "light_red",
	LightGreen:  "light_green",
	LightYellow: "light_yellow",
	LightBlue:   "light_blue",
	LightPurple: "light_purple",
	LightCyan:   "light_cyan",
	LightBlack:  "light_black",
}

// RectColors lists the palette in declaration order
func RectColors() []RectColor {
	colors := make([]RectColor, rectColorCount)
	for i := range colors {
		colors[i] = RectColor(i)
	}
	return colors
}

// String returns the snake_case tag name
func (c RectColor) String() string {
	if c >= rectColorCount {
		return fmt.Sprintf("RectColor(%d)", uint8(c))
	}
	return rectColorNames[c]
}

// Valid reports whether c is one of the sixteen palette entries
func (c RectColor) Valid() bool {
	return c < rectColorCount
}

// ParseRectColor resolves a tag name such as "light_blue"
func ParseRectColor(name string) (RectColor, error) {
	for i, n := range rectColorNames {
		if n == name {
			return RectColor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Shorthand is a two-letter alias for a subset of rect colours
type Shorthand string

const (
	ShTransparent Shorthand = "tr"
	ShWhite       Shorthand = "wh"
	ShRed         Shorthand = "rd"
	ShGreen       Shorthand = "gr"
	ShYellow      Shorthand = "yl"
	ShBlue        Shorthand = "bl"
	ShPurple      Shorthand = "pr"
	ShCyan        Shorthand = "cy"
	ShBlack       Shorthand = "lc"
)

// shorthandTable is fixed: light_* colours have no alias and black maps to "lc"
var shorthandTable = map[RectColor]Shorthand{
	Transparent: ShTransparent,
	White:       ShWhite,
	Red:         ShRed,
	Green:       ShGreen,
	Yellow:      ShYellow,
	Blue:        ShBlue,
	Purple:      ShPurple,
	Cyan:        ShCyan,
	Black:       ShBlack,
}

// ShorthandOf returns the alias for c, ok is false for colours without one
func ShorthandOf(c RectColor) (Shorthand, bool) {
	sh, ok := shorthandTable[c]
	return sh, ok
}

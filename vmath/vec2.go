package vmath

// Vec2 is a 2D point or extent in screen cells
// Position and size of a hit box are both Vec2; size is a positive extent from the position
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from components
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns component-wise sum
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns component-wise difference
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Cell truncates both components to integer cell coordinates
func (v Vec2) Cell() (x, y int) {
	return int(v.X), int(v.Y)
}

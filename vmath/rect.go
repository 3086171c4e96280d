package vmath

// Rect is an axis-aligned rectangle [Pos.X, Pos.X+Size.X) x [Pos.Y, Pos.Y+Size.Y)
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// Min returns the top-left corner
func (r Rect) Min() Vec2 {
	return r.Pos
}

// Max returns the exclusive bottom-right corner
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

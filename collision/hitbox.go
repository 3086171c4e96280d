package collision

import "github.com/lixenwraith/hitbox/vmath"

// HitBox is a rectangle [Pos, Pos+Size) with the tags it contributes when overlapped
type HitBox struct {
	Pos       vmath.Vec2
	Size      vmath.Vec2
	Collision Collision
}

// NewHitBox creates a hit box at (x, y) of extent (w, h)
func NewHitBox(x, y, w, h float64, tags Collision) HitBox {
	return HitBox{
		Pos:       vmath.NewVec2(x, y),
		Size:      vmath.NewVec2(w, h),
		Collision: tags,
	}
}

// Bounds returns the box rectangle
func (b HitBox) Bounds() vmath.Rect {
	return vmath.Rect{Pos: b.Pos, Size: b.Size}
}

// TestCollision reports strict overlap of two boxes; touching edges do not collide
// Equivalent to the origin lying strictly inside the Minkowski difference of a and b,
// so a zero-width or zero-height box never collides, not even with itself
func TestCollision(a, b HitBox) bool {
	o := b.Pos.Sub(a.Pos)
	return -b.Size.X < o.X && o.X < a.Size.X && -b.Size.Y < o.Y && o.Y < a.Size.Y
}

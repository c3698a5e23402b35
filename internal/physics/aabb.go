package physics

// AABB is an axis-aligned box in simulation units.
// Y grows downward, so Min is the top-left corner.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround returns the square box of half-size r centered on c.
func BoxAround(c Vec2, r float64) AABB {
	return AABB{
		MinX: c.X() - r,
		MinY: c.Y() - r,
		MaxX: c.X() + r,
		MaxY: c.Y() + r,
	}
}

// NewAABB builds a box from its top-left corner and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the horizontal extent.
func (b AABB) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b AABB) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec2 {
	return Vec2{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	if b.MinX >= o.MaxX || o.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= o.MaxY || o.MinY >= b.MaxY {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside the box (edges inclusive).
func (b AABB) ContainsPoint(p Vec2) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Y() >= b.MinY && p.Y() <= b.MaxY
}

// Inset shrinks the box by d on every side.
func (b AABB) Inset(d float64) AABB {
	return AABB{MinX: b.MinX + d, MinY: b.MinY + d, MaxX: b.MaxX - d, MaxY: b.MaxY - d}
}

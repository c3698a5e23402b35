package physics

// Side names the table edge a wall guards.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Wall is a static rectangular cushion.
type Wall struct {
	Side Side
	Rect AABB
}

// WallSet holds the four cushions, always checked top, bottom, left, right.
type WallSet struct {
	walls [4]Wall
	set   [4]bool
}

// NewWallSet builds a wall set from the given walls. A later wall on the
// same side replaces an earlier one.
func NewWallSet(walls ...Wall) *WallSet {
	ws := &WallSet{}
	for _, w := range walls {
		ws.Put(w)
	}
	return ws
}

// Put installs w on its side.
func (ws *WallSet) Put(w Wall) {
	if w.Side < SideTop || w.Side > SideRight {
		return
	}
	ws.walls[w.Side] = w
	ws.set[w.Side] = true
}

// Walls returns the installed walls in resolution order.
func (ws *WallSet) Walls() []Wall {
	out := make([]Wall, 0, len(ws.walls))
	for i, w := range ws.walls {
		if ws.set[i] {
			out = append(out, w)
		}
	}
	return out
}

// Resolve keeps body out of the walls for the coming step.
//
// The body's predicted bounds are tested against each wall in order. On
// overlap the matching edge of the predicted bounds is clamped to the wall
// face and the matching velocity component is reversed. Corrections
// compound, so a corner hit flips both components. When anything was hit
// the body's position becomes the center of the corrected bounds.
// Returns the sides that were hit, in resolution order.
func (ws *WallSet) Resolve(body *Body, dt float64) []Side {
	bounds := body.Bounds(dt)
	size := 2 * body.Radius
	var hit []Side

	for i, w := range ws.walls {
		if !ws.set[i] || !bounds.Overlaps(w.Rect) {
			continue
		}
		switch w.Side {
		case SideTop:
			bounds.MinY = w.Rect.MaxY
			bounds.MaxY = bounds.MinY + size
			body.Velocity = Vec2{body.Velocity.X(), -body.Velocity.Y()}
		case SideBottom:
			bounds.MaxY = w.Rect.MinY
			bounds.MinY = bounds.MaxY - size
			body.Velocity = Vec2{body.Velocity.X(), -body.Velocity.Y()}
		case SideLeft:
			bounds.MinX = w.Rect.MaxX
			bounds.MaxX = bounds.MinX + size
			body.Velocity = Vec2{-body.Velocity.X(), body.Velocity.Y()}
		case SideRight:
			bounds.MaxX = w.Rect.MinX
			bounds.MinX = bounds.MaxX - size
			body.Velocity = Vec2{-body.Velocity.X(), body.Velocity.Y()}
		}
		hit = append(hit, w.Side)
	}

	if len(hit) > 0 {
		body.Position = bounds.Center()
	}
	return hit
}

package physics

// Pocket is a circular hole; a body fully inside it is potted.
type Pocket struct {
	ID     int
	Name   string
	Center Vec2
	Radius float64
}

// Holds reports whether body lies strictly inside the pocket:
// pocket radius > center distance + body radius.
func (p Pocket) Holds(body *Body) bool {
	d := p.Radius - body.Radius
	if d <= 0 {
		return false
	}
	return DistSq(p.Center, body.Position) < d*d
}

// PocketSet is the table's pockets in a fixed order.
type PocketSet struct {
	pockets []Pocket
}

// NewPocketSet builds a pocket set.
func NewPocketSet(pockets ...Pocket) *PocketSet {
	return &PocketSet{pockets: append([]Pocket(nil), pockets...)}
}

// Pockets returns a copy of the pockets.
func (ps *PocketSet) Pockets() []Pocket {
	return append([]Pocket(nil), ps.pockets...)
}

// Contains returns the first pocket that fully holds body.
func (ps *PocketSet) Contains(body *Body) (Pocket, bool) {
	for _, p := range ps.pockets {
		if p.Holds(body) {
			return p, true
		}
	}
	return Pocket{}, false
}

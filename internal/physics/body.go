package physics

import (
	"fmt"

	"github.com/vovakirdan/tui-billiards/internal/core"
)

// BodyID identifies a body for the lifetime of a simulation.
type BodyID int

// Kind distinguishes the cue ball from object balls.
type Kind int

const (
	KindObject Kind = iota
	KindCue
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if t, ok := kindTraits[k]; ok {
		return t.name
	}
	return "unknown"
}

// traits holds per-kind behavior.
type traits struct {
	name          string
	frictionScale float64 // multiplier on the engine friction coefficient
}

var kindTraits = map[Kind]traits{
	KindObject: {name: "object", frictionScale: 1},
	KindCue:    {name: "cue", frictionScale: 1},
}

// Body is a circular rigid body on the table.
type Body struct {
	ID       BodyID
	Kind     Kind
	Position Vec2
	Velocity Vec2
	Radius   float64
	Mass     float64
	Color    core.Color
	Number   int // ball number shown on the table, 0 for the cue

	forces []Vec2 // pending forces, cleared by Integrate
}

// NewBody creates a body at rest.
func NewBody(id BodyID, kind Kind, pos Vec2, radius, mass float64) (*Body, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v for body %d", ErrInvalidBody, radius, id)
	}
	if mass <= 0 {
		return nil, fmt.Errorf("%w: mass %v for body %d", ErrInvalidBody, mass, id)
	}
	return &Body{
		ID:       id,
		Kind:     kind,
		Position: pos,
		Radius:   radius,
		Mass:     mass,
	}, nil
}

// ApplyForce queues a force for the next integration step.
func (b *Body) ApplyForce(f Vec2) {
	b.forces = append(b.forces, f)
}

// ApplyImpulse changes velocity immediately by j/mass.
func (b *Body) ApplyImpulse(j Vec2) {
	b.Velocity = b.Velocity.Add(j.Mul(1 / b.Mass))
}

// PendingForces returns the number of forces queued for the next step.
func (b *Body) PendingForces() int {
	return len(b.forces)
}

// Integrate advances the body by one tick.
//
// A damping force of -friction*velocity is queued first, then every pending
// force is summed and divided by mass into velocity. Forces act per tick, not
// per second. The position then moves by velocity*dt, and a velocity whose
// squared length falls below restEpsilon is snapped to zero.
func (b *Body) Integrate(dt, friction, restEpsilon float64) {
	scale := 1.0
	if t, ok := kindTraits[b.Kind]; ok {
		scale = t.frictionScale
	}
	if friction != 0 {
		b.ApplyForce(b.Velocity.Mul(-friction * scale))
	}

	var sum Vec2
	for _, f := range b.forces {
		sum = sum.Add(f)
	}
	b.forces = b.forces[:0]

	b.Velocity = b.Velocity.Add(sum.Mul(1 / b.Mass))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	b.snapToRest(restEpsilon)
}

// snapToRest zeroes a velocity whose squared length is below restEpsilon.
func (b *Body) snapToRest(restEpsilon float64) {
	if !b.Moving(restEpsilon) {
		b.Velocity = Vec2{}
	}
}

// Moving reports whether the body's squared speed is at least restEpsilon.
func (b *Body) Moving(restEpsilon float64) bool {
	return LenSq(b.Velocity) >= restEpsilon
}

// Bounds returns the box the body would occupy after moving for dt.
func (b *Body) Bounds(dt float64) AABB {
	return BoxAround(b.PositionAt(dt), b.Radius)
}

// PositionAt returns the position extrapolated t seconds along the current velocity.
func (b *Body) PositionAt(t float64) Vec2 {
	return b.Position.Add(b.Velocity.Mul(t))
}

// Teleport places the body at p, at rest, with no pending forces.
func (b *Body) Teleport(p Vec2) {
	b.Position = p
	b.Velocity = Vec2{}
	b.forces = b.forces[:0]
}

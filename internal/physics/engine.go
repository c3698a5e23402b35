package physics

import "math"

// Default sweep parameters, as multiples of the tick length.
const (
	DefaultSweepStep    = 0.2
	DefaultSweepFloor   = -2.0
	DefaultFallbackTime = 5.0
)

// DiagnosticKind classifies a non-fatal anomaly found during a step.
type DiagnosticKind int

const (
	DiagNone DiagnosticKind = iota
	// DiagSweepDiverged means no separated sub-time was found before the
	// sweep floor; the pair was resolved at the fallback time instead.
	DiagSweepDiverged
	// DiagDegenerateNormal means the two centers coincided and the pair was skipped.
	DiagDegenerateNormal
)

// String returns a human-readable name for the diagnostic.
func (d DiagnosticKind) String() string {
	switch d {
	case DiagNone:
		return "none"
	case DiagSweepDiverged:
		return "sweep_diverged"
	case DiagDegenerateNormal:
		return "degenerate_normal"
	default:
		return "unknown"
	}
}

// Contact records one ball-ball collision handled during a step.
type Contact struct {
	A, B       BodyID
	Time       float64 // sub-time, in seconds relative to the start of the next step
	Speed      float64 // closing speed along the normal before resolution
	Diagnostic DiagnosticKind
	Resolved   bool
}

// CushionHit records a body bouncing off a wall during a step.
type CushionHit struct {
	Body BodyID
	Side Side
}

// StepContext is everything one engine step operates on.
type StepContext struct {
	Bodies []*Body
	Walls  *WallSet
	DT     float64
}

// StepReport is what one engine step observed.
type StepReport struct {
	Contacts []Contact
	Cushions []CushionHit
}

// Engine advances bodies and resolves wall and ball-ball collisions.
type Engine struct {
	Friction     float64 // damping coefficient, force = -Friction*velocity per tick
	RestEpsilon  float64 // squared speed below which a body stops
	SweepStep    float64 // sweep step as a fraction of dt
	SweepFloor   float64 // earliest sweep time as a multiple of dt
	FallbackTime float64 // resolution time as a multiple of dt when the sweep fails
}

// NewEngine creates an engine with the default sweep parameters.
func NewEngine(friction, restEpsilon float64) *Engine {
	return &Engine{
		Friction:     friction,
		RestEpsilon:  restEpsilon,
		SweepStep:    DefaultSweepStep,
		SweepFloor:   DefaultSweepFloor,
		FallbackTime: DefaultFallbackTime,
	}
}

// Step runs one tick: integrate every body, resolve walls per body, then
// test every unordered pair once. Bodies a collision left below the rest
// threshold are stopped at the end.
func (e *Engine) Step(ctx *StepContext) StepReport {
	var report StepReport
	dt := ctx.DT

	for _, b := range ctx.Bodies {
		b.Integrate(dt, e.Friction, e.RestEpsilon)
		if ctx.Walls == nil {
			continue
		}
		for _, side := range ctx.Walls.Resolve(b, dt) {
			report.Cushions = append(report.Cushions, CushionHit{Body: b.ID, Side: side})
		}
	}

	for i := 0; i < len(ctx.Bodies); i++ {
		for j := i + 1; j < len(ctx.Bodies); j++ {
			if c, ok := e.collide(ctx.Bodies[i], ctx.Bodies[j], dt); ok {
				report.Contacts = append(report.Contacts, c)
			}
		}
	}

	for _, b := range ctx.Bodies {
		b.snapToRest(e.RestEpsilon)
	}

	return report
}

// collide handles one pair. Returns false when the pair does not touch.
func (e *Engine) collide(a, b *Body, dt float64) (Contact, bool) {
	// Broad phase
	if !a.Bounds(dt).Overlaps(b.Bounds(dt)) {
		return Contact{}, false
	}
	// Narrow phase
	if !circlesIntersect(a.PositionAt(dt), a.Radius, b.PositionAt(dt), b.Radius) {
		return Contact{}, false
	}

	c := Contact{A: a.ID, B: b.ID}

	t, ok := SweepContact(a, b, dt, e.SweepStep, e.SweepFloor)
	if !ok {
		t = e.FallbackTime * dt
		c.Diagnostic = DiagSweepDiverged
	}
	c.Time = t

	pa, pb := a.PositionAt(t), b.PositionAt(t)
	if _, ok := SafeNormalize(pb.Sub(pa)); !ok {
		c.Diagnostic = DiagDegenerateNormal
		return c, true
	}

	a.Position, b.Position = pa, pb
	c.Speed = closingSpeed(a, b)
	c.Resolved = ResolveElastic(a, b)
	return c, true
}

// circlesIntersect reports whether two circles touch or overlap.
func circlesIntersect(pa Vec2, ra float64, pb Vec2, rb float64) bool {
	r := ra + rb
	return DistSq(pa, pb) <= r*r
}

// SweepContact searches backward from dt for the latest sub-time at which
// the two bodies, extrapolated along their velocities, no longer intersect.
// The search steps by step*dt down to floor*dt. Reports false when every
// sampled sub-time still intersects.
func SweepContact(a, b *Body, dt, step, floor float64) (float64, bool) {
	if step <= 0 {
		return 0, false
	}
	n := int(math.Round((1 - floor) / step))
	for k := 0; k <= n; k++ {
		t := dt * (1 - float64(k)*step)
		if !circlesIntersect(a.PositionAt(t), a.Radius, b.PositionAt(t), b.Radius) {
			return t, true
		}
	}
	return 0, false
}

// closingSpeed returns how fast a approaches b along the line of centers.
func closingSpeed(a, b *Body) float64 {
	n, ok := SafeNormalize(b.Position.Sub(a.Position))
	if !ok {
		return 0
	}
	return a.Velocity.Sub(b.Velocity).Dot(n)
}

// ResolveElastic exchanges momentum between a and b along their line of
// centers as a perfectly elastic collision. Tangential components are kept.
// Returns false, leaving both bodies untouched, if the centers coincide.
func ResolveElastic(a, b *Body) bool {
	n, ok := SafeNormalize(b.Position.Sub(a.Position))
	if !ok {
		return false
	}
	t := Perp(n)

	an, at := a.Velocity.Dot(n), a.Velocity.Dot(t)
	bn, bt := b.Velocity.Dot(n), b.Velocity.Dot(t)

	m1, m2 := a.Mass, b.Mass
	total := m1 + m2
	an2 := (an*(m1-m2) + 2*m2*bn) / total
	bn2 := (bn*(m2-m1) + 2*m1*an) / total

	a.Velocity = n.Mul(an2).Add(t.Mul(at))
	b.Velocity = n.Mul(bn2).Add(t.Mul(bt))
	return true
}

// Package pool implements an 8-ball style pool table on top of the physics
// engine: a turn state machine that turns pointer gestures into shots, the
// table simulation that advances the balls and pockets them, and the terminal
// game adapter that renders it.
package pool

import (
	"fmt"

	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// Simulation owns every body on the table, the engine and the turn
// controller. Each Tick feeds input, advances physics when the turn allows
// it, pockets balls and reports what happened.
type Simulation struct {
	cfg    config.PoolConfig
	layout Layout
	engine *physics.Engine
	turn   *TurnController

	bodies    []*physics.Body // active set, cue included
	cue       physics.BodyID
	cueParked bool // cue ball sits off the table after a scratch

	tick      uint64
	shots     int
	scratches int
	potted    []int
}

// NewSimulation validates cfg and racks the table.
// A nil rack uses StandardRack.
func NewSimulation(cfg config.PoolConfig, rack Rack) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rack == nil {
		rack = StandardRack
	}

	s := &Simulation{
		cfg:    cfg,
		layout: NewLayout(cfg.Table, cfg.Balls.Radius),
		cue:    0,
	}

	engine := physics.NewEngine(cfg.Physics.Friction, cfg.Physics.RestEpsilon)
	engine.SweepStep = cfg.Physics.SweepStep
	engine.SweepFloor = cfg.Physics.SweepFloor
	engine.FallbackTime = cfg.Physics.FallbackTime
	s.engine = engine

	cue, err := physics.NewBody(s.cue, physics.KindCue, s.layout.HeadSpot, cfg.Balls.Radius, cfg.Balls.CueMass)
	if err != nil {
		return nil, fmt.Errorf("pool: cannot create cue ball: %w", err)
	}
	cue.Color = BallColor(0)
	s.bodies = append(s.bodies, cue)

	for i, spec := range rack(s.layout, cfg.Balls.Radius, cfg.Balls.RackGap) {
		b, err := physics.NewBody(physics.BodyID(i+1), physics.KindObject, spec.Position, cfg.Balls.Radius, cfg.Balls.Mass)
		if err != nil {
			return nil, fmt.Errorf("pool: cannot create ball %d: %w", spec.Number, err)
		}
		b.Number = spec.Number
		b.Color = BallColor(spec.Number)
		s.bodies = append(s.bodies, b)
	}

	s.turn = NewTurnController(ShotParams{
		PowerMin:     cfg.Shot.PowerMin,
		PowerMax:     cfg.Shot.PowerMax,
		PowerPerUnit: cfg.Shot.PowerPerUnit,
		ShotScale:    cfg.Shot.ShotScale,
	}, s.canPlaceCue)

	return s, nil
}

// Layout returns the table geometry.
func (s *Simulation) Layout() Layout {
	return s.layout
}

// State returns the turn phase.
func (s *Simulation) State() TurnState {
	return s.turn.State()
}

// Shots returns the number of strokes played.
func (s *Simulation) Shots() int {
	return s.shots
}

// Scratches returns how many times the cue ball was pocketed.
func (s *Simulation) Scratches() int {
	return s.scratches
}

// Remaining returns the number of object balls on the table.
func (s *Simulation) Remaining() int {
	n := 0
	for _, b := range s.bodies {
		if b.ID != s.cue {
			n++
		}
	}
	return n
}

// Tick advances the table by dt seconds after applying pointer events,
// which must already be in simulation units.
func (s *Simulation) Tick(dt float64, events []core.PointerEvent) Frame {
	s.tick++
	var f Frame

	s.handleInput(events, &f)
	s.stepPhysics(dt, &f)
	s.pocketBalls(&f)

	switch {
	case s.turn.State() == StateWin:
	case s.Remaining() == 0:
		s.turn.Win()
		f.Events = append(f.Events, Event{Kind: EventGameWon, Tick: s.tick})
	case s.turn.State() == StateInactive && !s.anyMoving():
		s.turn.Settle()
		f.Events = append(f.Events, Event{Kind: EventTurnSettled, Tick: s.tick})
	}

	f.Snapshot = s.Snapshot()
	return f
}

func (s *Simulation) handleInput(events []core.PointerEvent, f *Frame) {
	cue := s.body(s.cue)
	for _, ev := range events {
		tr := s.turn.HandlePointer(ev, cue)
		if tr.Moved {
			s.cueParked = false
		}
		if tr.Placed {
			f.Events = append(f.Events, Event{Kind: EventCuePlaced, Tick: s.tick, Ball: s.cue})
		}
		if tr.Shot != nil {
			s.shots++
			f.Events = append(f.Events, Event{
				Kind:  EventShot,
				Tick:  s.tick,
				Ball:  s.cue,
				Power: tr.Shot.Power,
				Aim:   tr.Shot.Aim,
			})
		}
	}
}

// stepPhysics runs the engine while balls roll after a shot. During a
// scratch the object balls finish rolling while the cue ball is in hand.
func (s *Simulation) stepPhysics(dt float64, f *Frame) {
	bodies := s.bodies
	switch s.turn.State() {
	case StateInactive:
	case StateScratch:
		if !s.objectsMoving() {
			return
		}
		bodies = s.objectBodies()
	default:
		return
	}

	report := s.engine.Step(&physics.StepContext{Bodies: bodies, Walls: s.layout.Walls, DT: dt})

	for _, c := range report.Contacts {
		if c.Diagnostic != physics.DiagNone {
			f.Diagnostics = append(f.Diagnostics, Diagnostic{Kind: c.Diagnostic, Tick: s.tick, A: c.A, B: c.B, Time: c.Time})
		}
		if c.Resolved {
			f.Events = append(f.Events, Event{Kind: EventBallCollision, Tick: s.tick, Ball: c.A, Other: c.B, Power: c.Speed})
		}
	}
	for _, h := range report.Cushions {
		f.Events = append(f.Events, Event{Kind: EventCushion, Tick: s.tick, Ball: h.Body, Side: h.Side})
	}
}

// pocketBalls removes potted object balls and parks a potted cue ball.
// The active set is compacted in place after the scan.
func (s *Simulation) pocketBalls(f *Frame) {
	checkCue := s.turn.State() == StateInactive && !s.cueParked

	kept := s.bodies[:0]
	for _, b := range s.bodies {
		if b.ID == s.cue {
			if checkCue {
				if p, ok := s.layout.Pockets.Contains(b); ok {
					b.Teleport(s.layout.Park)
					s.cueParked = true
					s.scratches++
					s.turn.Scratch()
					f.Events = append(f.Events, Event{Kind: EventScratched, Tick: s.tick, Ball: b.ID, Pocket: p.Name})
				}
			}
			kept = append(kept, b)
			continue
		}

		if p, ok := s.layout.Pockets.Contains(b); ok {
			s.potted = append(s.potted, b.Number)
			f.Events = append(f.Events, Event{Kind: EventBallSunk, Tick: s.tick, Ball: b.ID, Number: b.Number, Pocket: p.Name})
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.bodies); i++ {
		s.bodies[i] = nil
	}
	s.bodies = kept
}

// canPlaceCue accepts a hand-placed cue ball fully on the bed, clear of
// every other ball, once nothing else is rolling.
func (s *Simulation) canPlaceCue(p physics.Vec2) bool {
	r := s.cfg.Balls.Radius
	if !s.layout.CanPlace(p, r) || s.objectsMoving() {
		return false
	}
	for _, b := range s.bodies {
		if b.ID == s.cue {
			continue
		}
		reach := r + b.Radius
		if physics.DistSq(p, b.Position) < reach*reach {
			return false
		}
	}
	return true
}

func (s *Simulation) body(id physics.BodyID) *physics.Body {
	for _, b := range s.bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *Simulation) objectBodies() []*physics.Body {
	out := make([]*physics.Body, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.ID != s.cue {
			out = append(out, b)
		}
	}
	return out
}

func (s *Simulation) anyMoving() bool {
	for _, b := range s.bodies {
		if b.Moving(s.cfg.Physics.RestEpsilon) {
			return true
		}
	}
	return false
}

func (s *Simulation) objectsMoving() bool {
	for _, b := range s.bodies {
		if b.ID != s.cue && b.Moving(s.cfg.Physics.RestEpsilon) {
			return true
		}
	}
	return false
}

// Snapshot copies the current table state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		State:     s.turn.State(),
		Cue:       s.cue,
		Power:     s.turn.Power(),
		PowerMin:  s.cfg.Shot.PowerMin,
		PowerMax:  s.cfg.Shot.PowerMax,
		Rest:      s.cfg.Physics.RestEpsilon,
		Shots:     s.shots,
		Scratches: s.scratches,
		Potted:    append([]int(nil), s.potted...),
		Remaining: s.Remaining(),
		Walls:     s.layout.Walls.Walls(),
		Pockets:   s.layout.Pockets.Pockets(),
		Bed:       s.layout.Bed,
		Outer:     s.layout.Outer,
	}
	snap.Aim, snap.HasAim = s.turn.Aim()

	snap.Bodies = make([]BodyView, 0, len(s.bodies))
	for _, b := range s.bodies {
		snap.Bodies = append(snap.Bodies, BodyView{
			ID:       b.ID,
			Number:   b.Number,
			Kind:     b.Kind,
			Position: b.Position,
			Velocity: b.Velocity,
			Radius:   b.Radius,
			Color:    b.Color,
			OnTable:  !(b.ID == s.cue && s.cueParked),
		})
	}
	return snap
}

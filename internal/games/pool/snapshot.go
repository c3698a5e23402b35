package pool

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// BodyView is a read-only copy of one ball.
type BodyView struct {
	ID       physics.BodyID
	Number   int
	Kind     physics.Kind
	Position physics.Vec2
	Velocity physics.Vec2
	Radius   float64
	Color    core.Color
	OnTable  bool // false for a cue ball parked after a scratch
}

// Snapshot is an immutable view of the table for renderers.
// It never aliases simulation state.
type Snapshot struct {
	Tick      uint64
	State     TurnState
	Bodies    []BodyView
	Cue       physics.BodyID
	Aim       physics.Vec2
	HasAim    bool
	Power     float64
	PowerMin  float64
	PowerMax  float64
	Rest      float64 // squared speed below which a ball counts as stopped
	Shots     int
	Scratches int
	Potted    []int // ball numbers in the order they dropped
	Remaining int   // object balls still on the table
	Walls     []physics.Wall
	Pockets   []physics.Pocket
	Bed       physics.AABB
	Outer     physics.AABB
}

// CueView returns the cue ball, if present.
func (s Snapshot) CueView() (BodyView, bool) {
	for _, b := range s.Bodies {
		if b.ID == s.Cue {
			return b, true
		}
	}
	return BodyView{}, false
}

// Moving reports whether any ball is above the rest threshold, the same
// test the simulation uses to settle a turn.
func (s Snapshot) Moving() bool {
	for _, b := range s.Bodies {
		if physics.LenSq(b.Velocity) >= s.Rest {
			return true
		}
	}
	return false
}

// Fingerprint hashes the ball state bit for bit. Two runs fed the same
// input produce the same sequence of fingerprints.
func (s Snapshot) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}

	put(s.Tick)
	for _, b := range s.Bodies {
		put(uint64(b.ID))
		put(math.Float64bits(b.Position.X()))
		put(math.Float64bits(b.Position.Y()))
		put(math.Float64bits(b.Velocity.X()))
		put(math.Float64bits(b.Velocity.Y()))
	}
	return d.Sum64()
}

// Frame is everything one tick produced.
type Frame struct {
	Snapshot    Snapshot
	Events      []Event
	Diagnostics []Diagnostic
}

// Has reports whether the frame contains an event of the given kind.
func (f Frame) Has(kind EventKind) bool {
	for _, e := range f.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

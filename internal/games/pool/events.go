package pool

import (
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShot EventKind = iota
	EventBallSunk
	EventTurnSettled
	EventScratched
	EventGameWon
	EventBallCollision
	EventCushion
	EventCuePlaced
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventBallSunk:
		return "ball_sunk"
	case EventTurnSettled:
		return "turn_settled"
	case EventScratched:
		return "scratched"
	case EventGameWon:
		return "game_won"
	case EventBallCollision:
		return "ball_collision"
	case EventCushion:
		return "cushion"
	case EventCuePlaced:
		return "cue_placed"
	default:
		return "unknown"
	}
}

// Event is emitted at the tick boundary where it happened.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Ball   physics.BodyID // sunk, scratched, cushion, first ball of a collision
	Other  physics.BodyID // second ball of a collision
	Number int            // ball number for BallSunk
	Pocket string         // pocket name for BallSunk and Scratched
	Side   physics.Side   // cushion side
	Power  float64        // shot power, or closing speed of a collision
	Aim    physics.Vec2   // shot direction
}

// Diagnostic is a recoverable anomaly the engine hit.
// The simulation keeps running; the platform decides whether to log it.
type Diagnostic struct {
	Kind physics.DiagnosticKind
	Tick uint64
	A, B physics.BodyID
	Time float64 // sub-time used for the resolution
}

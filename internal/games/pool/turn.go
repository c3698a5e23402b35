package pool

import (
	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// TurnState is the phase of the current turn.
type TurnState string

const (
	StateAiming      TurnState = "aiming"       // choosing a direction
	StatePowerSelect TurnState = "power_select" // dragging for power
	StateInactive    TurnState = "inactive"     // balls rolling, input ignored
	StateScratch     TurnState = "scratch"      // placing the cue ball by hand
	StateWin         TurnState = "win"          // table cleared
)

// ShotParams maps the drag gesture to a shot.
type ShotParams struct {
	PowerMin     float64
	PowerMax     float64
	PowerPerUnit float64
	ShotScale    float64
}

// Shot describes a released stroke.
type Shot struct {
	Aim     physics.Vec2
	Power   float64
	Impulse physics.Vec2
}

// Transition is the outcome of feeding one pointer event to the controller.
type Transition struct {
	From, To TurnState
	Shot     *Shot // set when the cue was struck
	Placed   bool  // cue ball placement confirmed after a scratch
	Moved    bool  // cue ball moved by hand during a scratch
}

// Changed reports whether the state changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// PlacementCheck reports whether the cue ball may be put down at p.
type PlacementCheck func(p physics.Vec2) bool

// TurnController sequences aiming, power selection, shot release,
// waiting for the table to settle, scratch placement and the win.
// It is the only owner of the aim and power values.
type TurnController struct {
	state  TurnState
	params ShotParams
	place  PlacementCheck

	aim       physics.Vec2
	hasAim    bool
	power     float64
	origin    physics.Vec2
	hasOrigin bool
}

// NewTurnController creates a controller in the Aiming state.
// A nil placement check accepts every spot.
func NewTurnController(params ShotParams, place PlacementCheck) *TurnController {
	if place == nil {
		place = func(physics.Vec2) bool { return true }
	}
	return &TurnController{
		state:  StateAiming,
		params: params,
		place:  place,
	}
}

// State returns the current phase.
func (tc *TurnController) State() TurnState {
	return tc.state
}

// Aim returns the aim direction, if one has been chosen.
func (tc *TurnController) Aim() (physics.Vec2, bool) {
	return tc.aim, tc.hasAim
}

// Power returns the power selected so far.
func (tc *TurnController) Power() float64 {
	return tc.power
}

// AcceptsInput reports whether pointer events can change anything.
func (tc *TurnController) AcceptsInput() bool {
	return tc.state != StateInactive && tc.state != StateWin
}

// HandlePointer feeds one pointer event, already in simulation units.
// Events that do not apply to the current state are ignored.
func (tc *TurnController) HandlePointer(ev core.PointerEvent, cue *physics.Body) Transition {
	tr := Transition{From: tc.state, To: tc.state}
	if cue == nil {
		return tr
	}
	p := physics.V(ev.X, ev.Y)

	switch tc.state {
	case StateAiming:
		switch ev.Kind {
		case core.PointerMove:
			if ev.Held {
				tc.aimAt(p, cue)
			}
		case core.PointerDown:
			tc.aimAt(p, cue)
			tc.origin, tc.hasOrigin = p, true
			tc.power = tc.params.PowerMin
			tc.state = StatePowerSelect
		}

	case StatePowerSelect:
		switch ev.Kind {
		case core.PointerMove:
			tc.power = tc.powerFor(p)
		case core.PointerUp:
			if !tc.hasAim {
				tc.clear()
				tc.state = StateAiming
				break
			}
			tc.power = tc.powerFor(p)
			shot := tc.strike(cue)
			tr.Shot = &shot
			tc.clear()
			tc.state = StateInactive
		}

	case StateScratch:
		switch ev.Kind {
		case core.PointerMove:
			cue.Teleport(p)
			tr.Moved = true
		case core.PointerDown:
			cue.Teleport(p)
			tr.Moved = true
			if tc.place(p) {
				tr.Placed = true
				tc.clear()
				tc.state = StateAiming
			}
		}
	}

	tr.To = tc.state
	return tr
}

// aimAt points the aim from the cue ball toward p. A pointer exactly on
// the ball leaves the previous aim in place.
func (tc *TurnController) aimAt(p physics.Vec2, cue *physics.Body) {
	if dir, ok := physics.SafeNormalize(p.Sub(cue.Position)); ok {
		tc.aim, tc.hasAim = dir, true
	}
}

// powerFor projects the drag from the press point onto the aim.
// No drag, or a drag against the aim, gives minimum power.
func (tc *TurnController) powerFor(p physics.Vec2) float64 {
	if !tc.hasAim || !tc.hasOrigin {
		return tc.params.PowerMin
	}
	along := p.Sub(tc.origin).Dot(tc.aim)
	if along <= 0 {
		return tc.params.PowerMin
	}
	return core.ClampF(along*tc.params.PowerPerUnit, tc.params.PowerMin, tc.params.PowerMax)
}

// strike applies the shot impulse to the cue ball.
func (tc *TurnController) strike(cue *physics.Body) Shot {
	power := core.ClampF(tc.power, tc.params.PowerMin, tc.params.PowerMax)
	impulse := tc.aim.Mul(power * cue.Mass * tc.params.ShotScale)
	cue.ApplyImpulse(impulse)
	return Shot{Aim: tc.aim, Power: power, Impulse: impulse}
}

func (tc *TurnController) clear() {
	tc.aim, tc.hasAim = physics.Vec2{}, false
	tc.power = 0
	tc.origin, tc.hasOrigin = physics.Vec2{}, false
}

// Settle ends the rolling phase and starts the next turn.
func (tc *TurnController) Settle() bool {
	if tc.state != StateInactive {
		return false
	}
	tc.state = StateAiming
	return true
}

// Scratch hands the cue ball to the player after it was pocketed.
func (tc *TurnController) Scratch() bool {
	if tc.state != StateInactive {
		return false
	}
	tc.clear()
	tc.state = StateScratch
	return true
}

// Win ends the game. It is terminal.
func (tc *TurnController) Win() {
	tc.clear()
	tc.state = StateWin
}

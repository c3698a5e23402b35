package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

var testShot = ShotParams{PowerMin: 5, PowerMax: 100, PowerPerUnit: 0.5, ShotScale: 8}

func newCue(t *testing.T, x, y float64) *physics.Body {
	t.Helper()
	cue, err := physics.NewBody(0, physics.KindCue, physics.V(x, y), 8, 1)
	require.NoError(t, err)
	return cue
}

func down(x, y float64) core.PointerEvent {
	return core.PointerEvent{Kind: core.PointerDown, X: x, Y: y, Held: true}
}

func move(x, y float64) core.PointerEvent {
	return core.PointerEvent{Kind: core.PointerMove, X: x, Y: y, Held: true}
}

func up(x, y float64) core.PointerEvent {
	return core.PointerEvent{Kind: core.PointerUp, X: x, Y: y}
}

func TestTurnShotVelocity(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	cue := newCue(t, 100, 100)

	tr := tc.HandlePointer(down(150, 100), cue)
	require.Equal(t, StatePowerSelect, tr.To)
	aim, ok := tc.Aim()
	require.True(t, ok)
	assert.InDelta(t, 1.0, aim.X(), 1e-12)

	// 100 units along the aim at 0.5 power per unit
	tc.HandlePointer(move(250, 100), cue)
	assert.InDelta(t, 50.0, tc.Power(), 1e-12)
	assert.Equal(t, physics.V(0, 0), cue.Velocity, "no velocity change before release")

	tr = tc.HandlePointer(up(250, 100), cue)
	require.NotNil(t, tr.Shot)
	assert.Equal(t, StateInactive, tc.State())
	assert.InDelta(t, 50*testShot.ShotScale, cue.Velocity.X(), 1e-9)
	assert.InDelta(t, 0.0, cue.Velocity.Y(), 1e-12)

	_, ok = tc.Aim()
	assert.False(t, ok, "aim is cleared after the shot")
	assert.Equal(t, 0.0, tc.Power())
}

func TestTurnPowerFromReleasePoint(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	cue := newCue(t, 100, 100)

	tc.HandlePointer(down(150, 100), cue)
	tr := tc.HandlePointer(up(250, 100), cue)

	require.NotNil(t, tr.Shot)
	assert.InDelta(t, 50.0, tr.Shot.Power, 1e-12)
	assert.InDelta(t, 50*testShot.ShotScale, cue.Velocity.Len(), 1e-9)
}

func TestTurnReleaseOverridesLastMove(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	cue := newCue(t, 100, 100)

	tc.HandlePointer(down(150, 100), cue)
	tc.HandlePointer(move(900, 100), cue)
	tc.HandlePointer(up(210, 100), cue)

	assert.InDelta(t, 30*testShot.ShotScale, cue.Velocity.X(), 1e-9)
}

func TestTurnPowerMapping(t *testing.T) {
	tests := []struct {
		name string
		to   core.PointerEvent
		want float64
	}{
		{"no drag", move(150, 100), 5},
		{"reversed drag", move(100, 100), 5},
		{"perpendicular drag", move(150, 180), 5},
		{"small drag clamps to min", move(154, 100), 5},
		{"mid drag", move(210, 100), 30},
		{"long drag clamps to max", move(900, 100), 100},
		{"diagonal drag projects", move(190, 140), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTurnController(testShot, nil)
			cue := newCue(t, 100, 100)
			tc.HandlePointer(down(150, 100), cue)

			tc.HandlePointer(tt.to, cue)
			assert.InDelta(t, tt.want, tc.Power(), 1e-9)
		})
	}
}

func TestTurnAimFollowsHeldPointer(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	cue := newCue(t, 100, 100)

	tc.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: 100, Y: 300}, cue)
	_, ok := tc.Aim()
	assert.False(t, ok, "hover without a button does not aim")

	tc.HandlePointer(move(100, 300), cue)
	aim, ok := tc.Aim()
	require.True(t, ok)
	assert.InDelta(t, 1.0, aim.Y(), 1e-12)
	assert.Equal(t, StateAiming, tc.State())
}

func TestTurnCancelWithoutAim(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	cue := newCue(t, 100, 100)

	tc.HandlePointer(down(100, 100), cue)
	require.Equal(t, StatePowerSelect, tc.State())

	tr := tc.HandlePointer(up(100, 100), cue)
	assert.Nil(t, tr.Shot)
	assert.Equal(t, StateAiming, tc.State())
	assert.Equal(t, physics.V(0, 0), cue.Velocity)
}

func TestTurnIgnoresInputWhileRolling(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	cue := newCue(t, 100, 100)
	tc.HandlePointer(down(150, 100), cue)
	tc.HandlePointer(move(250, 100), cue)
	tc.HandlePointer(up(250, 100), cue)
	require.Equal(t, StateInactive, tc.State())
	v := cue.Velocity

	for _, ev := range []core.PointerEvent{down(0, 0), move(10, 10), up(10, 10)} {
		tr := tc.HandlePointer(ev, cue)
		assert.False(t, tr.Changed())
	}
	assert.Equal(t, v, cue.Velocity)
	assert.False(t, tc.AcceptsInput())

	tc.Win()
	tr := tc.HandlePointer(down(0, 0), cue)
	assert.Equal(t, StateWin, tr.To)
}

func TestTurnScratchPlacement(t *testing.T) {
	allowed := func(p physics.Vec2) bool { return p.X() > 50 }
	tc := NewTurnController(testShot, allowed)
	cue := newCue(t, 100, 100)

	require.False(t, tc.Scratch(), "scratch only follows a shot")
	tc.HandlePointer(down(150, 100), cue)
	tc.HandlePointer(up(150, 100), cue)
	require.True(t, tc.Scratch())
	require.Equal(t, StateScratch, tc.State())

	tr := tc.HandlePointer(move(20, 20), cue)
	assert.True(t, tr.Moved)
	assert.Equal(t, physics.V(20, 20), cue.Position)

	tr = tc.HandlePointer(down(20, 20), cue)
	assert.False(t, tr.Placed, "placement refused at a bad spot")
	assert.Equal(t, StateScratch, tc.State())

	cue.Velocity = physics.V(3, 3)
	tr = tc.HandlePointer(down(300, 200), cue)
	assert.True(t, tr.Placed)
	assert.Equal(t, StateAiming, tc.State())
	assert.Equal(t, physics.V(300, 200), cue.Position)
	assert.Equal(t, physics.V(0, 0), cue.Velocity)
}

func TestTurnSettle(t *testing.T) {
	tc := NewTurnController(testShot, nil)
	assert.False(t, tc.Settle(), "settle outside the rolling phase is a no-op")

	cue := newCue(t, 100, 100)
	tc.HandlePointer(down(150, 100), cue)
	tc.HandlePointer(up(150, 100), cue)
	assert.True(t, tc.Settle())
	assert.Equal(t, StateAiming, tc.State())
}

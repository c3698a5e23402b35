package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func hasNotice(notices []core.Notice, msg string) bool {
	for _, n := range notices {
		if n.Message == msg {
			return true
		}
	}
	return false
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"pool", "pool_practice"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameShotThroughScreenCells(t *testing.T) {
	g := NewPractice()
	g.Reset(testRuntime())
	require.False(t, g.view.Empty())

	res := g.Step(core.NewInputFrame())
	assert.True(t, hasNotice(res.Notices, "table racked"), "reset notices are flushed on the first step")

	cue, ok := g.Snapshot().CueView()
	require.True(t, ok)
	cx, cy := g.view.ToCell(cue.Position.X(), cue.Position.Y())

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerDown, X: float64(cx + 3), Y: float64(cy), Held: true})
	in.AddPointer(core.PointerEvent{Kind: core.PointerMove, X: float64(cx + 10), Y: float64(cy), Held: true})
	in.AddPointer(core.PointerEvent{Kind: core.PointerUp, X: float64(cx + 10), Y: float64(cy)})
	res = g.Step(in)

	assert.True(t, hasNotice(res.Notices, "shot"))
	assert.Equal(t, StateInactive, g.Snapshot().State)
	assert.Equal(t, 1, g.Snapshot().Shots)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, Score(1, 0), res.State.Score)
	assert.Equal(t, 1, res.State.Shots)
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	assert.True(t, res.State.Paused)

	before := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	assert.Equal(t, before, g.Snapshot().Tick, "paused game does not tick")

	g.Step(in)
	assert.False(t, g.State().Paused)
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.True(t, strings.HasPrefix(screen.Row(0), " Pool"), "HUD row: %q", screen.Row(0))
	assert.Contains(t, out, string(CushionChar))
	assert.Contains(t, out, string(SolidChar))
	assert.Contains(t, out, string(StripeChar))
	assert.Contains(t, screen.Row(23), "aim")
}

func TestGameResizeKeepsTable(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())
	tick := g.Snapshot().Tick

	g.Resize(160, 48)
	assert.Equal(t, tick, g.Snapshot().Tick)
	assert.Greater(t, g.view.Area.W, 80)
}

func TestGameTinyScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 3, TickRate: 60})

	screen := core.NewScreen(10, 3)
	g.Render(screen) // must not panic
}

func TestScore(t *testing.T) {
	tests := []struct {
		shots, scratches, want int
	}{
		{0, 0, 1000},
		{12, 1, 780},
		{200, 5, 0},
	}
	for _, tt := range tests {
		if got := Score(tt.shots, tt.scratches); got != tt.want {
			t.Errorf("Score(%d, %d) = %d, expected %d", tt.shots, tt.scratches, got, tt.want)
		}
	}
}

package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/storage"
)

// stubGame records what the platform hands it.
type stubGame struct {
	resets   int
	resized  [2]int
	frames   []core.InputFrame
	state    core.GameState
	notices  []core.Notice
	rendered int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}
func (g *stubGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "stub")
}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Resize(width, height int) { g.resized = [2]int{width, height} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Notices: g.notices}
}

func newTestModel(g *stubGame, opts Options) Model {
	return NewModel(g, opts, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
}

func TestModelForwardsPointerEvents(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})

	next, _ := m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	next, _ = next.Update(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	next, _ = next.Update(TickMsg{})

	require.Len(t, g.frames, 1)
	frame := g.frames[0]
	require.Len(t, frame.Pointer, 2)
	assert.Equal(t, core.PointerDown, frame.Pointer[0].Kind)
	assert.Equal(t, core.PointerUp, frame.Pointer[1].Kind)
	assert.Equal(t, 5.0, frame.Pointer[1].X)

	// Consumed events do not repeat on the next tick
	next.Update(TickMsg{})
	require.Len(t, g.frames, 2)
	assert.Empty(t, g.frames[1].Pointer)
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	next, _ = next.Update(TickMsg{})
	assert.Equal(t, 0, g.resets, "restart ignored while playing")

	g.state = core.GameState{GameOver: true, Won: true, Score: 900}
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	next.Update(TickMsg{})
	assert.Equal(t, 1, g.resets)
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, [2]int{100, 30}, g.resized)
	assert.Equal(t, 0, g.resets, "resize must not re-rack")
}

func TestModelSavesWinOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{state: core.GameState{GameOver: true, Won: true, Score: 870, Shots: 13}}
	var m tea.Model = newTestModel(g, Options{Store: store})

	for range 3 {
		m, _ = m.Update(TickMsg{})
	}

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 870, scores[0].Score)
	assert.Equal(t, 13, scores[0].Shots)
}

func TestModelLogsNotices(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.DebugLevel)

	g := &stubGame{notices: []core.Notice{
		{Level: core.NoticeWarn, Message: "collision anomaly", Fields: []any{"kind", "SweepDiverged"}},
	}}
	m := newTestModel(g, Options{Logger: logger})
	m.Update(TickMsg{})

	out := buf.String()
	assert.Contains(t, out, "collision anomaly")
	assert.Contains(t, out, "SweepDiverged")
	assert.Contains(t, out, "game=stub")
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})

	view := m.View()
	assert.True(t, strings.Contains(view, "stub"))
	assert.Equal(t, 1, g.rendered)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Empty(t, next.View())
}

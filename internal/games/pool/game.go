package pool

import (
	"fmt"

	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/registry"
)

// Screen rows reserved around the table.
const (
	hudRows    = 1 // score line at the top
	footerRows = 2 // power bar and help at the bottom
)

// statusTicks is how long an event message stays in the HUD.
const statusTicks = 120

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts the table simulation to the terminal platform.
type Game struct {
	id    string
	title string
	rack  Rack

	cfg     config.PoolConfig
	runtime core.RuntimeConfig
	sim     *Simulation
	view    core.Viewport
	snap    Snapshot

	paused    bool
	status    string
	statusAge int
	pending   []core.Notice // notices raised by Reset, flushed on the next Step
}

// New creates the full 15-ball game.
func New() *Game {
	return &Game{id: "pool", title: "Pool", rack: StandardRack}
}

// NewPractice creates a quick three-ball game.
func NewPractice() *Game {
	return &Game{id: "pool_practice", title: "Pool Practice", rack: PracticeRack}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads config, racks the balls and fits the table to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.status = ""
	g.pending = nil

	// Load game config
	cfg, err := config.LoadPool(configPath)
	if err != nil {
		g.notice(core.NoticeWarn, "falling back to default pool config", "error", err)
		cfg = config.DefaultPoolConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPoolPreset(&cfg, difficultyPreset)
	}

	sim, err := NewSimulation(cfg, g.rack)
	if err != nil {
		g.notice(core.NoticeWarn, "config rejected, using defaults", "error", err)
		cfg = config.DefaultPoolConfig()
		sim, _ = NewSimulation(cfg, g.rack)
	}

	g.cfg = cfg
	g.sim = sim
	g.snap = sim.Snapshot()
	g.fit()
	g.notice(core.NoticeInfo, "table racked", "game", g.id, "balls", sim.Remaining(), "preset", string(difficultyPreset))
}

// fit maps the play area onto the screen between the HUD and the footer.
func (g *Game) fit() {
	avail := core.NewRect(0, hudRows, g.runtime.ScreenW, g.runtime.ScreenH-hudRows-footerRows)
	w, h := g.cfg.PlayArea()
	g.view = core.FitViewport(avail, w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	result := core.StepResult{Notices: g.pending}
	g.pending = nil

	if g.sim == nil {
		result.State = g.State()
		return result
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.sim.State() != StateWin {
		g.paused = !g.paused
	}
	if g.paused {
		result.State = g.State()
		return result
	}

	events := make([]core.PointerEvent, 0, len(in.Pointer))
	for _, ev := range in.Pointer {
		x, y := g.view.ToWorld(int(ev.X), int(ev.Y))
		ev.X, ev.Y = x, y
		events = append(events, ev)
	}

	frame := g.sim.Tick(g.runtime.TickSeconds(), events)
	g.snap = frame.Snapshot
	result.Notices = append(result.Notices, g.describe(frame)...)

	if g.statusAge > 0 {
		g.statusAge--
		if g.statusAge == 0 {
			g.status = ""
		}
	}

	result.State = g.State()
	return result
}

// describe turns a frame into HUD messages and log notices.
func (g *Game) describe(f Frame) []core.Notice {
	var out []core.Notice
	add := func(level core.NoticeLevel, msg string, kv ...any) {
		out = append(out, core.Notice{Level: level, Message: msg, Fields: kv})
	}

	for _, e := range f.Events {
		switch e.Kind {
		case EventShot:
			add(core.NoticeInfo, "shot", "n", g.snap.Shots, "power", e.Power, "aim_x", e.Aim.X(), "aim_y", e.Aim.Y())
		case EventBallSunk:
			g.setStatus(fmt.Sprintf("%d ball in the %s pocket", e.Number, e.Pocket))
			add(core.NoticeInfo, "ball sunk", "ball", e.Number, "pocket", e.Pocket, "remaining", g.snap.Remaining)
		case EventScratched:
			g.setStatus("Scratch! Ball in hand")
			add(core.NoticeInfo, "scratch", "pocket", e.Pocket, "scratches", g.snap.Scratches)
		case EventCuePlaced:
			add(core.NoticeDebug, "cue ball placed")
		case EventTurnSettled:
			add(core.NoticeDebug, "table settled", "tick", e.Tick, "fingerprint", fmt.Sprintf("%016x", f.Snapshot.Fingerprint()))
		case EventGameWon:
			add(core.NoticeInfo, "table cleared", "shots", g.snap.Shots, "scratches", g.snap.Scratches, "score", g.score())
		case EventBallCollision:
			add(core.NoticeDebug, "collision", "a", int(e.Ball), "b", int(e.Other), "speed", e.Power)
		case EventCushion:
			add(core.NoticeDebug, "cushion", "ball", int(e.Ball), "side", e.Side.String())
		}
	}

	for _, d := range f.Diagnostics {
		add(core.NoticeWarn, "collision anomaly", "kind", d.Kind.String(), "a", int(d.A), "b", int(d.B), "tick", d.Tick, "t", d.Time)
	}
	return out
}

func (g *Game) notice(level core.NoticeLevel, msg string, kv ...any) {
	g.pending = append(g.pending, core.Notice{Level: level, Message: msg, Fields: kv})
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusAge = statusTicks
}

// score rewards clearing the table in few strokes without scratching.
func (g *Game) score() int {
	return Score(g.snap.Shots, g.snap.Scratches)
}

// Score is 1000 minus 10 per shot and 100 per scratch, never negative.
func Score(shots, scratches int) int {
	return core.Max(0, 1000-10*shots-100*scratches)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	won := g.snap.State == StateWin
	return core.GameState{
		Score:    g.score(),
		GameOver: won,
		Won:      won,
		Paused:   g.paused,

		Shots:     g.snap.Shots,
		Scratches: g.snap.Scratches,
	}
}

// Snapshot returns the last table snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Register the game with the registry
func init() {
	registry.Register("pool", func() registry.Game {
		return New()
	})
	registry.Register("pool_practice", func() registry.Game {
		return NewPractice()
	})
}

// Resize refits the table to a new screen size without re-racking.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.fit()
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/registry"
)

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	if got := m.Result().Difficulty; got != config.DifficultyHard {
		t.Fatalf("initial difficulty = %v, expected hard", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := next.(MenuModel).Result().Difficulty; got != config.DifficultyEasy {
		t.Errorf("difficulty after right = %v, expected easy (wraps)", got)
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := next.(MenuModel).Result().Difficulty; got != config.DifficultyNormal {
		t.Errorf("difficulty after two lefts = %v, expected normal", got)
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")

	if r := m.Result(); !r.Quit {
		t.Errorf("Result() before a choice = %+v, expected Quit", r)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r := next.(MenuModel).Result(); !r.WantsScoreboard {
		t.Errorf("Result() after tab = %+v, expected WantsScoreboard", r)
	}

	if !registry.Exists("stub") {
		registry.Register("stub", func() registry.Game { return &stubGame{} })
	}
	m = NewMenuModel(core.DefaultConfig(), "")
	games := registry.List()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if r := next.(MenuModel).Result(); r.GameID != games[0].ID {
		t.Errorf("Result().GameID = %q, expected %q", r.GameID, games[0].ID)
	}
}

func TestMenuTracksWindowSize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := next.(MenuModel).Result().Config
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

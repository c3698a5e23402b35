package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-billiards/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"unbound key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
		kind core.PointerKind
		held bool
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			ok:   true, kind: core.PointerDown, held: true,
		},
		{
			name: "drag",
			msg:  tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			ok:   true, kind: core.PointerMove, held: true,
		},
		{
			name: "hover",
			msg:  tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
			ok:   true, kind: core.PointerMove, held: false,
		},
		{
			name: "release without button info",
			msg:  tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			ok:   true, kind: core.PointerUp, held: false,
		},
		{
			name: "right press ignored",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			ok:   false,
		},
		{
			name: "wheel ignored",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.kind {
				t.Errorf("MapMouse() kind = %v, expected %v", ev.Kind, tt.kind)
			}
			if ev.Held != tt.held {
				t.Errorf("MapMouse() held = %v, expected %v", ev.Held, tt.held)
			}
			if ev.X != float64(tt.msg.X) || ev.Y != float64(tt.msg.Y) {
				t.Errorf("MapMouse() position = (%v, %v), expected (%d, %d)", ev.X, ev.Y, tt.msg.X, tt.msg.Y)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionRelease}, &frame)

	if len(frame.Pointer) != 2 {
		t.Fatalf("frame has %d pointer events, expected 2", len(frame.Pointer))
	}
	if frame.Pointer[0].Kind != core.PointerDown || frame.Pointer[1].Kind != core.PointerUp {
		t.Errorf("pointer kinds = %v, %v, expected Down, Up", frame.Pointer[0].Kind, frame.Pointer[1].Kind)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.key); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key.String(), got, tt.action)
		}
	}
}

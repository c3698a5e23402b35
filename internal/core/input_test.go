package core

import "testing"

func TestInputFramePointerLifecycle(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.AddPointer(PointerEvent{Kind: PointerDown, X: 3, Y: 4, Held: true})
	f.AddPointer(PointerEvent{Kind: PointerUp, X: 5, Y: 4})

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPause) || len(f.Pointer) != 0 {
		t.Errorf("Clear() left state behind: %+v", f)
	}
	if !clone.Has(ActionPause) {
		t.Error("clone should keep actions after the original is cleared")
	}
	if len(clone.Pointer) != 2 || clone.Pointer[1].Kind != PointerUp {
		t.Errorf("clone pointer events = %+v", clone.Pointer)
	}
}

func TestInputFrameNilActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestNames(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if PointerDown.String() != "Down" {
		t.Errorf("PointerDown.String() = %q", PointerDown.String())
	}
}

package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestFitViewportPreservesAspect(t *testing.T) {
	tests := []struct {
		name  string
		avail Rect
		want  Rect
	}{
		// 640x320 world is 2:1, so on 2:1 cells it wants 4 columns per row
		{"width bound", NewRect(0, 1, 80, 30), NewRect(0, 6, 80, 20)},
		{"height bound", NewRect(0, 0, 200, 10), NewRect(80, 0, 40, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FitViewport(tt.avail, 640, 320)
			if v.Area != tt.want {
				t.Errorf("FitViewport() area = %+v, expected %+v", v.Area, tt.want)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Area: NewRect(4, 2, 64, 16), WorldW: 640, WorldH: 320}

	cx, cy := v.ToCell(0, 0)
	if cx != 4 || cy != 2 {
		t.Errorf("ToCell(0, 0) = (%d, %d), expected (4, 2)", cx, cy)
	}

	wx, wy := v.ToWorld(4, 2)
	if wx != 5 || wy != 10 {
		t.Errorf("ToWorld(4, 2) = (%v, %v), expected (5, 10)", wx, wy)
	}

	for _, cell := range [][2]int{{4, 2}, {20, 9}, {67, 17}} {
		x, y := v.ToWorld(cell[0], cell[1])
		bx, by := v.ToCell(x, y)
		if bx != cell[0] || by != cell[1] {
			t.Errorf("round trip of %v gave (%d, %d)", cell, bx, by)
		}
	}
}

func TestViewportEmpty(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 0, 10), 640, 320)
	if !v.Empty() {
		t.Fatal("zero-width area should produce an empty viewport")
	}
	if x, y := v.ToWorld(3, 3); x != 0 || y != 0 {
		t.Errorf("ToWorld on empty viewport = (%v, %v), expected origin", x, y)
	}
}

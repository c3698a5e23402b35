package core

import "math"

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Viewport maps a world rectangle [0, WorldW] x [0, WorldH] onto a block of
// screen cells. World units are continuous; cells are integer.
type Viewport struct {
	Area   Rect    // cells covered by the world
	WorldW float64 // world width mapped onto Area.W
	WorldH float64 // world height mapped onto Area.H
}

// FitViewport chooses the largest area inside avail that shows the whole
// world with its aspect ratio preserved, centered in avail.
func FitViewport(avail Rect, worldW, worldH float64) Viewport {
	v := Viewport{WorldW: worldW, WorldH: worldH}
	if avail.W <= 0 || avail.H <= 0 || worldW <= 0 || worldH <= 0 {
		v.Area = NewRect(avail.X, avail.Y, 0, 0)
		return v
	}

	// Columns needed per row to keep world proportions on tall cells.
	colsPerRow := worldW / worldH * CellAspect

	w := avail.W
	h := int(math.Floor(float64(w) / colsPerRow))
	if h > avail.H {
		h = avail.H
		w = int(math.Floor(float64(h) * colsPerRow))
	}
	w, h = Max(w, 1), Max(h, 1)

	v.Area = NewRect(avail.X+(avail.W-w)/2, avail.Y+(avail.H-h)/2, w, h)
	return v
}

// Empty reports whether the viewport covers no cells.
func (v Viewport) Empty() bool {
	return v.Area.W <= 0 || v.Area.H <= 0
}

// ToCell returns the cell that contains world point (x, y).
func (v Viewport) ToCell(x, y float64) (int, int) {
	if v.Empty() {
		return v.Area.X, v.Area.Y
	}
	cx := v.Area.X + int(math.Floor(x/v.WorldW*float64(v.Area.W)))
	cy := v.Area.Y + int(math.Floor(y/v.WorldH*float64(v.Area.H)))
	return cx, cy
}

// ToWorld returns the world point at the center of cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	if v.Empty() {
		return 0, 0
	}
	x := (float64(cx-v.Area.X) + 0.5) * v.WorldW / float64(v.Area.W)
	y := (float64(cy-v.Area.Y) + 0.5) * v.WorldH / float64(v.Area.H)
	return x, y
}

// CellsPerUnit returns the horizontal and vertical scale from world units to cells.
func (v Viewport) CellsPerUnit() (float64, float64) {
	if v.Empty() {
		return 0, 0
	}
	return float64(v.Area.W) / v.WorldW, float64(v.Area.H) / v.WorldH
}

package pool

import (
	"math"

	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// BallSpec places one object ball.
type BallSpec struct {
	Number   int
	Position physics.Vec2
}

// Rack lays out the object balls for a new game. The cue ball always
// starts on the layout's head spot.
type Rack func(l Layout, radius, gap float64) []BallSpec

// standardOrder lists ball numbers row by row, apex first, top to bottom
// within a row. The 8 sits in the middle of the third row.
var standardOrder = [][]int{
	{1},
	{15, 2},
	{10, 8, 5},
	{6, 9, 7, 4},
	{3, 13, 11, 12, 14},
}

// StandardRack is a 15-ball triangle with its apex on the foot spot,
// opening toward the foot cushion.
func StandardRack(l Layout, radius, gap float64) []BallSpec {
	return triangle(l.FootSpot, radius, gap, standardOrder)
}

// PracticeRack is a small three-ball triangle for quick games.
func PracticeRack(l Layout, radius, gap float64) []BallSpec {
	return triangle(l.FootSpot, radius, gap, [][]int{{1}, {2, 3}})
}

func triangle(apex physics.Vec2, radius, gap float64, rows [][]int) []BallSpec {
	d := 2*radius + gap
	dx := d * math.Sqrt(3) / 2

	var out []BallSpec
	for i, row := range rows {
		x := apex.X() + float64(i)*dx
		top := apex.Y() - float64(len(row)-1)*d/2
		for j, n := range row {
			out = append(out, BallSpec{Number: n, Position: physics.V(x, top+float64(j)*d)})
		}
	}
	return out
}

// ballColors follows the usual set: solids 1-7, the black 8, stripes 9-15
// reuse the solid colors.
var ballColors = [8]core.Color{
	core.ColorBrightWhite, // cue
	core.ColorBrightYellow,
	core.ColorBlue,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorGreen,
	core.ColorMaroon,
}

// BallColor returns the display color for a ball number (0 is the cue).
func BallColor(number int) core.Color {
	switch {
	case number == 8:
		return core.ColorBlack
	case number > 8 && number <= 15:
		return ballColors[number-8]
	case number >= 0 && number < 8:
		return ballColors[number]
	default:
		return core.ColorDefault
	}
}

// IsStripe reports whether a ball number is a stripe.
func IsStripe(number int) bool {
	return number > 8
}

package pool

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// Visual characters for rendering
const (
	CushionChar = '▓'
	PocketChar  = '▒'
	SolidChar   = '●'
	StripeChar  = '◍'
	AimChar     = '·'
	PowerFull   = '█'
	PowerEmpty  = '░'
)

// aimLength is the aim guide length in world units at minimum power;
// each unit of power adds aimPerPower.
const (
	aimLength   = 60.0
	aimPerPower = 1.5
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil || g.view.Empty() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for the table")
		return
	}

	g.drawTable(dst)
	g.drawAim(dst)
	g.drawBalls(dst)
	g.drawHUD(dst)
	g.drawFooter(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.snap.State == StateWin {
		g.drawCenteredMessage(dst, "TABLE CLEARED",
			fmt.Sprintf("%d shots, %d scratches, score %d  |  R to rack again", g.snap.Shots, g.snap.Scratches, g.score()))
	}
}

// cellRect converts a world box to the cells it covers.
func (g *Game) cellRect(b physics.AABB) core.Rect {
	x0, y0 := g.view.ToCell(b.MinX, b.MinY)
	x1, y1 := g.view.ToCell(b.MaxX, b.MaxY)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (g *Game) drawTable(dst *core.Screen) {
	dst.DrawRectColored(g.cellRect(g.snap.Outer), CushionChar, core.ColorWood)
	dst.DrawRectColored(g.cellRect(g.snap.Bed), ' ', core.ColorFelt)

	// Pockets: every cell whose center falls inside the pocket circle
	for _, p := range g.snap.Pockets {
		area := g.cellRect(physics.BoxAround(p.Center, p.Radius))
		for y := area.Y; y <= area.Bottom(); y++ {
			for x := area.X; x <= area.Right(); x++ {
				wx, wy := g.view.ToWorld(x, y)
				if physics.DistSq(physics.V(wx, wy), p.Center) <= p.Radius*p.Radius {
					dst.SetColored(x, y, PocketChar, core.ColorBlack)
				}
			}
		}
		cx, cy := g.view.ToCell(p.Center.X(), p.Center.Y())
		dst.SetColored(cx, cy, PocketChar, core.ColorBlack)
	}
}

func (g *Game) drawAim(dst *core.Screen) {
	cue, ok := g.snap.CueView()
	if !ok || !cue.OnTable || !g.snap.HasAim {
		return
	}
	if g.snap.State != StateAiming && g.snap.State != StatePowerSelect {
		return
	}

	length := aimLength + g.snap.Power*aimPerPower
	tip := cue.Position.Add(g.snap.Aim.Mul(length))
	x0, y0 := g.view.ToCell(cue.Position.X(), cue.Position.Y())
	x1, y1 := g.view.ToCell(tip.X(), tip.Y())

	color := core.ColorBrightWhite
	if g.snap.State == StatePowerSelect {
		color = powerColor(g.snap.Power, g.snap.PowerMin, g.snap.PowerMax)
	}
	bed := g.cellRect(g.snap.Bed)
	dst.DrawLine(x0, y0, x1, y1, AimChar, color, func(x, y int) bool {
		return bed.Contains(x, y) && !(x == x0 && y == y0)
	})
}

func (g *Game) drawBalls(dst *core.Screen) {
	for _, b := range g.snap.Bodies {
		if !b.OnTable {
			continue
		}
		x, y := g.view.ToCell(b.Position.X(), b.Position.Y())
		r := SolidChar
		if IsStripe(b.Number) {
			r = StripeChar
		}
		dst.SetColored(x, y, r, b.Color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s  Shots: %d  Scratches: %d  Left: %d", g.title, g.snap.Shots, g.snap.Scratches, g.snap.Remaining)
	dst.DrawText(0, 0, left)

	if len(g.snap.Potted) > 0 {
		x := len([]rune(left)) + 2
		dst.DrawText(x, 0, "Potted:")
		x += 8
		for _, n := range g.snap.Potted {
			r := SolidChar
			if IsStripe(n) {
				r = StripeChar
			}
			dst.SetColored(x, 0, r, BallColor(n))
			x++
		}
	}

	if g.status != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(g.status))-1, 0, g.status, core.ColorBrightYellow)
	}
}

func (g *Game) drawFooter(dst *core.Screen) {
	barY := dst.Height() - 2
	helpY := dst.Height() - 1

	if g.snap.State == StatePowerSelect {
		const width = 30
		span := g.snap.PowerMax - g.snap.PowerMin
		frac := 0.0
		if span > 0 {
			frac = (g.snap.Power - g.snap.PowerMin) / span
		}
		filled := int(math.Round(core.ClampF(frac, 0, 1) * width))
		dst.DrawText(1, barY, "Power ")
		dst.DrawTextColored(7, barY, strings.Repeat(string(PowerFull), filled), powerColor(g.snap.Power, g.snap.PowerMin, g.snap.PowerMax))
		dst.DrawTextColored(7+filled, barY, strings.Repeat(string(PowerEmpty), width-filled), core.ColorGray)
		dst.DrawText(8+width, barY, fmt.Sprintf("%3.0f", g.snap.Power))
	}

	dst.DrawTextColored(1, helpY, helpText(g.snap.State), core.ColorGray)
}

func helpText(s TurnState) string {
	switch s {
	case StateAiming:
		return "Press toward a ball to aim, drag outward for power"
	case StatePowerSelect:
		return "Drag along the aim line for power, release to shoot"
	case StateInactive:
		return "Balls rolling..."
	case StateScratch:
		return "Ball in hand: move the cue ball and click to place it"
	case StateWin:
		return "R to rack again  |  Q to quit"
	default:
		return ""
	}
}

// powerColor goes green, yellow, red as power rises.
func powerColor(power, lo, hi float64) core.Color {
	span := hi - lo
	if span <= 0 {
		return core.ColorGreen
	}
	switch f := (power - lo) / span; {
	case f < 0.4:
		return core.ColorGreen
	case f < 0.75:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

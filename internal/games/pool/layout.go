package pool

import (
	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/physics"
)

// Layout is the static geometry of the table, computed once from config.
type Layout struct {
	Play     physics.AABB // whole play area
	Outer    physics.AABB // outside edge of the cushions
	Bed      physics.AABB // cloth the balls roll on
	Walls    *physics.WallSet
	Pockets  *physics.PocketSet
	HeadSpot physics.Vec2 // cue ball start
	FootSpot physics.Vec2 // apex of the rack
	Park     physics.Vec2 // off-table spot for a pocketed cue ball
}

// Pocket names in the order they are created.
var pocketNames = [6]string{
	"top-left", "top-side", "top-right",
	"bottom-left", "bottom-side", "bottom-right",
}

// NewLayout builds the walls, pockets and spots for a table.
// Pocket centers sit one ball radius inside the bed so a ball pressed into
// a corner or rolling along a rail over a side pocket drops.
func NewLayout(table config.PoolTable, ballRadius float64) Layout {
	play := physics.NewAABB(0, 0, table.Width, table.Height)
	outer := play.Inset(table.Margin)
	bed := outer.Inset(table.Cushion)
	th := table.Cushion

	walls := physics.NewWallSet(
		physics.Wall{Side: physics.SideTop, Rect: physics.AABB{MinX: outer.MinX, MinY: outer.MinY, MaxX: outer.MaxX, MaxY: outer.MinY + th}},
		physics.Wall{Side: physics.SideBottom, Rect: physics.AABB{MinX: outer.MinX, MinY: outer.MaxY - th, MaxX: outer.MaxX, MaxY: outer.MaxY}},
		physics.Wall{Side: physics.SideLeft, Rect: physics.AABB{MinX: outer.MinX, MinY: outer.MinY, MaxX: outer.MinX + th, MaxY: outer.MaxY}},
		physics.Wall{Side: physics.SideRight, Rect: physics.AABB{MinX: outer.MaxX - th, MinY: outer.MinY, MaxX: outer.MaxX, MaxY: outer.MaxY}},
	)

	in := ballRadius
	midX := bed.Center().X()
	centers := [6]physics.Vec2{
		physics.V(bed.MinX+in, bed.MinY+in),
		physics.V(midX, bed.MinY+in),
		physics.V(bed.MaxX-in, bed.MinY+in),
		physics.V(bed.MinX+in, bed.MaxY-in),
		physics.V(midX, bed.MaxY-in),
		physics.V(bed.MaxX-in, bed.MaxY-in),
	}
	pockets := make([]physics.Pocket, len(centers))
	for i, c := range centers {
		pockets[i] = physics.Pocket{ID: i, Name: pocketNames[i], Center: c, Radius: table.PocketRadius}
	}

	midY := bed.Center().Y()
	return Layout{
		Play:     play,
		Outer:    outer,
		Bed:      bed,
		Walls:    walls,
		Pockets:  physics.NewPocketSet(pockets...),
		HeadSpot: physics.V(bed.MinX+bed.Width()*0.25, midY),
		FootSpot: physics.V(bed.MinX+bed.Width()*0.75, midY),
		Park:     physics.V(table.ScratchParkX, table.ScratchParkY),
	}
}

// CanPlace reports whether a ball of radius r centered at p lies fully on the bed.
func (l Layout) CanPlace(p physics.Vec2, r float64) bool {
	return l.Bed.Inset(r).ContainsPoint(p)
}

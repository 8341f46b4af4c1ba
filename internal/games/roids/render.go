package roids

import (
	"fmt"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids/sim"
)

const hudRows = 1

// hudPalette is cycled by tick so the status line pulses slowly.
var hudPalette = []core.Color{
	core.ColorCyan,
	core.ColorBrightWhite,
	core.ColorYellow,
	core.ColorBrightWhite,
}

const hudCycleTicks = 30

// strokeStyle returns the glyph and colour for an outline.
func strokeStyle(k sim.Kind) (rune, core.Color) {
	switch k {
	case sim.KindShip:
		return '*', core.ColorCyan
	case sim.KindShot:
		return '.', core.ColorYellow
	default:
		return '#', core.ColorGray
	}
}

// Render draws the world below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil || dst.Height() <= hudRows {
		return
	}

	vp := core.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height() - hudRows,
	}

	for _, shape := range g.state.Shapes() {
		drawShape(dst, vp, shape)
	}

	g.renderHUD(dst)

	if g.state.ShipDestroyed {
		g.renderOverlay(dst)
	}
}

// drawShape strokes one outline. Points are projected without clamping so
// shapes straddling the world edge clip at the screen border.
func drawShape(dst *core.Screen, vp core.Viewport, shape sim.Shape) {
	xs := make([]int, len(shape.Points))
	ys := make([]int, len(shape.Points))
	for i, p := range shape.Points {
		xs[i], ys[i] = vp.Project(p.X, p.Y)
		ys[i] += hudRows
	}
	r, c := strokeStyle(shape.Kind)
	dst.DrawPolyline(xs, ys, shape.Closed, r, c)
}

func (g *Game) renderHUD(dst *core.Screen) {
	// Outlines poking above the playfield would land in the HUD row.
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), hudRows), ' ')

	color := hudPalette[int(g.state.Tick/hudCycleTicks)%len(hudPalette)]
	text := fmt.Sprintf(" WAVE %d  ROCKS %d  SHOTS %d  HITS %d",
		g.state.Wave, len(g.state.Asteroids), len(g.state.Shots), g.stats.Hits)

	x := 0
	for _, r := range text {
		dst.SetColor(x, 0, r, color)
		x++
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := hudRows + (dst.Height()-hudRows)/2
	line1 := "SHIP DESTROYED"
	line2 := "R restart   Q quit"

	boxW := len(line2) + 4
	box := core.NewRect((dst.Width()-boxW)/2, mid-2, boxW, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	x1 := (dst.Width() - len(line1)) / 2
	for i, r := range line1 {
		dst.SetColor(x1+i, mid-1, r, core.ColorRed)
	}
	dst.DrawTextCentered(mid, line2)
}

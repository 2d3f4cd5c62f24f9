// Package terminal plays the game in a terminal through tcell. Each screen
// cell shows two grid rows with the upper half block glyph; the grid is
// downsampled when the terminal is smaller than 320x90.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"conquest/internal/game"
)

const halfBlock = '▀'

// layout maps grid cells onto screen cells. scale grid cells per screen column
// and per half row; rows excludes the status line.
type layout struct {
	scale      int
	cols, rows int
}

func layoutFor(screenW, screenH int) layout {
	rowsAvail := screenH - 1 // status line
	if screenW <= 0 || rowsAvail <= 0 {
		return layout{}
	}
	sx := ceilDiv(game.GridWidth, screenW)
	sy := ceilDiv(game.GridHeight, 2*rowsAvail)
	s := max(sx, sy, 1)
	return layout{
		scale: s,
		cols:  ceilDiv(game.GridWidth, s),
		rows:  ceilDiv(ceilDiv(game.GridHeight, s), 2),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// rank orders what a downsampled block shows: trails first, then void, then
// conquered ground.
func rank(cs game.CellState) int {
	switch {
	case cs.Occupant == game.OwnerHuman:
		return 3
	case cs.Occupant == game.OwnerBot:
		return 2
	case !cs.Conquered:
		return 1
	}
	return 0
}

// sampleBlock returns the highest ranked cell in the scale x scale block whose
// top-left grid cell is (gx, gy).
func sampleBlock(snap *game.Snapshot, gx, gy, scale int) game.CellState {
	best := snap.At(gx, gy)
	br := rank(best)
	for y := gy; y < min(gy+scale, snap.Height); y++ {
		for x := gx; x < min(gx+scale, snap.Width); x++ {
			cs := snap.At(x, y)
			if r := rank(cs); r > br {
				best, br = cs, r
				if br == 3 {
					return best
				}
			}
		}
	}
	return best
}

func tcellColor(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints snap and the status line onto screen. The caller calls Show.
func Draw(screen tcell.Screen, snap *game.Snapshot, pal *game.Colors, rng game.Source) {
	w, h := screen.Size()
	screen.Clear()
	lay := layoutFor(w, h)
	if lay.scale == 0 {
		return
	}

	border := tcellColor(pal.Border)
	gridRows := ceilDiv(game.GridHeight, lay.scale)
	for row := 0; row < lay.rows; row++ {
		top := row * 2
		for col := 0; col < lay.cols; col++ {
			gx := col * lay.scale
			fg := tcellColor(pal.CellColor(sampleBlock(snap, gx, top*lay.scale, lay.scale), snap.Phase, rng))
			bg := border
			if top+1 < gridRows {
				bg = tcellColor(pal.CellColor(sampleBlock(snap, gx, (top+1)*lay.scale, lay.scale), snap.Phase, rng))
			}
			screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	drawText(screen, 0, h-1, statusLine(snap), tcell.StyleDefault)
}

func statusLine(snap *game.Snapshot) string {
	s := fmt.Sprintf("%-7s conquered %5.1f%%  bots %3d  length %d  respawns %d",
		snap.Phase, snap.ConqueredFraction()*100, snap.LiveBots, snap.HumanLen, snap.Stats.BotRespawns)
	if b := snap.Phase.Banner(); b != "" {
		s += "  -- " + b
	}
	return s
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

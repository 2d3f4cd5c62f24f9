package game

import "time"

// Snapshot is a read-only copy of what a frontend needs to draw one frame.
type Snapshot struct {
	Width, Height int
	Cells         []CellState // row-major
	Phase         Phase
	Since         time.Time
	HumanAlive    bool
	HumanLen      int
	LiveBots      int
	Unconquered   int
	Stats         Stats
}

// FillSnapshot copies the session state into dst, reusing dst.Cells.
func (s *Session) FillSnapshot(dst *Snapshot) {
	dst.Width = GridWidth
	dst.Height = GridHeight
	if cap(dst.Cells) < GridCells {
		dst.Cells = make([]CellState, GridCells)
	}
	dst.Cells = dst.Cells[:GridCells]
	copy(dst.Cells, s.Grid.cells)
	dst.Phase = s.phase
	dst.Since = s.since
	dst.HumanAlive = s.phase != PhaseLost && s.Human.Alive()
	dst.HumanLen = s.Human.Len()
	dst.LiveBots = LiveBots(s.Bots)
	dst.Unconquered = len(s.Grid.Unconquered())
	dst.Stats = s.stats
}

func (sn *Snapshot) At(x, y int) CellState {
	return sn.Cells[y*sn.Width+x]
}

// ConqueredFraction is the share of conquered cells in [0, 1].
func (sn *Snapshot) ConqueredFraction() float64 {
	total := sn.Width * sn.Height
	if total == 0 {
		return 0
	}
	return float64(total-sn.Unconquered) / float64(total)
}

package game

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns c offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Owner identifies who occupies a cell. OwnerNone means the cell is free.
type Owner uint8

const (
	OwnerNone Owner = iota
	OwnerHuman
	OwnerBot
)

func (o Owner) String() string {
	switch o {
	case OwnerHuman:
		return "human"
	case OwnerBot:
		return "bot"
	default:
		return "none"
	}
}

// CellState is the per-cell conquest and occupancy flag pair.
type CellState struct {
	Conquered bool
	Occupant  Owner
}

// Grid owns every cell of the board plus the list of cells still unconquered.
// Cells are stored row-major: index = y*GridWidth + x.
type Grid struct {
	cells       []CellState
	unconquered []Cell
	conquered   int
}

// NewGrid returns a grid with every cell free and unconquered.
func NewGrid() *Grid {
	g := &Grid{
		cells:       make([]CellState, GridCells),
		unconquered: make([]Cell, 0, GridCells),
	}
	g.RebuildUnconquered()
	return g
}

// InBounds reports whether c lies on the grid.
func InBounds(c Cell) bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// idx panics on out-of-grid coordinates. Callers check InBounds first.
func (g *Grid) idx(c Cell) int {
	if !InBounds(c) {
		panic(fmt.Sprintf("game: cell (%d,%d) outside %dx%d grid", c.X, c.Y, GridWidth, GridHeight))
	}
	return c.Y*GridWidth + c.X
}

// At returns the state of cell c.
func (g *Grid) At(c Cell) CellState {
	return g.cells[g.idx(c)]
}

func (g *Grid) OccupantAt(c Cell) Owner {
	return g.cells[g.idx(c)].Occupant
}

func (g *Grid) SetOccupant(c Cell, o Owner) {
	g.cells[g.idx(c)].Occupant = o
}

func (g *Grid) IsConquered(c Cell) bool {
	return g.cells[g.idx(c)].Conquered
}

// ConquerRadius marks every cell of the box [-radius, radius-1] around center
// as conquered. The box is clipped to the grid. It does not touch the
// unconquered list; call RebuildUnconquered afterwards.
func (g *Grid) ConquerRadius(center Cell, radius int) {
	x0 := max(center.X-radius, 0)
	x1 := min(center.X+radius, GridWidth)
	y0 := max(center.Y-radius, 0)
	y1 := min(center.Y+radius, GridHeight)
	for y := y0; y < y1; y++ {
		row := g.cells[y*GridWidth : (y+1)*GridWidth]
		for x := x0; x < x1; x++ {
			row[x].Conquered = true
		}
	}
}

// RebuildUnconquered recomputes the unconquered list with a full row-major scan.
func (g *Grid) RebuildUnconquered() {
	g.unconquered = g.unconquered[:0]
	g.conquered = 0
	for i, cs := range g.cells {
		if cs.Conquered {
			g.conquered++
			continue
		}
		g.unconquered = append(g.unconquered, Cell{X: i % GridWidth, Y: i / GridWidth})
	}
}

// IsEmptyVoid reports whether no unconquered cell is left.
func (g *Grid) IsEmptyVoid() bool {
	return len(g.unconquered) == 0
}

// Unconquered returns the unconquered cells in row-major order.
// The slice is owned by the grid and is overwritten by the next rebuild.
func (g *Grid) Unconquered() []Cell {
	return g.unconquered
}

// ConqueredCount is the number of conquered cells as of the last rebuild.
func (g *Grid) ConqueredCount() int {
	return g.conquered
}

// clearBody frees every cell of body. Cells already freed are left as is.
func (g *Grid) clearBody(body []Cell) {
	for _, c := range body {
		g.cells[g.idx(c)].Occupant = OwnerNone
	}
}

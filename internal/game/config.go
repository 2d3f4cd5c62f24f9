package game

import "time"

// Grid dimensions (in cells).
const (
	GridWidth  = 320
	GridHeight = 180
	GridCells  = GridWidth * GridHeight
)

// Population and conquest.
const (
	MaxBotNumber     = 100
	ConqueringRadius = 20
	BotTurnChance    = 6 // a bot re-rolls its heading with probability 1/BotTurnChance per tick
)

// Timing.
const (
	TickInterval = 20 * time.Millisecond
	ResetDwell   = 500 * time.Millisecond
)

// Window defaults. The window adds a border on every side of the grid.
const (
	DefaultDensity  = 4
	MaxDensity      = 8
	BorderThickness = 1
	WindowWidth     = GridWidth*DefaultDensity + 2*BorderThickness // 1282
	WindowHeight    = GridHeight*DefaultDensity + 2*BorderThickness
)

// InitialBody is the human trail at game start, tail first.
var InitialBody = [...]Cell{{X: 20, Y: 20}, {X: 21, Y: 20}, {X: 22, Y: 20}, {X: 23, Y: 20}}

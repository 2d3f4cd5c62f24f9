package game

import (
	"fmt"
	"strconv"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex reads #rrggbb (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Colors is the cell palette used by every frontend.
type Colors struct {
	Conquered RGB
	Void      RGB
	Human     RGB
	Bot       RGB
	Border    RGB
}

var Palette = Colors{
	Conquered: RGB{R: 255, G: 255, B: 255},
	Void:      RGB{R: 0, G: 0, B: 0},
	Human:     RGB{R: 0, G: 255, B: 0},
	Bot:       RGB{R: 255, G: 0, B: 0},
	Border:    RGB{R: 0, G: 0, B: 0},
}

// VictoryColors are cycled through on human cells once the game is won.
var VictoryColors = [...]RGB{
	{R: 255, G: 255, B: 0},
	{R: 255, G: 0, B: 0},
	{R: 255, G: 0, B: 255},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 0},
	{R: 0, G: 0, B: 255},
}

// CellColor picks the colour of one cell. Occupants win over conquest state;
// human cells flicker through VictoryColors after a win, one draw per cell.
func (p *Colors) CellColor(cs CellState, phase Phase, rng Source) RGB {
	switch cs.Occupant {
	case OwnerHuman:
		if phase == PhaseWon {
			return VictoryColors[rng.Intn(len(VictoryColors))]
		}
		return p.Human
	case OwnerBot:
		return p.Bot
	}
	if cs.Conquered {
		return p.Conquered
	}
	return p.Void
}

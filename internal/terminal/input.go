package terminal

import (
	"github.com/gdamore/tcell/v2"

	"conquest/internal/game"
)

// keyDirection maps arrow keys and WASD to a heading.
func keyDirection(ev *tcell.EventKey) (game.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Up, true
	case tcell.KeyDown:
		return game.Down, true
	case tcell.KeyLeft:
		return game.Left, true
	case tcell.KeyRight:
		return game.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.Up, true
		case 's', 'S':
			return game.Down, true
		case 'a', 'A':
			return game.Left, true
		case 'd', 'D':
			return game.Right, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

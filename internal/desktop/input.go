package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"conquest/internal/game"
)

var directionKeys = [...]struct {
	key glfw.Key
	dir game.Direction
}{
	{glfw.KeyUp, game.Up},
	{glfw.KeyDown, game.Down},
	{glfw.KeyLeft, game.Left},
	{glfw.KeyRight, game.Right},
	{glfw.KeyW, game.Up},
	{glfw.KeyS, game.Down},
	{glfw.KeyA, game.Left},
	{glfw.KeyD, game.Right},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	dirs     []game.Direction
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
		dirs:     make([]game.Direction, 0, len(directionKeys)),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Directions returns the direction keys pressed since the previous call.
// The slice is reused between calls.
func (in *Input) Directions(window *glfw.Window) []game.Direction {
	in.dirs = in.dirs[:0]
	for _, k := range directionKeys {
		if in.JustPressed(window, k.key) {
			in.dirs = append(in.dirs, k.dir)
		}
	}
	return in.dirs
}

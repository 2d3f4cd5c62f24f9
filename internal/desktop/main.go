package desktop

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"conquest/internal/game"
)

// Run opens the window and drives session until the window closes or Escape
// is pressed. It must be called from the main goroutine.
func Run(session *game.Session, settings game.Settings, logger *slog.Logger) error {
	runtime.LockOSThread()

	pal, err := settings.ResolveColors()
	if err != nil {
		return err
	}

	window, err := initWindow(settings.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer(pal)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	session.Events.Subscribe(game.EventPhaseChanged, func(e game.Event) {
		window.SetTitle(windowTitle(settings.Window.Title, e.Phase))
	})

	input := NewInput()
	pacer := game.NewPacer(time.Now())
	var snap game.Snapshot

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		now := time.Now()
		for _, d := range input.Directions(window) {
			session.HandleDirection(d, now)
		}
		if pacer.Due(now) {
			session.Tick(now)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		session.FillSnapshot(&snap)
		rend.Draw(&snap, session.Rand(), fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}

func windowTitle(base string, p game.Phase) string {
	if b := p.Banner(); b != "" {
		return base + " - " + b
	}
	return base
}

package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"conquest/internal/game"
)

// Run opens the terminal screen and plays session until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, session *game.Session, settings game.Settings, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	logger.Info("terminal ready", "cols", w, "rows", h)
	return Loop(ctx, screen, session, settings)
}

// Loop drives session on an initialised screen. Input arrives from the tcell
// poll goroutine over a channel; the session is only touched here.
func Loop(ctx context.Context, screen tcell.Screen, session *game.Session, settings game.Settings) error {
	simTicker := time.NewTicker(game.TickInterval)
	defer simTicker.Stop()
	frameTicker := time.NewTicker(time.Duration(settings.Terminal.FrameMs) * time.Millisecond)
	defer frameTicker.Stop()

	return loop(ctx, screen, session, settings, simTicker.C, frameTicker.C)
}

// loop runs one Tick per value received on ticks and draws one frame per value
// received on frames.
func loop(ctx context.Context, screen tcell.Screen, session *game.Session, settings game.Settings,
	ticks, frames <-chan time.Time) error {
	pal, err := settings.ResolveColors()
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	var snap game.Snapshot
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if d, ok := keyDirection(ev); ok {
					session.HandleDirection(d, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticks:
			session.Tick(now)

		case <-frames:
			session.FillSnapshot(&snap)
			Draw(screen, &snap, &pal, session.Rand())
			screen.Show()
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conquest/internal/desktop"
	"conquest/internal/game"
	"conquest/internal/terminal"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		frontend   = flag.String("frontend", "", "desktop or terminal (overrides settings)")
		seed       = flag.Uint64("seed", 0, "random seed (0 = settings, env or clock)")
		logPath    = flag.String("log", "", "log file (terminal frontend logs nowhere by default)")
	)
	flag.Parse()

	if err := run(*configPath, *frontend, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "conquest: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, frontend string, seed uint64, logPath string) error {
	settings, err := game.LoadSettings(configPath)
	if err != nil {
		return err
	}
	if err := settings.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if frontend != "" {
		settings.Frontend = frontend
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if settings.Seed == 0 {
		settings.Seed = uint64(time.Now().UnixNano())
	}

	logger, closeLog, err := newLogger(settings.Frontend, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	session := game.NewSession(game.NewRand(settings.Seed), time.Now())
	logEvents(session.Events, logger)
	logger.Info("game started", "frontend", settings.Frontend, "seed", settings.Seed,
		"grid", fmt.Sprintf("%dx%d", game.GridWidth, game.GridHeight), "bots", game.MaxBotNumber)

	switch settings.Frontend {
	case game.FrontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = terminal.Run(ctx, session, settings, logger)
	default:
		err = desktop.Run(session, settings, logger)
	}
	st := session.Stats()
	logger.Info("game closed", "ticks", st.Ticks, "resets", st.Resets, "bot_respawns", st.BotRespawns)
	return err
}

// newLogger logs to stderr for the desktop frontend. The terminal frontend owns
// the tty, so it logs to logPath or nowhere.
func newLogger(frontend, logPath string) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logPath != "":
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case frontend == game.FrontendTerminal:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, nil)), closeFn, nil
}

func logEvents(bus *game.EventBus, logger *slog.Logger) {
	bus.Subscribe(game.EventPhaseChanged, func(e game.Event) {
		logger.Info("phase changed", "phase", e.Phase, "tick", e.Tick)
	})
	bus.Subscribe(game.EventHumanDied, func(e game.Event) {
		logger.Info("human died", "cause", e.Cause, "x", e.Cell.X, "y", e.Cell.Y, "tick", e.Tick)
	})
	bus.Subscribe(game.EventReset, func(e game.Event) {
		logger.Info("game reset", "tick", e.Tick)
	})
}

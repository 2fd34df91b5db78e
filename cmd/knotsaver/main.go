// Command knotsaver is a terminal screensaver drawing smooth closed curves
// through bouncing control points.
//
// Click to add a control point, right-click to remove the last one, press P
// to start the animation and F1 for help. Settings are read from KNOT_*
// environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"honnef.co/go/knot"
	"honnef.co/go/knot/internal/config"
	"honnef.co/go/knot/internal/input"
	"honnef.co/go/knot/internal/render"
	"honnef.co/go/knot/internal/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger = logger.With("session", uuid.NewString())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("knotsaver", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger returns a text logger writing to cfg.LogFile. The terminal belongs
// to the screensaver, so without a log file all records are discarded.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})), closeFn, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	bounds := knot.NewRectFromOrigin(knot.Pt(0, 0), knot.Sz(cfg.Width, cfg.Height))
	sc := scene.New(scene.Options{
		Bounds:   bounds,
		Density:  cfg.Density,
		Blend:    cfg.Blend,
		MaxSpeed: cfg.MaxSpeed,
		Rand:     newRand(cfg.Seed),
		Logger:   logger,
	})
	r := render.New(screen, bounds)
	logger.Info("started", "bounds", bounds, "frame_interval", cfg.FrameInterval)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	var src input.Source
	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted")
			return nil

		case ev := <-events:
			e := src.Translate(ev)
			switch e.Action {
			case input.Quit:
				logger.Info("quit")
				return nil
			case input.Resize:
				screen.Sync()
				r.Resize()
			default:
				if input.Apply(sc, r, e) {
					logger.Debug("input", "action", e.Action)
				}
			}

		case <-ticker.C:
			r.Frame(sc)
			sc.Step()
		}
	}
}

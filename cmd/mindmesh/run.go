package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arclight-dev/mindmesh/audio"
	"github.com/arclight-dev/mindmesh/config"
	"github.com/arclight-dev/mindmesh/effects"
	"github.com/arclight-dev/mindmesh/logging"
	"github.com/arclight-dev/mindmesh/render"
	"github.com/arclight-dev/mindmesh/sim"
	"github.com/arclight-dev/mindmesh/vmath"
)

const fieldExtent = 20.0

func run(cfg config.Config) error {
	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.ColorMode == "256" {
		// tcell honors this before screen creation
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before printing a crash, otherwise the stack
	// trace lands on a raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "mindmesh crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	feed := sim.NewFeed(cfg.Agents, seed, logger)
	manager := effects.NewManager()
	bridge := effects.NewBridge(manager)

	cues, err := audio.NewEngine(cfg.Audio)
	if err != nil {
		// Missing audio device is not a reason to refuse to start
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer cues.Close()

	field := render.NewFieldRenderer(fieldExtent)
	agentsR := render.NewAgentRenderer(field.Camera)

	w, h := screen.Size()
	buf := render.NewBuffer(w, h)

	// Single input goroutine; the loop below owns all mutable state
	inputCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(inputCh)
				return
			}
			inputCh <- ev
		}
	}()

	logger.Info("starting",
		zap.Int("fps", cfg.FPS),
		zap.Int("agents", cfg.Agents),
		zap.Int64("seed", seed),
	)

	tick := time.Second / time.Duration(cfg.FPS)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	var clock float64

	for {
		select {
		case ev, ok := <-inputCh:
			if !ok {
				return nil
			}
			switch tev := ev.(type) {
			case *tcell.EventResize:
				w, h := tev.Size()
				buf.Resize(w, h)
				screen.Sync()
			case *tcell.EventKey:
				if quitKey(tev) {
					logger.Info("quit requested")
					return nil
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			clock += dt

			// Dispatch this tick's events, age the registry, then draw
			events := feed.Tick(dt)
			if len(events) > 0 {
				positions := agentPositions(feed)
				for _, ev := range events {
					bridge.Dispatch(ev, positions[ev.Agent()], clock)
					cues.Cue(ev)
				}
			}
			manager.Update(dt)

			buf.Fill(' ', tcell.StyleDefault.Background(render.RgbBackground))
			field.Render(buf, manager, clock)
			agentsR.Render(buf, feed.Agents())
			render.RenderStatusBar(buf, len(feed.Agents()), manager.ActiveCount(), 1/max(dt, 1e-6))
			buf.Flush(screen)
		}
	}
}

func agentPositions(feed *sim.Feed) map[uuid.UUID]vmath.Vec3F {
	out := make(map[uuid.UUID]vmath.Vec3F)
	for _, a := range feed.Agents() {
		out[a.ID] = a.Pos
	}
	return out
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

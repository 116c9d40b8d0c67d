package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crystal-snake/audio"
	"github.com/lixenwraith/crystal-snake/constants"
	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/input"
	"github.com/lixenwraith/crystal-snake/modes"
	"github.com/lixenwraith/crystal-snake/network"
	"github.com/lixenwraith/crystal-snake/render"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "crystal-snake: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCRYSTAL-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	run(screen, opts)
}

// run wires the engine to the terminal, sound and bridge, and blocks until quit
func run(screen tcell.Screen, opts *options) {
	clock := engine.NewPausableClock()
	scheduler := engine.NewClockScheduler(clock)
	game := engine.NewEngine(scheduler, engine.NewMonotonicTimeProvider())

	controller := modes.NewController(game, scheduler, opts.config)
	game.RegisterEventHandler(controller)

	// Engine events only wake the UI loop; it reads state through Snapshot
	redraw := make(chan struct{}, 1)
	game.RegisterEventHandler(engine.HandlerFunc(func(engine.GameEvent) {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}, engine.AllEventTypes...))

	audioCfg := audio.LoadAudioConfig()
	if opts.mute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		log.Warningf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()
	game.RegisterEventHandler(sounds)

	remote := make(chan input.Action, constants.UIEventBuffer)
	if opts.listen != "" {
		cfg := network.DefaultConfig()
		cfg.Address = opts.listen
		hub := network.NewHub(cfg, func(id network.PeerID, a input.Action) {
			// Remote peers cannot end the local session
			if a == input.ActionQuit {
				return
			}
			select {
			case remote <- a:
			default:
				log.Debugf("peer %d: input queue full, dropping %s", id, a)
			}
		})
		if err := hub.Start(); err != nil {
			log.Errorf("websocket bridge disabled: %v", err)
		} else {
			defer hub.Close()
			game.RegisterEventHandler(hub)
		}
	}

	events := make(chan tcell.Event, constants.UIEventBuffer)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			events <- ev
		}
	}()

	renderer := render.NewTerminalRenderer(screen)
	draw := func() {
		snap := game.Snapshot()
		cfg := snap.Config
		if cfg.GridWidth == 0 {
			cfg = opts.config
		}
		renderer.RenderFrame(render.Frame{
			Config: cfg,
			Board: engine.RenderPayload{
				Segments: snap.Segments,
				Food:     snap.Food.At,
				Active:   snap.Food.Active,
			},
			View: controller.View(),
		})
	}

	// Registered last so the tick goroutine is gone before sound and bridge shut down
	defer stopGame(game, scheduler)

	// Idle redraw keeps pause and resize state current
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	log.Infof("started: %dx%d board, %dms ticks", opts.config.GridWidth, opts.config.GridHeight, opts.config.SpeedMs)
	draw()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !controller.Handle(input.FromEvent(ev)) {
					log.Info("quit")
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			draw()

		case a := <-remote:
			controller.Handle(a)

		case <-redraw:
			draw()

		case <-frameTicker.C:
			draw()
		}
	}
}

// stopGame cancels ticking and waits for the scheduler goroutine, so no tick dispatches
// into handlers once it returns
func stopGame(game *engine.Engine, scheduler *engine.ClockScheduler) {
	game.Stop()
	scheduler.Wait()
}

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/crystal-snake/engine"
)

// Environment overrides, weaker than flags
const (
	envPreset     = "SNAKE_PRESET"
	envDifficulty = "SNAKE_DIFFICULTY"
	envSeed       = "SNAKE_SEED"
	envListen     = "SNAKE_LISTEN"
)

// options is the resolved command line
type options struct {
	config engine.Config
	listen string
	debug  bool
	mute   bool
}

// parseOptions resolves flags over environment over preset defaults
func parseOptions(args []string, getenv func(string) string, usage io.Writer) (*options, error) {
	fs := flag.NewFlagSet("crystal-snake", flag.ContinueOnError)
	fs.SetOutput(usage)

	preset := fs.String("preset", "crystal", "Board preset: classic, crystal")
	difficulty := fs.String("difficulty", "", "Difficulty: easy, normal, hard or a tick interval in ms")
	width := fs.Int("width", 0, "Board width in cells (0 = preset)")
	height := fs.Int("height", 0, "Board height in cells (0 = preset)")
	seed := fs.Uint64("seed", 0, "Food placement seed (0 = time-seeded)")
	listen := fs.String("listen", "", "Serve the websocket bridge on addr, e.g. :7777")
	debug := fs.Bool("debug", false, "Write debug logs to logs/")
	mute := fs.Bool("mute", false, "Disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	pick := func(name, flagValue, env string) string {
		if set[name] {
			return flagValue
		}
		if v := getenv(env); v != "" {
			return v
		}
		return flagValue
	}

	cfg, err := engine.PresetConfig(pick("preset", *preset, envPreset))
	if err != nil {
		return nil, err
	}

	if d := pick("difficulty", *difficulty, envDifficulty); d != "" {
		_, ms, err := engine.ParseDifficulty(d)
		if err != nil {
			return nil, err
		}
		cfg.SpeedMs = ms
	}

	if *width > 0 || *height > 0 {
		if *width > 0 {
			cfg.GridWidth = *width
		}
		if *height > 0 {
			cfg.GridHeight = *height
		}
		cfg.InitialHead = centredHead(cfg)
	}

	cfg.Seed = *seed
	if !set["seed"] {
		if v := getenv(envSeed); v != "" {
			s, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", envSeed, err)
			}
			cfg.Seed = s
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &options{
		config: cfg,
		listen: pick("listen", *listen, envListen),
		debug:  *debug,
		mute:   *mute,
	}, nil
}

// centredHead places the head so the initial body straddles the board centre
func centredHead(cfg engine.Config) engine.Point {
	v := cfg.InitialDirection.Vector()
	ahead := (cfg.InitialLength - 1) / 2
	col := cfg.GridWidth/2 + v.X*ahead
	row := cfg.GridHeight/2 + v.Y*ahead
	return engine.Point{X: col * cfg.CellSize, Y: row * cfg.CellSize}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/raycaster/audio"
	"github.com/lixenwraith/raycaster/config"
	"github.com/lixenwraith/raycaster/input"
)

var (
	configFlag  = flag.String("config", "", "Path to a JSON config file")
	mazeFlag    = flag.String("maze", "", "Play a generated maze of size WxH (e.g. 31x21) instead of the configured map")
	seedFlag    = flag.Int64("seed", 0, "Maze seed, 0 = time based")
	braidFlag   = flag.Float64("braid", 0.3, "Maze braiding from 0 (perfect) to 1 (no dead ends)")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/raycaster.log")
	minimapFlag = flag.Bool("minimap", false, "Start with the minimap visible")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAYCASTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	m, pose, err := cfg.World()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Map error: %v\n", err)
		os.Exit(1)
	}
	ctrl := cfg.Controller(m)

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Keymap error: %v\n", err)
			os.Exit(1)
		}
		keys.Merge(override)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	log.Printf("map %dx%d, spawn (%.2f, %.2f, %.2f), trig %s, max steps %d",
		m.Width(), m.Height(), pose.X, pose.Y, pose.Heading, cfg.Trig, cfg.MaxSteps)

	g := newGame(screen, ctrl, pose, keys, sound)
	g.renderer.ShowMinimap = *minimapFlag

	events := make(chan tcell.Event, 256)
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
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.run(events)
}

// loadConfig layers command-line maze flags over config.Load
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	if *mazeFlag != "" {
		w, h, err := parseSize(*mazeFlag)
		if err != nil {
			return nil, err
		}
		cfg.Map = nil
		cfg.Start = nil
		cfg.Maze = &config.Maze{Width: w, Height: h, Seed: *seedFlag, Braiding: *braidFlag}
	} else if cfg.Maze != nil && flagPassed("seed") {
		cfg.Maze.Seed = *seedFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseSize reads WxH
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("maze size %q: want WxH", s)
	}
	if w, err = strconv.Atoi(strings.TrimSpace(ws)); err != nil {
		return 0, 0, fmt.Errorf("maze width %q: %w", ws, err)
	}
	if h, err = strconv.Atoi(strings.TrimSpace(hs)); err != nil {
		return 0, 0, fmt.Errorf("maze height %q: %w", hs, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("maze size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

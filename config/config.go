// Package config resolves runtime settings: defaults, then an optional JSON file,
// then RAYCASTER_* environment overrides, then validation
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/grid"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/raycast"
	"github.com/lixenwraith/raycaster/vmath"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Trig implementation names
const (
	TrigBhaskara = "bhaskara"
	TrigTable    = "table"
)

// maxStepsLimit bounds configured draw distance, a pass is O(steps) per column
const maxStepsLimit = 1 << 16

// Map is an inline level, either text rows or bit rows with an explicit width
type Map struct {
	Layout []string `json:"layout,omitempty"`
	Width  int      `json:"width,omitempty"`
	Bits   []uint64 `json:"bits,omitempty"`
}

// Maze requests a generated level instead of an inline one
type Maze struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Seed     int64   `json:"seed"`
	Braiding float64 `json:"braiding"`
}

// Start overrides the spawn pose
type Start struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// Config is the full set of tunables
type Config struct {
	StepSize   float64 `json:"step_size"`
	FOVDegrees float64 `json:"fov_deg"`
	MaxSteps   int     `json:"max_steps"`
	WallHeight float64 `json:"wall_height"`
	Trig       string  `json:"trig"`

	Map   *Map   `json:"map,omitempty"`
	Maze  *Maze  `json:"maze,omitempty"`
	Start *Start `json:"start,omitempty"`

	// Keys overrides the default key table, key name → action name
	Keys map[string]string `json:"keys,omitempty"`
}

// Default mirrors the reference constants on the reference map
func Default() *Config {
	return &Config{
		StepSize:   constants.StepSize,
		FOVDegrees: constants.FOV * 180 / math.Pi,
		MaxSteps:   constants.MaxSteps,
		WallHeight: constants.WallHeight,
		Trig:       TrigBhaskara,
	}
}

// Load layers the JSON file at path (skipped when empty) and the environment over Default
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from RAYCASTER_* variables, unparsable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("RAYCASTER_STEP_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.StepSize = f
		}
	}

	if v := os.Getenv("RAYCASTER_FOV_DEG"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.FOVDegrees = f
		}
	}

	if v := os.Getenv("RAYCASTER_MAX_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxSteps = n
		}
	}

	if v := os.Getenv("RAYCASTER_WALL_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.WallHeight = f
		}
	}

	if v := os.Getenv("RAYCASTER_TRIG"); v != "" {
		c.Trig = strings.ToLower(strings.TrimSpace(v))
	}

	// Seed only means something for a generated level
	if v := os.Getenv("RAYCASTER_MAZE_SEED"); v != "" && c.Maze != nil {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Maze.Seed = n
		}
	}
}

// Validate rejects settings the core cannot run with
func (c *Config) Validate() error {
	// Collision is only tested at the destination, so a step of a full cell could tunnel
	if !(c.StepSize > 0 && c.StepSize < 1) {
		return fmt.Errorf("%w: step_size %v outside (0, 1)", ErrInvalid, c.StepSize)
	}
	if !(c.FOVDegrees > 0 && c.FOVDegrees < 180) {
		return fmt.Errorf("%w: fov_deg %v outside (0, 180)", ErrInvalid, c.FOVDegrees)
	}
	if c.MaxSteps < 1 || c.MaxSteps > maxStepsLimit {
		return fmt.Errorf("%w: max_steps %d outside [1, %d]", ErrInvalid, c.MaxSteps, maxStepsLimit)
	}
	if !(c.WallHeight > 0) || math.IsInf(c.WallHeight, 0) {
		return fmt.Errorf("%w: wall_height %v must be positive", ErrInvalid, c.WallHeight)
	}
	if c.Trig != TrigBhaskara && c.Trig != TrigTable {
		return fmt.Errorf("%w: trig %q (want %q or %q)", ErrInvalid, c.Trig, TrigBhaskara, TrigTable)
	}

	if c.Map != nil && c.Maze != nil {
		return fmt.Errorf("%w: map and maze are mutually exclusive", ErrInvalid)
	}
	if c.Map != nil && len(c.Map.Layout) > 0 && len(c.Map.Bits) > 0 {
		return fmt.Errorf("%w: map.layout and map.bits are mutually exclusive", ErrInvalid)
	}
	if c.Maze != nil && (c.Maze.Braiding < 0 || c.Maze.Braiding > 1) {
		return fmt.Errorf("%w: maze.braiding %v outside [0, 1]", ErrInvalid, c.Maze.Braiding)
	}

	if c.Start != nil {
		for _, v := range []float64{c.Start.X, c.Start.Y, c.Start.Heading} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: start pose must be finite", ErrInvalid)
			}
		}
	}

	return nil
}

// World builds the level and the spawn pose
// Generated mazes spawn at the center of their start cell
func (c *Config) World() (*grid.Map, player.Pose, error) {
	var (
		m    *grid.Map
		pose = player.DefaultPose()
		err  error
	)

	switch {
	case c.Maze != nil:
		var maze grid.Maze
		maze, err = grid.Generate(grid.MazeConfig{
			Width:    c.Maze.Width,
			Height:   c.Maze.Height,
			Seed:     c.Maze.Seed,
			Braiding: c.Maze.Braiding,
		})
		if err != nil {
			return nil, pose, fmt.Errorf("generate maze: %w", err)
		}
		m = maze.Map
		pose.X = float32(maze.Start.X) + 0.5
		pose.Y = float32(maze.Start.Y) + 0.5

	case c.Map != nil && len(c.Map.Layout) > 0:
		m, err = grid.Parse(c.Map.Layout)
		if err != nil {
			return nil, pose, fmt.Errorf("map layout: %w", err)
		}

	case c.Map != nil:
		m, err = grid.New(c.Map.Width, c.Map.Bits)
		if err != nil {
			return nil, pose, fmt.Errorf("map bits: %w", err)
		}

	default:
		m = grid.Default()
	}

	if c.Start != nil {
		pose = player.Pose{
			X:       float32(c.Start.X),
			Y:       float32(c.Start.Y),
			Heading: float32(c.Start.Heading),
		}
	}

	if m.IsWall(pose.X, pose.Y) {
		return nil, pose, fmt.Errorf("%w: spawn (%v, %v) is inside a wall", ErrInvalid, pose.X, pose.Y)
	}

	return m, pose, nil
}

// Controller wires the tunables to a controller over m
func (c *Config) Controller(m *grid.Map) *player.Controller {
	var trig vmath.Trig = vmath.Bhaskara{}
	if c.Trig == TrigTable {
		trig = vmath.NewTable()
	}

	caster := raycast.New(m, trig)
	caster.MaxSteps = c.MaxSteps

	fov := float32(c.FOVDegrees * math.Pi / 180)
	return &player.Controller{
		Caster:     caster,
		StepSize:   float32(c.StepSize),
		HalfFOV:    fov * 0.5,
		AngleStep:  fov / constants.ScreenColumns,
		WallHeight: float32(c.WallHeight),
	}
}

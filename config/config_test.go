package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/grid"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/vmath"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raycaster.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}

	if cfg.StepSize != constants.StepSize {
		t.Errorf("Expected step size %v, got %v", constants.StepSize, cfg.StepSize)
	}
	if cfg.MaxSteps != constants.MaxSteps {
		t.Errorf("Expected max steps %d, got %d", constants.MaxSteps, cfg.MaxSteps)
	}
	if math.Abs(cfg.FOVDegrees-180/2.7) > 1e-9 {
		t.Errorf("Expected FOV %v degrees, got %v", 180/2.7, cfg.FOVDegrees)
	}
}

// TestDefaultControllerMatchesReference verifies Default wires the same tunables as NewController
func TestDefaultControllerMatchesReference(t *testing.T) {
	m := grid.Default()
	got := Default().Controller(m)
	want := player.NewController(m)

	if got.StepSize != want.StepSize || got.WallHeight != want.WallHeight {
		t.Errorf("Expected step %v height %v, got step %v height %v",
			want.StepSize, want.WallHeight, got.StepSize, got.WallHeight)
	}
	if math.Abs(float64(got.HalfFOV-want.HalfFOV)) > 1e-6 {
		t.Errorf("Expected half FOV %v, got %v", want.HalfFOV, got.HalfFOV)
	}
	if math.Abs(float64(got.AngleStep-want.AngleStep)) > 1e-8 {
		t.Errorf("Expected angle step %v, got %v", want.AngleStep, got.AngleStep)
	}
	if got.Caster.MaxSteps != constants.MaxSteps {
		t.Errorf("Expected caster budget %d, got %d", constants.MaxSteps, got.Caster.MaxSteps)
	}
	if _, ok := got.Caster.Trig.(vmath.Bhaskara); !ok {
		t.Errorf("Expected Bhaskara trig, got %T", got.Caster.Trig)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Trig != TrigBhaskara {
		t.Errorf("Expected default trig, got %q", cfg.Trig)
	}
}

// TestLoadFileOverridesDefaults verifies unspecified fields keep their defaults
func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"step_size": 0.1,
		"trig": "table",
		"map": {"layout": ["#####", "#...#", "#####"]}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StepSize != 0.1 {
		t.Errorf("Expected step size 0.1, got %v", cfg.StepSize)
	}
	if cfg.MaxSteps != constants.MaxSteps {
		t.Errorf("Expected default max steps, got %d", cfg.MaxSteps)
	}

	m, pose, err := cfg.World()
	if err != nil {
		t.Fatalf("World failed: %v", err)
	}
	if m.Width() != 5 || m.Height() != 3 {
		t.Errorf("Expected 5x3 map, got %dx%d", m.Width(), m.Height())
	}
	if pose != player.DefaultPose() {
		t.Errorf("Expected default pose, got %+v", pose)
	}

	ctrl := cfg.Controller(m)
	if _, ok := ctrl.Caster.Trig.(*vmath.Table); !ok {
		t.Errorf("Expected table trig, got %T", ctrl.Caster.Trig)
	}
}

func TestLoadBitsMap(t *testing.T) {
	path := writeConfig(t, `{"map": {"width": 4, "bits": [15, 9, 15]}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m, _, err := cfg.World()
	if err != nil {
		t.Fatalf("World failed: %v", err)
	}
	if m.Cell(1, 1) || !m.Cell(0, 1) || !m.Cell(3, 1) {
		t.Errorf("Unexpected layout %q", m.Layout())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected ErrNotExist, got %v", err)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := Load(writeConfig(t, `{"step_size": `)); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("Invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"max_steps": 0}`))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "Zero step", mutate: func(c *Config) { c.StepSize = 0 }},
		{name: "Full cell step", mutate: func(c *Config) { c.StepSize = 1 }},
		{name: "NaN step", mutate: func(c *Config) { c.StepSize = math.NaN() }},
		{name: "Zero FOV", mutate: func(c *Config) { c.FOVDegrees = 0 }},
		{name: "Straight FOV", mutate: func(c *Config) { c.FOVDegrees = 180 }},
		{name: "Negative steps", mutate: func(c *Config) { c.MaxSteps = -1 }},
		{name: "Huge steps", mutate: func(c *Config) { c.MaxSteps = 1 << 20 }},
		{name: "Zero wall height", mutate: func(c *Config) { c.WallHeight = 0 }},
		{name: "Unknown trig", mutate: func(c *Config) { c.Trig = "cordic" }},
		{name: "Map and maze", mutate: func(c *Config) {
			c.Map = &Map{Layout: []string{"###"}}
			c.Maze = &Maze{Width: 9, Height: 9}
		}},
		{name: "Layout and bits", mutate: func(c *Config) {
			c.Map = &Map{Layout: []string{"###"}, Width: 3, Bits: []uint64{7}}
		}},
		{name: "Braiding above one", mutate: func(c *Config) { c.Maze = &Maze{Width: 9, Height: 9, Braiding: 2} }},
		{name: "Infinite start", mutate: func(c *Config) { c.Start = &Start{X: math.Inf(1), Y: 1.5} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RAYCASTER_STEP_SIZE", "0.09")
	t.Setenv("RAYCASTER_FOV_DEG", "90")
	t.Setenv("RAYCASTER_MAX_STEPS", "64")
	t.Setenv("RAYCASTER_WALL_HEIGHT", "80")
	t.Setenv("RAYCASTER_TRIG", " Table ")
	t.Setenv("RAYCASTER_MAZE_SEED", "42")

	cfg := Default()
	cfg.Maze = &Maze{Width: 15, Height: 15}
	cfg.ApplyEnv()

	if cfg.StepSize != 0.09 || cfg.FOVDegrees != 90 || cfg.MaxSteps != 64 || cfg.WallHeight != 80 {
		t.Errorf("Numeric overrides not applied: %+v", cfg)
	}
	if cfg.Trig != TrigTable {
		t.Errorf("Expected trig %q, got %q", TrigTable, cfg.Trig)
	}
	if cfg.Maze.Seed != 42 {
		t.Errorf("Expected maze seed 42, got %d", cfg.Maze.Seed)
	}
}

// TestApplyEnvIgnoresGarbage verifies unparsable values leave defaults in place
func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("RAYCASTER_STEP_SIZE", "fast")
	t.Setenv("RAYCASTER_MAX_STEPS", "far")
	t.Setenv("RAYCASTER_MAZE_SEED", "7")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.StepSize != constants.StepSize || cfg.MaxSteps != constants.MaxSteps {
		t.Errorf("Expected defaults kept, got step %v steps %d", cfg.StepSize, cfg.MaxSteps)
	}
	if cfg.Maze != nil {
		t.Error("Expected seed alone not to request a maze")
	}
}

func TestWorldMaze(t *testing.T) {
	cfg := Default()
	cfg.Maze = &Maze{Width: 21, Height: 15, Seed: 7, Braiding: 0.5}

	m, pose, err := cfg.World()
	if err != nil {
		t.Fatalf("World failed: %v", err)
	}
	if m.Width() != 21 || m.Height() != 15 {
		t.Errorf("Expected 21x15 maze, got %dx%d", m.Width(), m.Height())
	}
	if pose.X != 1.5 || pose.Y != 1.5 {
		t.Errorf("Expected spawn at start cell center, got (%v, %v)", pose.X, pose.Y)
	}
	if m.IsWall(pose.X, pose.Y) {
		t.Error("Expected spawn in an open cell")
	}
}

func TestWorldStartOverride(t *testing.T) {
	cfg := Default()
	cfg.Start = &Start{X: 1.5, Y: 3.5, Heading: 1}

	_, pose, err := cfg.World()
	if err != nil {
		t.Fatalf("World failed: %v", err)
	}
	if pose.X != 1.5 || pose.Y != 3.5 || pose.Heading != 1 {
		t.Errorf("Expected start override, got %+v", pose)
	}

	cfg.Start = &Start{X: 2.5, Y: 1.5}
	if _, _, err := cfg.World(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for spawn inside a wall, got %v", err)
	}
}

func TestWorldBadMap(t *testing.T) {
	cfg := Default()
	cfg.Map = &Map{Layout: []string{"###", "#x#", "###"}}
	if _, _, err := cfg.World(); !errors.Is(err, grid.ErrLayout) {
		t.Errorf("Expected grid.ErrLayout, got %v", err)
	}

	cfg.Map = &Map{Width: 2, Bits: []uint64{7}}
	if _, _, err := cfg.World(); !errors.Is(err, grid.ErrRowWidth) {
		t.Errorf("Expected grid.ErrRowWidth, got %v", err)
	}
}

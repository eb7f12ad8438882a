// Package player owns the pose update and the per-column view projection
package player

import (
	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/grid"
	"github.com/lixenwraith/raycaster/raycast"
	"github.com/lixenwraith/raycaster/vmath"
)

// Pose is the player's position in cell units and heading in radians
// Heading is never wrapped, trig reduces it on use
type Pose struct {
	X, Y    float32
	Heading float32
}

// DefaultPose is the spawn on the reference map
func DefaultPose() Pose {
	return Pose{
		X:       constants.DefaultPlayerX,
		Y:       constants.DefaultPlayerY,
		Heading: constants.DefaultPlayerHeading,
	}
}

// Input is one update's worth of held directions
type Input struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Idle reports that nothing is held
func (in Input) Idle() bool {
	return !in.Forward && !in.Backward && !in.TurnLeft && !in.TurnRight
}

// Moving reports that a translation was requested
func (in Input) Moving() bool {
	return in.Forward || in.Backward
}

// Sample is one screen column: projected wall height in pixels and which face was hit
// Shadow marks a vertical grid-line face
type Sample struct {
	Height int
	Shadow bool
}

// View holds one sample per screen column, left to right
type View [constants.ScreenColumns]Sample

// Controller applies inputs and projects views against one map
type Controller struct {
	Caster *raycast.Caster

	StepSize   float32
	HalfFOV    float32
	AngleStep  float32
	WallHeight float32
}

// NewController builds a controller with the reference tunables and Bhaskara trig
func NewController(m *grid.Map) *Controller {
	return &Controller{
		Caster:     raycast.New(m, vmath.Bhaskara{}),
		StepSize:   constants.StepSize,
		HalfFOV:    constants.HalfFOV,
		AngleStep:  constants.AngleStep,
		WallHeight: constants.WallHeight,
	}
}

// Map returns the map the controller casts against
func (c *Controller) Map() *grid.Map {
	return c.Caster.Map
}

// Advance moves along the pre-turn heading, then turns
// If the new position lands in a wall both coordinates revert and blocked is true,
// the heading change is kept either way
func (c *Controller) Advance(p Pose, in Input) (next Pose, blocked bool) {
	trig := c.Caster.Trig
	next = p

	if in.Forward {
		next.X += trig.Cos(p.Heading) * c.StepSize
		next.Y += -trig.Sin(p.Heading) * c.StepSize
	}
	if in.Backward {
		next.X -= trig.Cos(p.Heading) * c.StepSize
		next.Y -= -trig.Sin(p.Heading) * c.StepSize
	}

	if in.TurnRight {
		next.Heading -= c.StepSize
	}
	if in.TurnLeft {
		next.Heading += c.StepSize
	}

	if c.Caster.Map.IsWall(next.X, next.Y) {
		next.X, next.Y = p.X, p.Y
		blocked = true
	}

	return next, blocked
}

// Project casts one ray per column, sweeping from heading+HalfFOV rightward
func (c *Controller) Project(p Pose) View {
	var v View
	c.ProjectInto(p, &v)
	return v
}

// ProjectInto fills an existing view, for hosts that keep one frame buffer
func (c *Controller) ProjectInto(p Pose, v *View) {
	trig := c.Caster.Trig
	start := p.Heading + c.HalfFOV

	for i := range v {
		angle := start - float32(i)*c.AngleStep
		dist, shadow := c.Caster.Cast(p.X, p.Y, angle)

		v[i] = Sample{
			Height: columnHeight(c.WallHeight, dist*trig.Cos(angle-p.Heading)),
			Shadow: shadow,
		}
	}
}

// columnHeight divides the wall height by the fisheye-corrected distance
// Collapsed distances saturate instead of overflowing the int conversion, an infinite one projects to nothing
func columnHeight(wallHeight, perp float32) int {
	if !(perp > 0) {
		return constants.MaxColumnHeight
	}
	if !vmath.IsFinite(perp) {
		return 0
	}

	h := wallHeight / perp
	if !(h < constants.MaxColumnHeight) {
		return constants.MaxColumnHeight
	}
	if h < 0 {
		return 0
	}
	return int(h)
}

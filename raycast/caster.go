// Package raycast finds wall distances on a grid map with two axis-aligned DDA passes.
//
// Wall faces are axis aligned, so a ray's nearest wall is the closer of the first solid
// cell behind a horizontal grid line and the first solid cell behind a vertical one.
// Each pass only stops on its own family of lines and marches at most MaxSteps lines.
package raycast

import (
	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/grid"
	"github.com/lixenwraith/raycaster/vmath"
)

// DegenerateDelta is the saturation value for per-step offsets when the tangent is zero,
// infinite or NaN, i.e. when a ray runs parallel to the lines a pass marches over
// One step of this size leaves any map, so the degenerate pass ends on the solid boundary
// with a distance the other pass always beats
const DegenerateDelta = 1e6

// Caster marches rays over a map
type Caster struct {
	Map  *grid.Map
	Trig vmath.Trig

	// MaxSteps is the draw distance in grid-line advances per pass, <= 0 selects constants.MaxSteps
	MaxSteps int
}

// New returns a caster with the default step budget, nil trig selects vmath.Bhaskara
func New(m *grid.Map, trig vmath.Trig) *Caster {
	if trig == nil {
		trig = vmath.Bhaskara{}
	}
	return &Caster{
		Map:      m,
		Trig:     trig,
		MaxSteps: constants.MaxSteps,
	}
}

// Horizontal returns the distance from (px, py) to the nearest wall met on a horizontal grid line
func (c *Caster) Horizontal(px, py, angle float32) float32 {
	// Map Y grows downward, so angles in [pi, 2pi) march toward +Y
	positiveY := isOdd(vmath.Floor(angle / vmath.Pi))

	var firstY, dy float32
	if positiveY {
		firstY = vmath.Ceil(py) - py
		dy = 1
	} else {
		firstY = vmath.Floor(py) - py
		dy = -1
	}

	tan := c.Trig.Tan(angle)
	firstX := clampDelta(-firstY / tan)
	dx := clampDelta(-dy / tan)

	nextX, nextY := firstX, firstY
	steps := c.steps()
	for i := 0; i < steps; i++ {
		cellX := nextX + px
		cellY := nextY + py
		if !positiveY {
			// The line sits on the top edge of the cell being entered
			cellY--
		}

		if c.Map.IsWall(cellX, cellY) {
			break
		}

		nextX += dx
		nextY += dy
	}

	return vmath.Distance(nextX, nextY)
}

// Vertical returns the distance from (px, py) to the nearest wall met on a vertical grid line
func (c *Caster) Vertical(px, py, angle float32) float32 {
	positiveX := isOdd(vmath.Floor((angle - vmath.HalfPi) / vmath.Pi))

	var firstX, dx float32
	if positiveX {
		firstX = vmath.Ceil(px) - px
		dx = 1
	} else {
		firstX = vmath.Floor(px) - px
		dx = -1
	}

	tan := c.Trig.Tan(angle)
	firstY := clampDelta(-tan * firstX)
	dy := clampDelta(dx * -tan)

	nextX, nextY := firstX, firstY
	steps := c.steps()
	for i := 0; i < steps; i++ {
		cellX := nextX + px
		if !positiveX {
			cellX--
		}
		cellY := nextY + py

		if c.Map.IsWall(cellX, cellY) {
			break
		}

		nextX += dx
		nextY += dy
	}

	return vmath.Distance(nextX, nextY)
}

// Cast runs both passes and returns the nearer distance
// vertical reports that the vertical-line pass won, ties included
func (c *Caster) Cast(px, py, angle float32) (dist float32, vertical bool) {
	h := c.Horizontal(px, py, angle)
	v := c.Vertical(px, py, angle)
	if h < v {
		return h, false
	}
	return v, true
}

func (c *Caster) steps() int {
	if c.MaxSteps <= 0 {
		return constants.MaxSteps
	}
	return c.MaxSteps
}

// isOdd tests an integral float, negative values included
func isOdd(k float32) bool {
	return k-2*vmath.Floor(k*0.5) != 0
}

// clampDelta saturates an offset to ±DegenerateDelta, NaN maps to +DegenerateDelta
func clampDelta(v float32) float32 {
	switch {
	case v > DegenerateDelta:
		return DegenerateDelta
	case v < -DegenerateDelta:
		return -DegenerateDelta
	case v != v:
		return DegenerateDelta
	}
	return v
}

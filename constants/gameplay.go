// @focus: #constants { gameplay }
package constants

import "math"

// Player Movement
const (
	// StepSize is how far the player moves, and how many radians it turns, per update
	StepSize = 0.045

	// DefaultPlayerX and DefaultPlayerY place the player in the open cell (1, 1)
	DefaultPlayerX = 1.5
	DefaultPlayerY = 1.5

	// DefaultPlayerHeading faces +X
	DefaultPlayerHeading = 0.0
)

// Projection
const (
	// ScreenColumns is the number of rays fired per view, one per screen column
	ScreenColumns = 160

	// FOV is the player's horizontal field of view in radians
	FOV = math.Pi / 2.7

	// HalfFOV splits the field of view around the heading
	HalfFOV = FOV * 0.5

	// AngleStep is the angle between neighbouring rays
	AngleStep = FOV / ScreenColumns

	// WallHeight is the apparent height, in pixels, of a wall one unit away
	WallHeight = 100.0

	// MaxColumnHeight caps projected heights when the perpendicular distance collapses to zero
	MaxColumnHeight = 1 << 14
)

// Ray Marching
const (
	// MaxSteps is the draw distance in grid-line advances per ray pass
	MaxSteps = 256
)

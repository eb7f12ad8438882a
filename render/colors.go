package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	// Wall faces: horizontal grid-line hits are lit, vertical ones shadowed
	RgbWallLit    = tcell.NewRGBColor(192, 202, 245)
	RgbWallShadow = tcell.NewRGBColor(97, 110, 170)

	RgbCeiling = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbFloor   = tcell.NewRGBColor(41, 46, 66)

	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbBlocked    = tcell.NewRGBColor(200, 50, 50)

	RgbMinimapWall   = tcell.NewRGBColor(180, 180, 180)
	RgbMinimapOpen   = tcell.NewRGBColor(50, 50, 50)
	RgbMinimapPlayer = tcell.NewRGBColor(255, 165, 0) // Orange
)

// WallColor picks the face color for a sample's shadow flag
func WallColor(shadow bool) tcell.Color {
	if shadow {
		return RgbWallShadow
	}
	return RgbWallLit
}

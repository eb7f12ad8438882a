package constants

import "time"

// Virtual Screen
const (
	// ScreenHeight is the height of the virtual framebuffer the view heights are expressed in
	ScreenHeight = 160

	// ScreenCenterY is the row wall columns are centered on
	ScreenCenterY = ScreenHeight / 2

	// WindowScale multiplies the virtual framebuffer for the windowed host
	WindowScale = 4
)

// Frame Timing
const (
	// FrameUpdateInterval drives one Advance + Project per tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a key press counts as held without a repeat
	// Terminals report presses and auto-repeats only, never releases
	KeyHoldWindow = 120 * time.Millisecond
)

// HUD Layout
const (
	// HUDRows is the number of terminal rows reserved under the view
	HUDRows = 1

	// MinimapMaxWidth and MinimapMaxHeight bound the minimap overlay in cells
	MinimapMaxWidth  = 64
	MinimapMaxHeight = 32
)

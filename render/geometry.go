package render

import "github.com/lixenwraith/raycaster/constants"

// ColumnSpan centers a wall column of height rows on a screen of screenH rows
// Returns the half-open row range [top, bottom), clipped to the screen
// The unclipped top is screenH/2 - height/2, matching a vline at center minus half height
func ColumnSpan(height, screenH int) (top, bottom int) {
	if screenH <= 0 {
		return 0, 0
	}
	mid := screenH / 2
	if height <= 0 {
		return mid, mid
	}

	// Clip before adding so saturated heights cannot overflow
	if height > 2*screenH {
		return 0, screenH
	}

	top = mid - height/2
	bottom = top + height
	if top < 0 {
		top = 0
	}
	if bottom > screenH {
		bottom = screenH
	}
	return top, bottom
}

// ScaleHeight converts a height in virtual framebuffer pixels to rows of a target of rows tall
func ScaleHeight(height, rows int) int {
	if height <= 0 || rows <= 0 {
		return 0
	}
	if height > constants.MaxColumnHeight {
		height = constants.MaxColumnHeight
	}
	return height * rows / constants.ScreenHeight
}

// SourceColumn maps output column x of width columns onto a view column
func SourceColumn(x, width int) int {
	if width <= 0 {
		return 0
	}
	c := x * constants.ScreenColumns / width
	if c >= constants.ScreenColumns {
		c = constants.ScreenColumns - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

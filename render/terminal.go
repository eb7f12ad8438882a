package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/grid"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/vmath"
)

// Half-block glyphs give two wall rows per terminal row
const (
	glyphFull   = '█'
	glyphUpper  = '▀'
	glyphLower  = '▄'
	glyphEmpty  = ' '
	glyphWall   = '█'
	glyphOpen   = '·'
)

// Frame is everything one terminal frame shows
type Frame struct {
	View *player.View
	Pose player.Pose
	Map  *grid.Map

	FrameTime time.Duration
	Blocked   bool
	Muted     bool
}

// TerminalRenderer draws frames to a tcell screen
type TerminalRenderer struct {
	screen      tcell.Screen
	ShowMinimap bool
}

// NewTerminalRenderer creates a renderer over screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// ViewRows returns the rows available to the 3D view for a screen height
func ViewRows(height int) int {
	rows := height - constants.HUDRows
	if rows < 0 {
		return 0
	}
	return rows
}

// RenderFrame draws the view, the HUD and optionally the minimap, then shows the screen
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()

	rows := ViewRows(height)
	if f.View != nil {
		r.drawView(f.View, width, rows)
	}
	if rows < height {
		r.drawStatusBar(f, width, rows)
	}
	if r.ShowMinimap && f.Map != nil {
		r.drawMinimap(f.Map, f.Pose, width, rows)
	}

	r.screen.Show()
}

// drawView renders each terminal column from its nearest view column at half-row resolution
func (r *TerminalRenderer) drawView(v *player.View, width, rows int) {
	if width <= 0 || rows <= 0 {
		return
	}
	subRows := 2 * rows

	for x := 0; x < width; x++ {
		s := v[SourceColumn(x, width)]
		top, bottom := ColumnSpan(ScaleHeight(s.Height, subRows), subRows)
		wall := WallColor(s.Shadow)

		for y := 0; y < rows; y++ {
			bg := RgbCeiling
			if 2*y >= rows {
				bg = RgbFloor
			}

			upper := 2*y >= top && 2*y < bottom
			lower := 2*y+1 >= top && 2*y+1 < bottom

			glyph := glyphEmpty
			switch {
			case upper && lower:
				glyph = glyphFull
			case upper:
				glyph = glyphUpper
			case lower:
				glyph = glyphLower
			}

			style := tcell.StyleDefault.Background(bg).Foreground(wall)
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawStatusBar writes pose, frame time and state flags on the first row below the view
func (r *TerminalRenderer) drawStatusBar(f Frame, width, y int) {
	style := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := StatusText(f)
	r.drawText(0, y, width, text, style)

	if f.Blocked {
		tag := " BUMP "
		r.drawText(width-len(tag), y, width, tag, style.Background(RgbBlocked))
	}
}

// StatusText formats the HUD line
func StatusText(f Frame) string {
	deg := float64(f.Pose.Heading) * 180 / float64(vmath.Pi)
	text := fmt.Sprintf(" x %.2f  y %.2f  heading %.0f°  %.1fms",
		f.Pose.X, f.Pose.Y, deg, float64(f.FrameTime.Microseconds())/1000)
	if f.Muted {
		text += "  [muted]"
	}
	return text
}

// drawMinimap overlays the map in the top-left corner, one cell per map cell
// Maps larger than the overlay scroll to keep the player inside
func (r *TerminalRenderer) drawMinimap(m *grid.Map, p player.Pose, width, rows int) {
	w := min(m.Width(), constants.MinimapMaxWidth, width)
	h := min(m.Height(), constants.MinimapMaxHeight, rows)
	if w <= 0 || h <= 0 {
		return
	}

	px, py := int(vmath.Floor(p.X)), int(vmath.Floor(p.Y))
	ox := clampInt(px-w/2, 0, m.Width()-w)
	oy := clampInt(py-h/2, 0, m.Height()-h)

	wallStyle := tcell.StyleDefault.Background(RgbCeiling).Foreground(RgbMinimapWall)
	openStyle := tcell.StyleDefault.Background(RgbCeiling).Foreground(RgbMinimapOpen)
	playerStyle := tcell.StyleDefault.Background(RgbCeiling).Foreground(RgbMinimapPlayer)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := ox+x, oy+y
			switch {
			case cx == px && cy == py:
				r.screen.SetContent(x, y, HeadingGlyph(p.Heading), nil, playerStyle)
			case m.Cell(cx, cy):
				r.screen.SetContent(x, y, glyphWall, nil, wallStyle)
			default:
				r.screen.SetContent(x, y, glyphOpen, nil, openStyle)
			}
		}
	}
}

func (r *TerminalRenderer) drawText(x, y, maxX int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= maxX {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// headingGlyphs are indexed by octant, counter-clockwise from +X with map Y pointing down
var headingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// HeadingGlyph returns the arrow closest to heading
func HeadingGlyph(heading float32) rune {
	octant := vmath.Floor(heading/(vmath.Pi/4) + 0.5)
	idx := int(octant - 8*vmath.Floor(octant/8))
	if idx < 0 || idx > 7 {
		return '@'
	}
	return headingGlyphs[idx]
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

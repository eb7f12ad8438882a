package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/raycaster/vmath"
)

// MaxWidth is the widest row a Map can hold, one bit per column
const MaxWidth = 64

// MaxHeight bounds the number of rows so degenerate rays always leave the map in one step
const MaxHeight = 4096

// Layout characters
const (
	WallRune    = '#'
	PassageRune = '.'
)

var (
	ErrEmptyMap = errors.New("grid: map has no rows")
	ErrWidth    = errors.New("grid: width out of range")
	ErrHeight   = errors.New("grid: height out of range")
	ErrRowWidth = errors.New("grid: row does not fit map width")
	ErrLayout   = errors.New("grid: invalid layout character")
)

// Map is a fixed-width occupancy grid
// Bit i of rows[j] set means cell (i, j) is solid
// Anything outside [0, width) x [0, len(rows)) is solid, which closes the map on every side
type Map struct {
	rows  []uint64
	width int
}

// defaultRows is the reference 16x8 level
var defaultRows = [...]uint64{
	0b1111111111111111,
	0b1000001010000101,
	0b1011100000110101,
	0b1000111010010001,
	0b1010001011110111,
	0b1011101001100001,
	0b1000100000001101,
	0b1111111111111111,
}

// Default returns the reference 16x8 map
func Default() *Map {
	m, _ := New(16, defaultRows[:])
	return m
}

// New validates and copies the bit rows
func New(width int, rows []uint64) (*Map, error) {
	if width <= 0 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d (1..%d)", ErrWidth, width, MaxWidth)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	if len(rows) > MaxHeight {
		return nil, fmt.Errorf("%w: %d rows (max %d)", ErrHeight, len(rows), MaxHeight)
	}

	var overflow uint64
	if width < MaxWidth {
		overflow = ^uint64(0) << width
	}
	for j, row := range rows {
		if row&overflow != 0 {
			return nil, fmt.Errorf("%w: row %d sets bits beyond column %d", ErrRowWidth, j, width-1)
		}
	}

	m := &Map{
		rows:  make([]uint64, len(rows)),
		width: width,
	}
	copy(m.rows, rows)
	return m, nil
}

// Parse builds a Map from text rows, '#' for wall and '.' or ' ' for passage
// Character i of a line is column i
func Parse(layout []string) (*Map, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(layout[0])
	rows := make([]uint64, len(layout))
	for j, line := range layout {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrRowWidth, j, len(line), width)
		}
		if width > MaxWidth {
			return nil, fmt.Errorf("%w: %d (1..%d)", ErrWidth, width, MaxWidth)
		}
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case WallRune:
				rows[j] |= 1 << uint(i)
			case PassageRune, ' ':
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrLayout, line[i], j, i)
			}
		}
	}
	return New(width, rows)
}

// FromCells builds a Map from a row-major wall matrix
func FromCells(cells [][]bool) (*Map, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(cells[0])
	rows := make([]uint64, len(cells))
	for j, line := range cells {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowWidth, j, len(line), width)
		}
		if width > MaxWidth {
			return nil, fmt.Errorf("%w: %d (1..%d)", ErrWidth, width, MaxWidth)
		}
		for i, wall := range line {
			if wall {
				rows[j] |= 1 << uint(i)
			}
		}
	}
	return New(width, rows)
}

// Width returns the number of columns
func (m *Map) Width() int { return m.width }

// Height returns the number of rows
func (m *Map) Height() int { return len(m.rows) }

// Rows returns a copy of the bit rows
func (m *Map) Rows() []uint64 {
	out := make([]uint64, len(m.rows))
	copy(out, m.rows)
	return out
}

// Cell reports whether integer cell (cx, cy) is solid
func (m *Map) Cell(cx, cy int) bool {
	if cy < 0 || cy >= len(m.rows) || cx < 0 || cx >= m.width {
		return true
	}
	return m.rows[cy]&(1<<uint(cx)) != 0
}

// IsWall reports whether the continuous point (x, y) lies in a solid cell
// Coordinates are floored, so negative sub-cell offsets land in the cell below zero
func (m *Map) IsWall(x, y float32) bool {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return true
	}

	fx, fy := vmath.Floor(x), vmath.Floor(y)
	if fx < 0 || fy < 0 || fx >= float32(m.width) || fy >= float32(len(m.rows)) {
		return true
	}
	return m.Cell(int(fx), int(fy))
}

// Layout renders the map as text rows, the inverse of Parse
func (m *Map) Layout() []string {
	out := make([]string, len(m.rows))
	var sb strings.Builder
	for j := range m.rows {
		sb.Reset()
		for i := 0; i < m.width; i++ {
			if m.Cell(i, j) {
				sb.WriteByte(WallRune)
			} else {
				sb.WriteByte(PassageRune)
			}
		}
		out[j] = sb.String()
	}
	return out
}

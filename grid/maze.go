package grid

import (
	"math/rand"
	"time"
)

// Point is an integer cell coordinate
type Point struct {
	X, Y int
}

// MazeConfig controls Generate
type MazeConfig struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, one route between any two cells) to 1.0 (no dead ends)
	// Openings that would create 2x2 open plazas or free-standing pillars are skipped
	Braiding float64

	Seed int64 // 0 = time based
}

// Maze is a generated map plus the open cell the player should start in
type Maze struct {
	Map   *Map
	Start Point
}

// Generate carves a maze with a recursive backtracker and optional braiding
// Dimensions are rounded down to odd numbers and clamped to [5, MaxWidth-1] x [5, MaxHeight-1]
// The outer ring is always solid
func Generate(cfg MazeConfig) (Maze, error) {
	cols := ensureOdd(clamp(cfg.Width, 5, MaxWidth-1))
	rows := ensureOdd(clamp(cfg.Height, 5, MaxHeight-1))

	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
		for x := range cells[y] {
			cells[y][x] = true
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := Point{X: 1, Y: 1}
	carve(cells, start, rng)

	if cfg.Braiding > 0 {
		braid(cells, cfg.Braiding, rng)
	}

	m, err := FromCells(cells)
	if err != nil {
		return Maze{}, err
	}
	return Maze{Map: m, Start: start}, nil
}

// carve is the recursive backtracker, iterative so deep mazes cannot overflow the stack
func carve(cells [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(cells), len(cells[0])

	stack := []Point{start}
	cells[start.Y][start.X] = false

	dirs := [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	candidates := make([]Point, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave the outer ring intact
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && cells[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		cells[curr.Y+d.Y/2][curr.X+d.X/2] = false
		next := Point{curr.X + d.X, curr.Y + d.Y}
		cells[next.Y][next.X] = false
		stack = append(stack, next)
	}
}

// braid opens a wall next to dead ends with the given probability
func braid(cells [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(cells), len(cells[0])
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	candidates := make([]Point, 0, 4)

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if cells[y][x] {
				continue
			}

			exits := 0
			for _, d := range ortho {
				if !cells[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range ortho {
				wx, wy := x+d.X, y+d.Y
				nx, ny := x+2*d.X, y+2*d.Y
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if cells[wy][wx] && !cells[ny][nx] && canOpen(cells, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				cells[c.Y][c.X] = false
			}
		}
	}
}

// canOpen rejects openings that create a 2x2 plaza or leave an isolated wall pillar
func canOpen(cells [][]bool, x, y int) bool {
	rows, cols := len(cells), len(cells[0])
	open := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return !cells[ty][tx]
	}

	// Plazas
	for _, q := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		ox, oy := x+q[0], y+q[1]
		n := 0
		for _, c := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			cx, cy := ox+c[0], oy+c[1]
			if (cx == x && cy == y) || open(cx, cy) {
				n++
			}
		}
		if n == 4 {
			return false
		}
	}

	// Pillars
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if open(nx, ny) || nx < 0 || nx >= cols || ny < 0 || ny >= rows {
			continue
		}
		links := 0
		for _, d2 := range ortho {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if ax >= 0 && ax < cols && ay >= 0 && ay < rows && cells[ay][ax] {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}

	return true
}

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

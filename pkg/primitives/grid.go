package primitives

import (
	"iter"
	"strings"
)

// Grid is a 2D grid of runes.
//
// It is rectangular by construction and treated as read-only; transformations
// build a new Grid from a Clone.
type Grid struct {
	grid [][]rune
}

func NewGrid(g [][]rune) Grid {
	return Grid{
		grid: g,
	}
}

// ParseGrid builds a grid from input lines, rejecting empty input and rows of
// unequal length.
func ParseGrid(lines []string) (Grid, error) {
	if len(lines) == 0 {
		return Grid{}, NewParseError(0, "", "empty grid")
	}
	g := make([][]rune, len(lines))
	for y, line := range lines {
		g[y] = []rune(line)
		if len(g[y]) == 0 {
			return Grid{}, NewParseError(y+1, line, "empty grid row")
		}
		if len(g[y]) != len(g[0]) {
			return Grid{}, NewParseError(y+1, line, "row has %d cells, expected %d", len(g[y]), len(g[0]))
		}
	}
	return NewGrid(g), nil
}

func (g Grid) Width() int {
	if len(g.grid) == 0 {
		return 0
	}
	return len(g.grid[0])
}

func (g Grid) Height() int {
	return len(g.grid)
}

// At returns the rune at p. p must be inside the grid.
func (g Grid) At(p Point) rune {
	return g.grid[p.Y][p.X]
}

// In reports whether p lies inside the grid.
func (g Grid) In(p Point) bool {
	return p.Y >= 0 && p.Y < g.Height() && p.X >= 0 && p.X < g.Width()
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []rune {
	return append([]rune(nil), g.grid[y]...)
}

// Col returns a copy of column x.
func (g Grid) Col(x int) []rune {
	col := make([]rune, g.Height())
	for y := range g.Height() {
		col[y] = g.grid[y][x]
	}
	return col
}

// Clone returns a deep copy of the underlying cells, suitable for building a
// modified grid with NewGrid.
func (g Grid) Clone() [][]rune {
	c := make([][]rune, len(g.grid))
	for y, row := range g.grid {
		c[y] = append([]rune(nil), row...)
	}
	return c
}

// Cells iterates over every cell in row-major order.
func (g Grid) Cells() iter.Seq2[Point, rune] {
	return func(yield func(Point, rune) bool) {
		for y, row := range g.grid {
			for x, r := range row {
				if !yield(Point{X: x, Y: y}, r) {
					return
				}
			}
		}
	}
}

func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := range g.Height() {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

// Package pipemaze traces the loop of pipes through which the animal ran.
package pipemaze

import (
	"errors"
	"fmt"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// ErrStart is returned when the start tile is missing, repeated, or connected
// to fewer than two neighbours.
var ErrStart = errors.New("pipemaze: invalid start tile")

// ErrBrokenLoop is returned when the pipe path from the start does not close.
var ErrBrokenLoop = errors.New("pipemaze: loop does not close")

// Pipe is the set of directions a tile connects to.
type Pipe uint8

func connects(ds ...primitives.Direction) Pipe {
	var p Pipe
	for _, d := range ds {
		p |= 1 << d
	}
	return p
}

func (p Pipe) Has(d primitives.Direction) bool {
	return p&(1<<d) != 0
}

var pipes = map[rune]Pipe{
	'|': connects(primitives.North, primitives.South),
	'-': connects(primitives.East, primitives.West),
	'L': connects(primitives.North, primitives.East),
	'J': connects(primitives.North, primitives.West),
	'7': connects(primitives.South, primitives.West),
	'F': connects(primitives.South, primitives.East),
	'.': 0,
}

const start = 'S'

type Maze struct {
	grid      primitives.Grid
	start     primitives.Point
	startPipe Pipe
}

func Parse(lines []string) (Maze, error) {
	g, err := primitives.ParseGrid(lines)
	if err != nil {
		return Maze{}, err
	}
	m := Maze{grid: g}
	starts := 0
	for p, r := range g.Cells() {
		if r == start {
			starts++
			m.start = p
			continue
		}
		if _, ok := pipes[r]; !ok {
			return Maze{}, primitives.NewParseError(p.Y+1, lines[p.Y], "invalid tile %q at column %d", r, p.X+1)
		}
	}
	if starts != 1 {
		return Maze{}, fmt.Errorf("%w: found %d start tiles", ErrStart, starts)
	}

	var candidates []primitives.Direction
	for _, d := range primitives.Directions {
		q := m.start.Add(d.Delta())
		if g.In(q) && m.pipeAt(q).Has(d.Opposite()) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) < 2 {
		return Maze{}, fmt.Errorf("%w: start connects to %d neighbours", ErrStart, len(candidates))
	}
	if len(candidates) == 2 {
		m.startPipe = connects(candidates...)
		return m, nil
	}
	// With more than two connecting neighbours the start's shape is the first
	// connection whose walk leads back to the start, plus the side it returns
	// through.
	for _, d := range candidates {
		if _, back, err := m.walk(d); err == nil {
			m.startPipe = connects(d, back)
			return m, nil
		}
	}
	return Maze{}, fmt.Errorf("%w: no connection from the start leads back to it", ErrBrokenLoop)
}

func (m Maze) pipeAt(p primitives.Point) Pipe {
	if p == m.start && m.startPipe != 0 {
		return m.startPipe
	}
	return pipes[m.grid.At(p)]
}

// StartShape returns the pipe tile hidden under the start tile.
func (m Maze) StartShape() rune {
	for r, p := range pipes {
		if p == m.startPipe && r != '.' {
			return r
		}
	}
	return start
}

// Loop returns the tiles of the main loop in walking order, beginning at the
// start tile.
func (m Maze) Loop() ([]primitives.Point, error) {
	for _, d := range primitives.Directions {
		if m.startPipe.Has(d) {
			loop, _, err := m.walk(d)
			return loop, err
		}
	}
	return nil, ErrStart
}

// walk follows the pipes from the start heading first until it is back at the
// start, returning the tiles passed and the side of the start it came back
// through.
func (m Maze) walk(first primitives.Direction) ([]primitives.Point, primitives.Direction, error) {
	loop := []primitives.Point{m.start}
	limit := m.grid.Width() * m.grid.Height()
	cur, dir := m.start, first
	for len(loop) <= limit {
		next := cur.Add(dir.Delta())
		if next == m.start {
			return loop, dir.Opposite(), nil
		}
		if !m.grid.In(next) || !m.pipeAt(next).Has(dir.Opposite()) {
			return nil, 0, fmt.Errorf("%w: dead end at %v", ErrBrokenLoop, next)
		}
		loop = append(loop, next)
		cur = next
		// Leave through the one connection that is not the way in.
		p := m.pipeAt(cur)
		for _, d := range primitives.Directions {
			if p.Has(d) && d != dir.Opposite() {
				dir = d
				break
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: walk does not return to the start", ErrBrokenLoop)
}

// Part1 returns the number of steps to the tile farthest from the start.
func (m Maze) Part1() (int64, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return int64(len(loop) / 2), nil
}

// Part2 counts the tiles enclosed by the loop. Scanning each row from the
// left, a tile is inside when it has crossed an odd number of loop tiles that
// connect north.
func (m Maze) Part2() (int64, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	onLoop := make(map[primitives.Point]bool, len(loop))
	for _, p := range loop {
		onLoop[p] = true
	}

	var enclosed int64
	for y := range m.grid.Height() {
		inside := false
		for x := range m.grid.Width() {
			p := primitives.Point{X: x, Y: y}
			switch {
			case onLoop[p]:
				if m.pipeAt(p).Has(primitives.North) {
					inside = !inside
				}
			case inside:
				enclosed++
			}
		}
	}
	return enclosed, nil
}

// Package dish tilts the parabolic reflector dish and weighs its rocks.
package dish

import (
	"fmt"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

const (
	Round = 'O'
	Cube  = '#'
	Empty = '.'
)

// Dish is the platform layout. Tilting returns a new Dish.
type Dish struct {
	grid primitives.Grid
}

func Parse(lines []string) (Dish, error) {
	g, err := primitives.ParseGrid(lines)
	if err != nil {
		return Dish{}, err
	}
	for p, r := range g.Cells() {
		if r != Round && r != Cube && r != Empty {
			return Dish{}, primitives.NewParseError(p.Y+1, lines[p.Y], "invalid cell %q", r)
		}
	}
	return Dish{grid: g}, nil
}

func (d Dish) String() string {
	return d.grid.Repr()
}

// Tilt rolls every round rock as far as it goes towards dir.
func (d Dish) Tilt(dir primitives.Direction) Dish {
	cells := d.grid.Clone()
	w, h := d.grid.Width(), d.grid.Height()

	// Walk each lane starting from the edge the rocks roll to, keeping the
	// next free slot.
	roll := func(lane, length int, at func(lane, i int) *rune) {
		free := 0
		for i := range length {
			c := at(lane, i)
			switch *c {
			case Cube:
				free = i + 1
			case Round:
				*c = Empty
				*at(lane, free) = Round
				free++
			}
		}
	}

	switch dir {
	case primitives.North:
		for x := range w {
			roll(x, h, func(x, i int) *rune { return &cells[i][x] })
		}
	case primitives.South:
		for x := range w {
			roll(x, h, func(x, i int) *rune { return &cells[h-1-i][x] })
		}
	case primitives.West:
		for y := range h {
			roll(y, w, func(y, i int) *rune { return &cells[y][i] })
		}
	case primitives.East:
		for y := range h {
			roll(y, w, func(y, i int) *rune { return &cells[y][w-1-i] })
		}
	default:
		panic(fmt.Sprintf("invalid direction %v", dir))
	}
	return Dish{grid: primitives.NewGrid(cells)}
}

// Cycle tilts north, west, south and east in turn.
func (d Dish) Cycle() Dish {
	for _, dir := range []primitives.Direction{primitives.North, primitives.West, primitives.South, primitives.East} {
		d = d.Tilt(dir)
	}
	return d
}

// Load is the total load on the north support beams: each round rock weighs
// its distance in rows from the south edge, counting its own row.
func (d Dish) Load() int64 {
	var load int64
	h := d.grid.Height()
	for p, r := range d.grid.Cells() {
		if r == Round {
			load += int64(h - p.Y)
		}
	}
	return load
}

func (d Dish) Part1() int64 {
	return d.Tilt(primitives.North).Load()
}

// Part2 returns the load after n spin cycles. The layouts eventually repeat,
// so only the cycles up to the first repeat plus the remainder are run.
func (d Dish) Part2(n int) int64 {
	seen := map[string]int{}
	var history []Dish
	cur := d
	for i := 0; i < n; i++ {
		key := cur.String()
		if first, ok := seen[key]; ok {
			period := i - first
			return history[first+(n-first)%period].Load()
		}
		seen[key] = i
		history = append(history, cur)
		cur = cur.Cycle()
	}
	return cur.Load()
}

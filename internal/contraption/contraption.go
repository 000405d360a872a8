// Package contraption simulates light beams bouncing through the mirror and
// splitter contraption.
package contraption

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// Element is the content of a tile.
type Element byte

const (
	Empty        Element = '.'
	MirrorBack   Element = '\\'
	MirrorSlash  Element = '/'
	SplitFlat    Element = '-'
	SplitUpright Element = '|'
)

func parseElement(r rune) (Element, bool) {
	switch e := Element(r); e {
	case Empty, MirrorBack, MirrorSlash, SplitFlat, SplitUpright:
		return e, true
	}
	return 0, false
}

var (
	backslash = map[primitives.Direction]primitives.Direction{
		primitives.North: primitives.West,
		primitives.East:  primitives.South,
		primitives.South: primitives.East,
		primitives.West:  primitives.North,
	}
	slash = map[primitives.Direction]primitives.Direction{
		primitives.North: primitives.East,
		primitives.East:  primitives.North,
		primitives.South: primitives.West,
		primitives.West:  primitives.South,
	}
)

// Outgoing returns the directions a beam heading d leaves the element in.
func (e Element) Outgoing(d primitives.Direction) []primitives.Direction {
	switch e {
	case Empty:
		return []primitives.Direction{d}
	case MirrorBack:
		return []primitives.Direction{backslash[d]}
	case MirrorSlash:
		return []primitives.Direction{slash[d]}
	case SplitFlat:
		if d == primitives.North || d == primitives.South {
			return []primitives.Direction{primitives.West, primitives.East}
		}
		return []primitives.Direction{d}
	case SplitUpright:
		if d == primitives.West || d == primitives.East {
			return []primitives.Direction{primitives.North, primitives.South}
		}
		return []primitives.Direction{d}
	}
	panic(fmt.Sprintf("unknown element %q", e))
}

// Beam is a beam front entering the tile at Pos while heading Dir.
type Beam struct {
	Pos primitives.Point
	Dir primitives.Direction
}

type Contraption struct {
	tiles         [][]Element
	width, height int
}

func Parse(lines []string) (Contraption, error) {
	g, err := primitives.ParseGrid(lines)
	if err != nil {
		return Contraption{}, err
	}
	c := Contraption{width: g.Width(), height: g.Height(), tiles: make([][]Element, g.Height())}
	for y := range g.Height() {
		c.tiles[y] = make([]Element, g.Width())
	}
	for p, r := range g.Cells() {
		e, ok := parseElement(r)
		if !ok {
			return Contraption{}, primitives.NewParseError(p.Y+1, lines[p.Y], "invalid tile %q", r)
		}
		c.tiles[p.Y][p.X] = e
	}
	return c, nil
}

func (c Contraption) in(p primitives.Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Energize expands the beam breadth first until no unseen beam state
// remains, and returns the number of tiles any beam passed through.
func (c Contraption) Energize(seed Beam) int {
	if !c.in(seed.Pos) {
		return 0
	}
	known := map[Beam]bool{seed: true}
	energized := map[primitives.Point]bool{seed.Pos: true}
	frontier := []Beam{seed}
	for len(frontier) > 0 {
		var next []Beam
		for _, b := range frontier {
			for _, d := range c.tiles[b.Pos.Y][b.Pos.X].Outgoing(b.Dir) {
				nb := Beam{Pos: b.Pos.Add(d.Delta()), Dir: d}
				if !c.in(nb.Pos) || known[nb] {
					continue
				}
				known[nb] = true
				energized[nb.Pos] = true
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return len(energized)
}

// Seeds returns every beam entering the contraption from its border.
func (c Contraption) Seeds() []Beam {
	var seeds []Beam
	for x := range c.width {
		seeds = append(seeds,
			Beam{Pos: primitives.Point{X: x, Y: 0}, Dir: primitives.South},
			Beam{Pos: primitives.Point{X: x, Y: c.height - 1}, Dir: primitives.North},
		)
	}
	for y := range c.height {
		seeds = append(seeds,
			Beam{Pos: primitives.Point{X: 0, Y: y}, Dir: primitives.East},
			Beam{Pos: primitives.Point{X: c.width - 1, Y: y}, Dir: primitives.West},
		)
	}
	return seeds
}

func (c Contraption) Part1() int64 {
	return int64(c.Energize(Beam{Dir: primitives.East}))
}

// Part2 returns the best energized count over every border seed. Seeds are
// independent runs spread over at most workers goroutines.
func (c Contraption) Part2(ctx context.Context, workers int) (int64, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	var (
		mu   sync.Mutex
		best int
	)
	for _, seed := range c.Seeds() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n := c.Energize(seed)
			mu.Lock()
			best = max(best, n)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(best), nil
}

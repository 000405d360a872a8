// Package galaxies measures distances in the expanding observatory image.
package galaxies

import (
	"fmt"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

type Image struct {
	Galaxies []primitives.Pt[int64]

	// emptyRowsBefore[y] counts galaxy-free rows above row y; likewise for
	// columns.
	emptyRowsBefore, emptyColsBefore []int64
}

func Parse(lines []string) (Image, error) {
	g, err := primitives.ParseGrid(lines)
	if err != nil {
		return Image{}, err
	}
	rowHas := make([]bool, g.Height())
	colHas := make([]bool, g.Width())
	var img Image
	for p, r := range g.Cells() {
		switch r {
		case '#':
			img.Galaxies = append(img.Galaxies, primitives.Pt[int64]{X: int64(p.X), Y: int64(p.Y)})
			rowHas[p.Y] = true
			colHas[p.X] = true
		case '.':
		default:
			return Image{}, primitives.NewParseError(p.Y+1, lines[p.Y], "invalid cell %q", r)
		}
	}
	img.emptyRowsBefore = prefixEmpty(rowHas)
	img.emptyColsBefore = prefixEmpty(colHas)
	return img, nil
}

func prefixEmpty(has []bool) []int64 {
	out := make([]int64, len(has))
	var n int64
	for i, h := range has {
		out[i] = n
		if !h {
			n++
		}
	}
	return out
}

// Expanded returns galaxy positions after every empty row and column has
// been replaced by rate copies of itself.
func (img Image) Expanded(rate int64) []primitives.Pt[int64] {
	out := make([]primitives.Pt[int64], len(img.Galaxies))
	for i, g := range img.Galaxies {
		out[i] = primitives.Pt[int64]{
			X: g.X + (rate-1)*img.emptyColsBefore[g.X],
			Y: g.Y + (rate-1)*img.emptyRowsBefore[g.Y],
		}
	}
	return out
}

// Distances sums the shortest path length between every pair of galaxies.
func (img Image) Distances(rate int64) (int64, error) {
	if rate < 1 {
		return 0, fmt.Errorf("galaxies: expansion rate %d must be at least 1", rate)
	}
	gs := img.Expanded(rate)
	var sum int64
	for i := range gs {
		for j := i + 1; j < len(gs); j++ {
			sum += gs[i].Manhattan(gs[j])
		}
	}
	return sum, nil
}

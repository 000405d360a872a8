// Package almanac follows seeds through the Island Island almanac's chain of
// category maps.
package almanac

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// ErrOddSeeds is returned when the seeds line cannot be read as
// (start, length) pairs.
var ErrOddSeeds = errors.New("almanac: odd number of seed values")

type Interval = primitives.Interval[int64]

// Range maps the Len source values starting at Src onto the values starting at
// Dest.
type Range struct {
	Dest, Src, Len int64
}

func (r Range) source() Interval {
	return primitives.Span(r.Src, r.Len)
}

func (r Range) dest() Interval {
	return primitives.Span(r.Dest, r.Len)
}

// Stage is one category map. Its ranges are sorted by source start and their
// source intervals never overlap, so at most one range matches any value.
type Stage struct {
	From, To string
	Ranges   []Range
}

// Map translates v, passing it through unchanged when no range matches.
func (s Stage) Map(v int64) int64 {
	i, found := slices.BinarySearchFunc(s.Ranges, v, func(r Range, v int64) int {
		switch {
		case r.Src+r.Len <= v:
			return -1
		case r.Src > v:
			return 1
		}
		return 0
	})
	if !found {
		return v
	}
	r := s.Ranges[i]
	return r.Dest + v - r.Src
}

// Preimages returns every value that Map sends to v.
func (s Stage) Preimages(v int64) []int64 {
	var out []int64
	identity := true
	for _, r := range s.Ranges {
		if r.dest().Contains(v) {
			out = append(out, r.Src+v-r.Dest)
		}
		if r.source().Contains(v) {
			identity = false
		}
	}
	if identity {
		out = append(out, v)
	}
	return out
}

// MapInterval translates every value of iv, appending the resulting intervals
// to out. Pieces of iv not covered by any range pass through unchanged.
func (s Stage) MapInterval(iv Interval, out []Interval) []Interval {
	for _, r := range s.Ranges {
		if iv.Empty() {
			return out
		}
		below, rest := iv.SplitAt(r.Src)
		if !below.Empty() {
			out = append(out, below)
		}
		inside, above := rest.SplitAt(r.Src + r.Len)
		if !inside.Empty() {
			out = append(out, inside.Shift(r.Dest-r.Src))
		}
		iv = above
	}
	if !iv.Empty() {
		out = append(out, iv)
	}
	return out
}

type Almanac struct {
	Seeds  []int64
	Stages []Stage
}

// Location pipes a seed through every stage.
func (a Almanac) Location(seed int64) int64 {
	v := seed
	for _, s := range a.Stages {
		v = s.Map(v)
	}
	return v
}

// SeedRanges reads the seeds line as (start, length) pairs.
func (a Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, ErrOddSeeds
	}
	ranges := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, primitives.Span(a.Seeds[i], a.Seeds[i+1]))
	}
	return ranges, nil
}

// SeedsFor walks the stages backwards and returns every seed that ends up at
// location.
func (a Almanac) SeedsFor(location int64) []int64 {
	vals := []int64{location}
	for i := len(a.Stages) - 1; i >= 0; i-- {
		var prev []int64
		for _, v := range vals {
			prev = append(prev, a.Stages[i].Preimages(v)...)
		}
		vals = prev
	}
	slices.Sort(vals)
	return slices.Compact(vals)
}

// Part1 returns the lowest location of any listed seed.
func (a Almanac) Part1() int64 {
	lowest := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		lowest = min(lowest, a.Location(s))
	}
	return lowest
}

// Part2 returns the lowest location of any seed in the seed ranges. The ranges
// are mapped as intervals, split at every range boundary along the way.
func (a Almanac) Part2() (int64, error) {
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	for _, s := range a.Stages {
		var next []Interval
		for _, iv := range ivs {
			next = s.MapInterval(iv, next)
		}
		ivs = next
	}
	if len(ivs) == 0 {
		return 0, fmt.Errorf("almanac: seed ranges are empty")
	}
	lowest := ivs[0].Lo
	for _, iv := range ivs[1:] {
		lowest = min(lowest, iv.Lo)
	}
	return lowest, nil
}

func Parse(lines []string) (Almanac, error) {
	blocks := primitives.Blocks(lines)
	if len(blocks) < 2 {
		return Almanac{}, primitives.NewParseError(0, "", "expected a seeds line followed by at least one map")
	}

	seedLine := blocks[0].Lines[0]
	rest, ok := strings.CutPrefix(seedLine, "seeds:")
	if !ok || len(blocks[0].Lines) != 1 {
		return Almanac{}, primitives.NewParseError(blocks[0].Start+1, seedLine, "expected a single \"seeds:\" line")
	}
	seeds, err := primitives.Ints[int64](rest)
	if err != nil {
		return Almanac{}, primitives.WrapParseError(blocks[0].Start+1, seedLine, err)
	}
	if len(seeds) == 0 {
		return Almanac{}, primitives.NewParseError(blocks[0].Start+1, seedLine, "no seeds listed")
	}

	a := Almanac{Seeds: seeds}
	for _, b := range blocks[1:] {
		s, err := parseStage(b)
		if err != nil {
			return Almanac{}, err
		}
		if n := len(a.Stages); n > 0 && a.Stages[n-1].To != s.From {
			return Almanac{}, primitives.NewParseError(b.Start+1, b.Lines[0], "map starts at %q but the previous one ends at %q", s.From, a.Stages[n-1].To)
		}
		a.Stages = append(a.Stages, s)
	}
	if first := a.Stages[0]; first.From != "seed" {
		return Almanac{}, primitives.NewParseError(blocks[1].Start+1, blocks[1].Lines[0], "first map must start at \"seed\", not %q", first.From)
	}
	if last := a.Stages[len(a.Stages)-1]; last.To != "location" {
		b := blocks[len(blocks)-1]
		return Almanac{}, primitives.NewParseError(b.Start+1, b.Lines[0], "last map must end at \"location\", not %q", last.To)
	}
	return a, nil
}

func parseStage(b primitives.Block) (Stage, error) {
	header := b.Lines[0]
	name, ok := strings.CutSuffix(strings.TrimSpace(header), " map:")
	if !ok {
		return Stage{}, primitives.NewParseError(b.Start+1, header, "expected \"<from>-to-<to> map:\"")
	}
	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return Stage{}, primitives.NewParseError(b.Start+1, header, "expected \"<from>-to-<to> map:\"")
	}

	s := Stage{From: from, To: to}
	for i, line := range b.Lines[1:] {
		lineNo := b.Start + i + 2
		ns, err := primitives.Ints[int64](line)
		if err != nil {
			return Stage{}, primitives.WrapParseError(lineNo, line, err)
		}
		if len(ns) != 3 {
			return Stage{}, primitives.NewParseError(lineNo, line, "expected \"<dest> <src> <len>\", got %d numbers", len(ns))
		}
		if ns[0] < 0 || ns[1] < 0 || ns[2] <= 0 {
			return Stage{}, primitives.NewParseError(lineNo, line, "range values must be non-negative with a positive length")
		}
		s.Ranges = append(s.Ranges, Range{Dest: ns[0], Src: ns[1], Len: ns[2]})
	}

	slices.SortFunc(s.Ranges, func(a, b Range) int {
		return cmp.Compare(a.Src, b.Src)
	})
	for i := 1; i < len(s.Ranges); i++ {
		prev, cur := s.Ranges[i-1], s.Ranges[i]
		if !prev.source().Intersect(cur.source()).Empty() {
			return Stage{}, primitives.NewParseError(b.Start+1, header, "source ranges %v and %v overlap", prev.source(), cur.source())
		}
	}
	return s, nil
}

// Package races counts the ways to win the toy boat races.
package races

import (
	"math"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// Race lasts Time milliseconds; the record to beat is Distance millimetres.
type Race struct {
	Time, Distance int64
}

// Ways returns how many whole-millisecond button hold times beat the record.
// Holding for t covers t*(Time-t), so the winning holds are the integers
// strictly between the roots of t^2 - Time*t + Distance.
func (r Race) Ways() int64 {
	wins := func(t int64) bool { return t*(r.Time-t) > r.Distance }

	disc := r.Time*r.Time - 4*r.Distance
	if disc < 0 {
		return 0
	}
	lo := max(int64((float64(r.Time)-math.Sqrt(float64(disc)))/2), 0)
	for lo > 0 && wins(lo-1) {
		lo--
	}
	half := r.Time / 2
	for lo <= half && !wins(lo) {
		lo++
	}
	if lo > half {
		return 0
	}
	return r.Time - 2*lo + 1
}

// Sheet holds the races in the order they are listed.
type Sheet struct {
	Races []Race

	// text of the two lines, kept for reading them as one race
	times, distances string
}

func parseLine(lines []string, i int, label string) (string, []int64, error) {
	if i >= len(lines) {
		return "", nil, primitives.NewParseError(0, "", "missing %q line", label)
	}
	rest, ok := strings.CutPrefix(lines[i], label)
	if !ok {
		return "", nil, primitives.NewParseError(i+1, lines[i], "expected line to start with %q", label)
	}
	ns, err := primitives.Ints[int64](rest)
	if err != nil {
		return "", nil, primitives.WrapParseError(i+1, lines[i], err)
	}
	for _, n := range ns {
		if n < 0 {
			return "", nil, primitives.NewParseError(i+1, lines[i], "negative value %d", n)
		}
	}
	return rest, ns, nil
}

func Parse(lines []string) (Sheet, error) {
	timeText, times, err := parseLine(lines, 0, "Time:")
	if err != nil {
		return Sheet{}, err
	}
	distText, dists, err := parseLine(lines, 1, "Distance:")
	if err != nil {
		return Sheet{}, err
	}
	if len(times) != len(dists) || len(times) == 0 {
		return Sheet{}, primitives.NewParseError(2, lines[1], "%d times but %d distances", len(times), len(dists))
	}
	s := Sheet{times: timeText, distances: distText}
	for i := range times {
		s.Races = append(s.Races, Race{Time: times[i], Distance: dists[i]})
	}
	return s, nil
}

// Single reads the sheet as one race, ignoring the spaces between digits.
func (s Sheet) Single() (Race, error) {
	t, err := primitives.Int[int64](strings.Join(strings.Fields(s.times), ""))
	if err != nil {
		return Race{}, err
	}
	d, err := primitives.Int[int64](strings.Join(strings.Fields(s.distances), ""))
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Distance: d}, nil
}

func (s Sheet) Part1() int64 {
	var product int64 = 1
	for _, r := range s.Races {
		product *= r.Ways()
	}
	return product
}

func (s Sheet) Part2() (int64, error) {
	r, err := s.Single()
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}

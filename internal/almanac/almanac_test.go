package almanac

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func parseSample(t *testing.T) Almanac {
	t.Helper()
	a, err := Parse(strings.Split(sample, "\n"))
	require.NoError(t, err)
	return a
}

func TestLocation(t *testing.T) {
	a := parseSample(t)
	require.Len(t, a.Stages, 7)
	for seed, want := range map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35} {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
}

func TestStage_Map(t *testing.T) {
	s := parseSample(t).Stages[0]
	for in, want := range map[int64]int64{0: 0, 49: 49, 50: 52, 97: 99, 98: 50, 99: 51, 100: 100} {
		assert.Equal(t, want, s.Map(in), "Map(%d)", in)
	}
}

func TestStage_MapInterval(t *testing.T) {
	s := parseSample(t).Stages[0]
	got := s.MapInterval(Interval{Lo: 40, Hi: 105}, nil)
	assert.Equal(t, []Interval{
		{Lo: 40, Hi: 50},
		{Lo: 52, Hi: 100},
		{Lo: 50, Hi: 52},
		{Lo: 100, Hi: 105},
	}, got)

	var total int64
	for _, iv := range got {
		total += iv.Len()
	}
	assert.EqualValues(t, 65, total, "mapping preserves the number of values")
}

func TestParts(t *testing.T) {
	a := parseSample(t)
	assert.EqualValues(t, 35, a.Part1())
	got, err := a.Part2()
	require.NoError(t, err)
	assert.EqualValues(t, 46, got)
}

// The interval answer agrees with walking locations backwards until one maps
// to a seed inside a seed range.
func TestPart2_MatchesReverseSearch(t *testing.T) {
	a := parseSample(t)
	ranges, err := a.SeedRanges()
	require.NoError(t, err)
	inRanges := func(seed int64) bool {
		return slices.ContainsFunc(ranges, func(iv Interval) bool { return iv.Contains(seed) })
	}

	var found int64 = -1
	for loc := int64(0); loc < 100 && found < 0; loc++ {
		if slices.ContainsFunc(a.SeedsFor(loc), inRanges) {
			found = loc
		}
	}
	want, err := a.Part2()
	require.NoError(t, err)
	assert.Equal(t, want, found)
	assert.Contains(t, a.SeedsFor(46), int64(82))
}

func TestPart2_OddSeeds(t *testing.T) {
	a := parseSample(t)
	a.Seeds = a.Seeds[:3]
	_, err := a.Part2()
	assert.ErrorIs(t, err, ErrOddSeeds)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"missing seeds":   "seed-to-soil map:\n1 2 3\n\nsoil-to-location map:\n1 2 3",
		"bad number":      "seeds: 1 x\n\nseed-to-location map:\n1 2 3",
		"short range":     "seeds: 1\n\nseed-to-location map:\n1 2",
		"bad header":      "seeds: 1\n\nseed to location:\n1 2 3",
		"broken chain":    "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nwater-to-location map:\n1 2 3",
		"wrong end":       "seeds: 1\n\nseed-to-soil map:\n1 2 3",
		"overlap":         "seeds: 1\n\nseed-to-location map:\n0 10 5\n100 12 5",
		"negative length": "seeds: 1\n\nseed-to-location map:\n0 10 -5",
		"seeds only":      "seeds: 1 2",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.Split(input, "\n"))
			var pe *primitives.ParseError
			assert.True(t, errors.As(err, &pe), "got %v", err)
		})
	}
}

package aoc

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aestallon/advent-of-code-2023/internal/almanac"
	"github.com/aestallon/advent-of-code-2023/internal/aplenty"
	"github.com/aestallon/advent-of-code-2023/internal/camelcards"
	"github.com/aestallon/advent-of-code-2023/internal/contraption"
	"github.com/aestallon/advent-of-code-2023/internal/cubes"
	"github.com/aestallon/advent-of-code-2023/internal/dish"
	"github.com/aestallon/advent-of-code-2023/internal/galaxies"
	"github.com/aestallon/advent-of-code-2023/internal/lagoon"
	"github.com/aestallon/advent-of-code-2023/internal/lenses"
	"github.com/aestallon/advent-of-code-2023/internal/mirage"
	"github.com/aestallon/advent-of-code-2023/internal/mirrors"
	"github.com/aestallon/advent-of-code-2023/internal/pipemaze"
	"github.com/aestallon/advent-of-code-2023/internal/races"
	"github.com/aestallon/advent-of-code-2023/internal/schematic"
	"github.com/aestallon/advent-of-code-2023/internal/scratchcards"
	"github.com/aestallon/advent-of-code-2023/internal/springs"
	"github.com/aestallon/advent-of-code-2023/internal/trebuchet"
	"github.com/aestallon/advent-of-code-2023/internal/wasteland"
	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

var modelFields = cmp.AllowUnexported(
	primitives.Grid{},
	schematic.Schematic{},
	camelcards.Game{},
	pipemaze.Maze{},
	galaxies.Image{},
	races.Sheet{},
	mirrors.Pattern{},
	mirrors.Notes{},
	dish.Dish{},
	contraption.Contraption{},
)

// modelDiff parses lines twice and returns the difference between the models.
type modelDiff func(t *testing.T, a, b []string) string

func diffing[M any](parse func([]string) (M, error)) modelDiff {
	return func(t *testing.T, a, b []string) string {
		t.Helper()
		m1, err := parse(a)
		require.NoError(t, err)
		m2, err := parse(b)
		require.NoError(t, err)
		return cmp.Diff(m1, m2, modelFields)
	}
}

var parsers = map[int]modelDiff{
	1:  diffing(trebuchet.Parse),
	2:  diffing(cubes.Parse),
	3:  diffing(schematic.Parse),
	4:  diffing(scratchcards.Parse),
	5:  diffing(almanac.Parse),
	6:  diffing(races.Parse),
	7:  diffing(camelcards.Parse),
	8:  diffing(wasteland.Parse),
	9:  diffing(mirage.Parse),
	10: diffing(pipemaze.Parse),
	11: diffing(galaxies.Parse),
	12: diffing(springs.Parse),
	13: diffing(mirrors.Parse),
	14: diffing(dish.Parse),
	15: diffing(lenses.Parse),
	16: diffing(contraption.Parse),
	18: diffing(lagoon.Parse),
	19: diffing(aplenty.Parse),
}

func TestParse_SameInputSameModel(t *testing.T) {
	require.ElementsMatch(t, Days(), slices.Collect(maps.Keys(parsers)))
	for day, diff := range parsers {
		lines, err := samples().Lines(t.Context(), day)
		require.NoError(t, err)
		t.Run(fmt.Sprintf("day%02d", day), func(t *testing.T) {
			if d := diff(t, lines, slices.Clone(lines)); d != "" {
				t.Errorf("re-parsed model differs (-first +second):\n%s", d)
			}
		})
	}
}

// A changed cell must show up in the diff, so the grid-backed models really
// compare their hidden state.
func TestParse_ChangedGridDiffers(t *testing.T) {
	for _, day := range []int{3, 10, 14, 16} {
		lines, err := samples().Lines(t.Context(), day)
		require.NoError(t, err)
		changed := slices.Clone(lines)
		last := []rune(changed[len(changed)-1])
		if last[0] == '.' {
			last[0] = '|'
		} else {
			last[0] = '.'
		}
		changed[len(changed)-1] = string(last)

		t.Run(fmt.Sprintf("day%02d", day), func(t *testing.T) {
			assert.NotEmpty(t, parsers[day](t, lines, changed))
		})
	}
}

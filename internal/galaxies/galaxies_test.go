package galaxies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"...#......",
	".......#..",
	"#.........",
	"..........",
	"......#...",
	".#........",
	".........#",
	"..........",
	".......#..",
	"#...#.....",
}

func TestDistances(t *testing.T) {
	img, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, img.Galaxies, 9)

	for _, tt := range []struct {
		rate int64
		want int64
	}{
		{rate: 2, want: 374},
		{rate: 10, want: 1030},
		{rate: 100, want: 8410},
	} {
		got, err := img.Distances(tt.rate)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "rate %d", tt.rate)
	}

	_, err = img.Distances(0)
	assert.Error(t, err)
}

func TestExpanded(t *testing.T) {
	img, err := Parse(sample)
	require.NoError(t, err)
	gs := img.Expanded(2)
	// The fifth galaxy at (1, 5) moves to (1, 6); the ninth at (4, 9) to (5, 11).
	assert.EqualValues(t, 1, gs[4].X)
	assert.EqualValues(t, 6, gs[4].Y)
	assert.EqualValues(t, 5, gs[8].X)
	assert.EqualValues(t, 11, gs[8].Y)
	assert.EqualValues(t, 9, gs[4].Manhattan(gs[8]))
}

func TestParse_InvalidCell(t *testing.T) {
	_, err := Parse([]string{"..#", ".x."})
	assert.Error(t, err)
}

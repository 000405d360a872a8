package mirage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"0 3 6 9 12 15",
	"1 3 6 10 15 21",
	"10 13 16 21 30 45",
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		h          History
		next, prev int64
	}{
		{History{0, 3, 6, 9, 12, 15}, 18, -3},
		{History{1, 3, 6, 10, 15, 21}, 28, 0},
		{History{10, 13, 16, 21, 30, 45}, 68, 5},
		{History{7}, 7, 7},
		{History{-1, -2, -3}, -4, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, tt.h.Next(), "Next(%v)", tt.h)
		assert.Equal(t, tt.prev, tt.h.Prev(), "Prev(%v)", tt.h)
	}
}

func TestParts(t *testing.T) {
	r, err := Parse(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 114, r.Part1())
	assert.EqualValues(t, 2, r.Part2())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]string{"1 2 x"})
	assert.Error(t, err)
	_, err = Parse([]string{""})
	assert.Error(t, err)
}

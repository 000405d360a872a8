package schematic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestParts(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 4361, s.Part1())
	assert.EqualValues(t, 467835, s.Part2())
}

func TestNumbersAdjacentToSymbols_ExcludesLoners(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	var values []int64
	for _, n := range s.NumbersAdjacentToSymbols() {
		values = append(values, n.Value)
	}
	assert.NotContains(t, values, int64(114))
	assert.NotContains(t, values, int64(58))
	assert.Len(t, values, 8)
}

func TestGears(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	gears := s.Gears()
	require.Len(t, gears, 2)
	assert.EqualValues(t, 16345, gears[0].Ratio())
	assert.EqualValues(t, 451490, gears[1].Ratio())
}

func TestGears_SingleNumberTouchingTwice(t *testing.T) {
	// The star touches 123 on two diagonals but it is still one number.
	s, err := Parse([]string{
		"123",
		".*.",
		"4..",
	})
	require.NoError(t, err)
	gears := s.Gears()
	require.Len(t, gears, 1)
	assert.EqualValues(t, 492, gears[0].Ratio())

	s, err = Parse([]string{
		"123",
		".*.",
		"...",
	})
	require.NoError(t, err)
	assert.Empty(t, s.Gears())
}

func TestAdjacent(t *testing.T) {
	n := Number{Value: 467, Text: "467", Row: 0, Start: 0, End: 2}
	tests := []struct {
		name string
		sym  Symbol
		want bool
	}{
		{"diagonal below right", Symbol{Rune: '*', Row: 1, Col: 3}, true},
		{"directly below", Symbol{Rune: '*', Row: 1, Col: 1}, true},
		{"two columns away", Symbol{Rune: '*', Row: 1, Col: 4}, false},
		{"two rows away", Symbol{Rune: '*', Row: 2, Col: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Adjacent(n, tt.sym))
			assert.Equal(t, tt.want, Adjacent(tt.sym, n))
		})
	}
	assert.False(t, Adjacent(n, n), "a token is not adjacent to itself")
}

func TestString_RoundTrip(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(sample, "\n"), s.String())
}

func TestParse_Ragged(t *testing.T) {
	_, err := Parse([]string{"467..", "..."})
	assert.Error(t, err)
	_, err = Parse(nil)
	assert.Error(t, err)
}

func TestNumberAtRowEnd(t *testing.T) {
	s, err := Parse([]string{"..12", "34#."})
	require.NoError(t, err)
	assert.EqualValues(t, 46, s.Part1())
	assert.Len(t, s.Tokens(), 3)
}

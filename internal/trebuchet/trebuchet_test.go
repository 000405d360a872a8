package trebuchet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sample1 = []string{"1abc2", "pqr3stu8vwx", "a1b2c3d4e5f", "treb7uchet"}
	sample2 = []string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
	}
)

func TestValue(t *testing.T) {
	tests := []struct {
		line   string
		words  bool
		want   int
		wantOK bool
	}{
		{line: "treb7uchet", want: 77, wantOK: true},
		{line: "pqr3stu8vwx", want: 38, wantOK: true},
		{line: "eightwothree", wantOK: false},
		{line: "eightwothree", words: true, want: 83, wantOK: true},
		{line: "zoneight", words: true, want: 18, wantOK: true},
		{line: "xtwone3four", words: true, want: 24, wantOK: true},
		{line: "", words: true, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Value(tt.line, tt.words)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParts(t *testing.T) {
	d, err := Parse(sample1)
	require.NoError(t, err)
	assert.EqualValues(t, 142, d.Part1())

	d, err = Parse(sample2)
	require.NoError(t, err)
	assert.EqualValues(t, 209, d.Part1(), "lines without numeric digits are skipped")
	assert.EqualValues(t, 281, d.Part2())
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)
	assert.Error(t, err)
}

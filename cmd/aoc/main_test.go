package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/aestallon/advent-of-code-2023"
	"github.com/aestallon/advent-of-code-2023/internal/source"
)

func TestParseDays(t *testing.T) {
	days, err := parseDays([]string{"3", "19"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 19}, days)

	days, err = parseDays(nil)
	require.NoError(t, err)
	assert.Empty(t, days)

	_, err = parseDays([]string{"x"})
	assert.Error(t, err)
	_, err = parseDays([]string{"17"})
	assert.ErrorIs(t, err, aoc.ErrUnknownDay)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	ok := printResult(&buf, aoc.Result{Day: 6, Part: aoc.Part2, Answer: 71503, Duration: 3 * time.Millisecond})
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Day 06")
	assert.Contains(t, buf.String(), "71503")

	buf.Reset()
	ok = printResult(&buf, aoc.Result{Day: 8, Part: aoc.Part1, Err: errors.New("goal unreachable")})
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "goal unreachable")
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"list"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.ExecuteContext(t.Context()))
	assert.Contains(t, buf.String(), "Aplenty")
	assert.NotContains(t, buf.String(), "Day 17")
}

func TestCollectDays(t *testing.T) {
	runner := aoc.CreateRunner(source.Static{
		6: {"Time:      7  15   30", "Distance:  9  40  200"},
		9: {"0 3 6 9 12 15", "1 3 6 10 15 21", "10 13 16 21 30 45"},
	}, aoc.DefaultOptions(), nil)
	runner.Concurrency = 2

	var buf bytes.Buffer
	require.NoError(t, collectDays(t.Context(), &buf, runner, []int{9, 6}))
	out := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, out, 4)
	assert.Contains(t, out[0], "Day 06")
	assert.Contains(t, out[1], "71503")
	assert.Contains(t, out[2], "Day 09")
	assert.Contains(t, out[2], "114")

	buf.Reset()
	assert.ErrorIs(t, collectDays(t.Context(), &buf, runner, []int{1}), errFailed)
	assert.Contains(t, buf.String(), "Day 01")
}

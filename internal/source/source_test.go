package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\r\nb\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)

	lines, err = ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "input07.txt"), []byte("32T3K 765\nT55J5 684\n"), 0o644))

	d := Dir{Root: root}
	assert.Equal(t, filepath.Join(root, "input07.txt"), d.Path(7))

	lines, err := d.Lines(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"32T3K 765", "T55J5 684"}, lines)

	_, err = d.Lines(t.Context(), 8)
	assert.ErrorIs(t, err, ErrNoInput)

	custom := Dir{Root: root, Pattern: "day%d.in"}
	assert.Equal(t, filepath.Join(root, "day8.in"), custom.Path(8))
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 3 6 9 12 15\n"), 0o644))

	for _, day := range []int{1, 9} {
		lines, err := File(path).Lines(t.Context(), day)
		require.NoError(t, err)
		assert.Equal(t, []string{"0 3 6 9 12 15"}, lines)
	}

	_, err := File(path+".missing").Lines(t.Context(), 1)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := File("whatever").Lines(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic(t *testing.T) {
	s := Static{15: {"HASH"}}
	lines, err := s.Lines(t.Context(), 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"HASH"}, lines)

	_, err = s.Lines(t.Context(), 16)
	assert.ErrorIs(t, err, ErrNoInput)
}

type fakeRows struct {
	rows [][]bigquery.Value
	err  error
}

func (f *fakeRows) Next(dst any) error {
	if len(f.rows) == 0 {
		if f.err != nil {
			return f.err
		}
		return iterator.Done
	}
	*dst.(*[]bigquery.Value) = f.rows[0]
	f.rows = f.rows[1:]
	return nil
}

func TestReadRows(t *testing.T) {
	lines, err := readRows(&fakeRows{rows: [][]bigquery.Value{{"seeds: 79 14"}, {nil}, {"seed-to-soil map:"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"seeds: 79 14", "", "seed-to-soil map:"}, lines)
}

func TestReadRows_Errors(t *testing.T) {
	boom := errors.New("boom")
	tests := map[string]*fakeRows{
		"iterator error": {err: boom},
		"wrong type":     {rows: [][]bigquery.Value{{int64(3)}}},
		"extra column":   {rows: [][]bigquery.Value{{"a", "b"}}},
	}
	for name, rows := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := readRows(rows)
			assert.Error(t, err)
		})
	}
	_, err := readRows(&fakeRows{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestBigQuery_Query(t *testing.T) {
	b := BigQuery{Project: "aoc-inputs", Table: "puzzles.lines"}
	assert.Equal(t, "SELECT line FROM `aoc-inputs.puzzles.lines` WHERE day = @day AND input_key = @key ORDER BY line_no", b.query())
}

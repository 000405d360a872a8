// Package source loads puzzle inputs as lines of text.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when no input exists for the requested day.
var ErrNoInput = errors.New("source: no input")

// Loader provides the input lines of a day.
type Loader interface {
	Lines(ctx context.Context, day int) ([]string, error)
}

// DefaultPattern names the input file of a day inside a Dir.
const DefaultPattern = "input%02d.txt"

// Dir loads inputs from files named after Pattern in Root.
type Dir struct {
	Root    string
	Pattern string
}

func (d Dir) Path(day int) string {
	pattern := d.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return filepath.Join(d.Root, fmt.Sprintf(pattern, day))
}

func (d Dir) Lines(ctx context.Context, day int) ([]string, error) {
	return readFile(ctx, d.Path(day), day)
}

// File loads the same file whatever the day.
type File string

func (f File) Lines(ctx context.Context, day int) ([]string, error) {
	return readFile(ctx, string(f), day)
}

func readFile(ctx context.Context, path string, day int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w for day %d: %s", ErrNoInput, day, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// Static serves inputs held in memory, keyed by day.
type Static map[int][]string

func (s Static) Lines(_ context.Context, day int) ([]string, error) {
	lines, ok := s[day]
	if !ok {
		return nil, fmt.Errorf("%w for day %d", ErrNoInput, day)
	}
	return lines, nil
}

const maxLine = 1 << 20

// ReadLines splits r into lines, dropping the line terminators including a
// trailing carriage return.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

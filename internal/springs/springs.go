// Package springs counts the possible arrangements of damaged hot springs.
package springs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

const (
	Operational = '.'
	Damaged     = '#'
	Unknown     = '?'
)

// MaxRun is the longest run length a row may list.
const MaxRun = 255

// Row is a condition record: the cells and the lengths of the damaged runs.
type Row struct {
	Cells string
	Runs  []int
}

// ParseRow parses "???.### 1,1,3".
func ParseRow(line string) (Row, error) {
	cells, runText, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Row{}, fmt.Errorf("expected \"<cells> <runs>\"")
	}
	if strings.Trim(cells, ".#?") != "" {
		return Row{}, fmt.Errorf("cells %q may only contain '.', '#' and '?'", cells)
	}
	r := Row{Cells: cells}
	for _, f := range strings.Split(runText, ",") {
		n, err := primitives.Int[int](f)
		if err != nil {
			return Row{}, fmt.Errorf("run length: %w", err)
		}
		if n < 1 || n > MaxRun {
			return Row{}, fmt.Errorf("run length %d out of range [1, %d]", n, MaxRun)
		}
		r.Runs = append(r.Runs, n)
	}
	return r, nil
}

// Unfold repeats the cells n times joined by unknown cells, and the runs n
// times.
func (r Row) Unfold(n int) Row {
	cells := make([]string, n)
	runs := make([]int, 0, n*len(r.Runs))
	for i := range n {
		cells[i] = r.Cells
		runs = append(runs, r.Runs...)
	}
	return Row{Cells: strings.Join(cells, string(Unknown)), Runs: runs}
}

func (r Row) String() string {
	runs := make([]string, len(r.Runs))
	for i, n := range r.Runs {
		runs[i] = strconv.Itoa(n)
	}
	return r.Cells + " " + strings.Join(runs, ",")
}

// encodedRuns packs the runs one byte each, so that run suffixes are plain
// substrings usable as memo keys.
func (r Row) encodedRuns() string {
	b := make([]byte, len(r.Runs))
	for i, n := range r.Runs {
		b[i] = byte(n)
	}
	return string(b)
}

type Records struct {
	Rows []Row
}

func Parse(lines []string) (Records, error) {
	var rec Records
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRow(line)
		if err != nil {
			return Records{}, primitives.WrapParseError(i+1, line, err)
		}
		rec.Rows = append(rec.Rows, r)
	}
	if len(rec.Rows) == 0 {
		return Records{}, primitives.NewParseError(0, "", "no condition records")
	}
	return rec, nil
}

// Part1 sums the arrangement counts of the rows as listed.
func (rec Records) Part1() int64 {
	c := NewCounter()
	var sum int64
	for _, r := range rec.Rows {
		sum += c.Arrangements(r)
	}
	return sum
}

// Part2 sums the arrangement counts of the rows unfolded n times.
func (rec Records) Part2(n int) int64 {
	c := NewCounter()
	var sum int64
	for _, r := range rec.Rows {
		sum += c.Arrangements(r.Unfold(n))
	}
	return sum
}

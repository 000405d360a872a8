// Package mirrors finds the lines of reflection in the valley of mirrors.
package mirrors

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

var (
	ErrNoReflection = errors.New("mirrors: pattern has no line of reflection")
	ErrNoSmudge     = errors.New("mirrors: no single smudge yields a new reflection")
)

const (
	ash  = '.'
	rock = '#'
)

// Reflection is a mirror line after Index columns (Vertical) or rows.
type Reflection struct {
	Vertical bool
	Index    int
}

// Value is the summary contribution: the column count for a vertical line,
// 100 times the row count for a horizontal one.
func (r Reflection) Value() int64 {
	if r.Vertical {
		return int64(r.Index)
	}
	return 100 * int64(r.Index)
}

// Pattern is one rectangular note of ash and rocks.
type Pattern struct {
	grid primitives.Grid
}

func NewPattern(g primitives.Grid) Pattern {
	return Pattern{grid: g}
}

func (p Pattern) String() string {
	return p.grid.Repr()
}

func (p Pattern) rows() []string {
	rows := make([]string, p.grid.Height())
	for y := range rows {
		rows[y] = string(p.grid.Row(y))
	}
	return rows
}

func (p Pattern) cols() []string {
	cols := make([]string, p.grid.Width())
	for x := range cols {
		cols[x] = string(p.grid.Col(x))
	}
	return cols
}

// mirrorLines returns every index i such that lines[:i] mirrors lines[i:]
// over the overlapping part.
func mirrorLines(lines []string) []int {
	var out []int
	for i := 1; i < len(lines); i++ {
		ok := true
		for a, b := i-1, i; a >= 0 && b < len(lines); a, b = a-1, b+1 {
			if lines[a] != lines[b] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Reflections lists every line of reflection, vertical ones first.
func (p Pattern) Reflections() []Reflection {
	var out []Reflection
	for _, i := range mirrorLines(p.cols()) {
		out = append(out, Reflection{Vertical: true, Index: i})
	}
	for _, i := range mirrorLines(p.rows()) {
		out = append(out, Reflection{Index: i})
	}
	return out
}

// Flipped returns a copy of the pattern with the cell at (x, y) swapped
// between ash and rock.
func (p Pattern) Flipped(x, y int) Pattern {
	cells := p.grid.Clone()
	if cells[y][x] == ash {
		cells[y][x] = rock
	} else {
		cells[y][x] = ash
	}
	return Pattern{grid: primitives.NewGrid(cells)}
}

// FixSmudge tries every single-cell flip and returns the first reflection of
// a flipped copy that the original pattern does not have.
func (p Pattern) FixSmudge() (Reflection, error) {
	original := p.Reflections()
	for y := range p.grid.Height() {
		for x := range p.grid.Width() {
			for _, r := range p.Flipped(x, y).Reflections() {
				if !slices.Contains(original, r) {
					return r, nil
				}
			}
		}
	}
	return Reflection{}, ErrNoSmudge
}

type Notes struct {
	Patterns []Pattern

	// starts[i] is the 1-based input line of pattern i, for error reports.
	starts []int
}

func Parse(lines []string) (Notes, error) {
	var n Notes
	for _, b := range primitives.Blocks(lines) {
		g, err := primitives.ParseGrid(b.Lines)
		if err != nil {
			var pe *primitives.ParseError
			if errors.As(err, &pe) && pe.Line > 0 {
				pe.Line += b.Start
			}
			return Notes{}, err
		}
		for i, row := range b.Lines {
			if strings.Trim(row, ".#") != "" {
				return Notes{}, primitives.NewParseError(b.Start+i+1, row, "pattern may only contain '.' and '#'")
			}
		}
		n.Patterns = append(n.Patterns, NewPattern(g))
		n.starts = append(n.starts, b.Start+1)
	}
	if len(n.Patterns) == 0 {
		return Notes{}, primitives.NewParseError(0, "", "no patterns")
	}
	return n, nil
}

func (n Notes) Part1() (int64, error) {
	var sum int64
	for i, p := range n.Patterns {
		rs := p.Reflections()
		if len(rs) == 0 {
			return 0, fmt.Errorf("pattern at line %d: %w", n.starts[i], ErrNoReflection)
		}
		sum += rs[0].Value()
	}
	return sum, nil
}

func (n Notes) Part2() (int64, error) {
	var sum int64
	for i, p := range n.Patterns {
		r, err := p.FixSmudge()
		if err != nil {
			return 0, fmt.Errorf("pattern at line %d: %w", n.starts[i], err)
		}
		sum += r.Value()
	}
	return sum, nil
}

// Package mirage extrapolates the OASIS sensor histories.
package mirage

import (
	"slices"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// History is one sensor's sequence of readings.
type History []int64

func differences(h History) History {
	d := make(History, len(h)-1)
	for i := range d {
		d[i] = h[i+1] - h[i]
	}
	return d
}

func allZero(h History) bool {
	for _, v := range h {
		if v != 0 {
			return false
		}
	}
	return true
}

// Next extrapolates the value following the history.
func (h History) Next() int64 {
	if len(h) == 0 || allZero(h) {
		return 0
	}
	return h[len(h)-1] + differences(h).Next()
}

// Prev extrapolates the value preceding the history.
func (h History) Prev() int64 {
	r := slices.Clone(h)
	slices.Reverse(r)
	return r.Next()
}

type Report struct {
	Histories []History
}

func Parse(lines []string) (Report, error) {
	var r Report
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := primitives.Ints[int64](line)
		if err != nil {
			return Report{}, primitives.WrapParseError(i+1, line, err)
		}
		r.Histories = append(r.Histories, h)
	}
	if len(r.Histories) == 0 {
		return Report{}, primitives.NewParseError(0, "", "no histories")
	}
	return r, nil
}

func (r Report) Part1() int64 {
	var sum int64
	for _, h := range r.Histories {
		sum += h.Next()
	}
	return sum
}

func (r Report) Part2() int64 {
	var sum int64
	for _, h := range r.Histories {
		sum += h.Prev()
	}
	return sum
}

// Package trebuchet recovers calibration values from an amended calibration
// document.
package trebuchet

import (
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Document is the list of calibration lines.
type Document struct {
	Lines []string
}

func Parse(lines []string) (Document, error) {
	if len(lines) == 0 {
		return Document{}, primitives.NewParseError(0, "", "empty calibration document")
	}
	return Document{Lines: append([]string(nil), lines...)}, nil
}

// digitAt returns the digit starting at index i of s. When words is set the
// spelled-out digits count as well.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Value returns the two-digit calibration value of line, formed from its first
// and last digit. ok is false when the line has no digit at all.
func Value(line string, words bool) (v int, ok bool) {
	first, last := -1, -1
	for i := range len(line) {
		d, found := digitAt(line, i, words)
		if !found {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}

func (d Document) sum(words bool) int64 {
	var total int64
	for _, line := range d.Lines {
		if v, ok := Value(line, words); ok {
			total += int64(v)
		}
	}
	return total
}

// Part1 sums calibration values using numeric digits only.
func (d Document) Part1() int64 {
	return d.sum(false)
}

// Part2 also accepts digits spelled out with letters. Spellings may overlap,
// so "eightwo" reads as 8 followed by 2.
func (d Document) Part2() int64 {
	return d.sum(true)
}

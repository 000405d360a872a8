// Package scratchcards scores the Elf's pile of scratchcards.
package scratchcards

import (
	"fmt"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// Numbers on a card are bounded so the number lists can be bitmaps.
const maxNumber = 999

// maxWinning bounds the distinct winning numbers so Points fits in an int64.
const maxWinning = 63

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the distinct numbers you have that are winning numbers. A
// number listed twice among yours still matches once.
func (c Card) Matches() int {
	// Both lists are range checked at parse time.
	win, _ := primitives.SetOf(0, maxNumber, c.Winning...)
	have, _ := primitives.SetOf(0, maxNumber, c.Have...)
	return win.Intersection(have).Count()
}

// Points is 1 for the first match, doubled for every further match.
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseNumbers(s string) ([]int, error) {
	ns, err := primitives.Ints[int](s)
	if err != nil {
		return nil, err
	}
	for _, n := range ns {
		if n < 0 || n > maxNumber {
			return nil, fmt.Errorf("number %d out of range [0, %d]", n, maxNumber)
		}
	}
	return ns, nil
}

// ParseCard parses "Card 1: 41 48 83 | 83 86 6".
func ParseCard(line string) (Card, error) {
	header, content, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' after card header")
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("card header %q is not of the form \"Card <id>\"", header)
	}
	id, err := primitives.Int[int](fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("card id: %w", err)
	}
	winText, haveText, ok := strings.Cut(content, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing '|' between number lists", id)
	}
	c := Card{ID: id}
	if c.Winning, err = parseNumbers(winText); err != nil {
		return Card{}, fmt.Errorf("card %d winning numbers: %w", id, err)
	}
	if c.Have, err = parseNumbers(haveText); err != nil {
		return Card{}, fmt.Errorf("card %d numbers: %w", id, err)
	}
	if win, _ := primitives.SetOf(0, maxNumber, c.Winning...); win.Count() > maxWinning {
		return Card{}, fmt.Errorf("card %d has %d winning numbers, at most %d are supported", id, win.Count(), maxWinning)
	}
	return c, nil
}

type Pile struct {
	Cards []Card
}

func Parse(lines []string) (Pile, error) {
	var p Pile
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return Pile{}, primitives.WrapParseError(i+1, line, err)
		}
		p.Cards = append(p.Cards, c)
	}
	if len(p.Cards) == 0 {
		return Pile{}, primitives.NewParseError(0, "", "no scratchcards")
	}
	return p, nil
}

func (p Pile) Part1() int64 {
	var sum int64
	for _, c := range p.Cards {
		sum += c.Points()
	}
	return sum
}

// Part2 counts cards after every card with m matches wins one copy of each of
// the next m cards. Copies never run past the end of the pile.
func (p Pile) Part2() int64 {
	copies := make([]int64, len(p.Cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range p.Cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}

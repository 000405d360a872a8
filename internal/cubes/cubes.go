// Package cubes evaluates the cube drawing games played with the Elf on Snow
// Island.
package cubes

import (
	"fmt"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// Draw is one handful of cubes revealed from the bag.
type Draw struct {
	Red, Green, Blue int
}

// Fits reports whether d could have been drawn from a bag holding bound.
func (d Draw) Fits(bound Draw) bool {
	return d.Red <= bound.Red && d.Green <= bound.Green && d.Blue <= bound.Blue
}

// Power is the product of the three colour counts.
func (d Draw) Power() int64 {
	return int64(d.Red) * int64(d.Green) * int64(d.Blue)
}

// DefaultBound is the bag content questioned by the Elf.
var DefaultBound = Draw{Red: 12, Green: 13, Blue: 14}

type Game struct {
	ID    int
	Draws []Draw
}

// Possible reports whether every draw of the game fits bound.
func (g Game) Possible(bound Draw) bool {
	for _, d := range g.Draws {
		if !d.Fits(bound) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes of each colour that make the game possible.
func (g Game) Minimum() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame parses a line of the form "Game 1: 3 blue, 4 red; 1 red".
func ParseGame(line string) (Game, error) {
	header, content, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' after game header")
	}
	name, idText, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || name != "Game" {
		return Game{}, fmt.Errorf("game header %q is not of the form \"Game <id>\"", header)
	}
	id, err := primitives.Int[int](idText)
	if err != nil {
		return Game{}, fmt.Errorf("game id: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return Game{}, fmt.Errorf("game %d has no draws", id)
	}

	g := Game{ID: id}
	for _, drawText := range strings.Split(content, ";") {
		d, err := parseDraw(drawText)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func parseDraw(s string) (Draw, error) {
	var d Draw
	for _, part := range strings.Split(s, ",") {
		countText, colour, ok := strings.Cut(strings.TrimSpace(part), " ")
		if !ok {
			return Draw{}, fmt.Errorf("cube count %q is not of the form \"<n> <colour>\"", part)
		}
		n, err := primitives.Int[int](countText)
		if err != nil {
			return Draw{}, err
		}
		if n < 0 {
			return Draw{}, fmt.Errorf("negative cube count %d", n)
		}
		switch colour {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Draw{}, fmt.Errorf("unknown colour %q", colour)
		}
	}
	return d, nil
}

// Record is the full list of games played.
type Record struct {
	Games []Game
}

func Parse(lines []string) (Record, error) {
	var r Record
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return Record{}, primitives.WrapParseError(i+1, line, err)
		}
		r.Games = append(r.Games, g)
	}
	if len(r.Games) == 0 {
		return Record{}, primitives.NewParseError(0, "", "no games recorded")
	}
	return r, nil
}

// Part1 sums the IDs of games that are possible with the given bag content.
func (r Record) Part1(bound Draw) int64 {
	var sum int64
	for _, g := range r.Games {
		if g.Possible(bound) {
			sum += int64(g.ID)
		}
	}
	return sum
}

// Part2 sums the power of the minimum cube set of every game.
func (r Record) Part2() int64 {
	var sum int64
	for _, g := range r.Games {
		sum += g.Minimum().Power()
	}
	return sum
}

// Package aoc solves the Advent of Code 2023 puzzles and runs them over
// inputs from a source.
package aoc

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"slices"

	"github.com/aestallon/advent-of-code-2023/internal/cubes"
)

// ErrUnknownDay is returned for a day without a registered puzzle.
var ErrUnknownDay = errors.New("aoc: unknown day")

// Part is an enum for the two halves of a puzzle, either 'Part1' or 'Part2'.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{Part1, Part2}

func (p Part) String() string {
	return fmt.Sprintf("part %d", int(p))
}

// Answer computes the answer of one part of an already parsed input.
type Answer func(ctx context.Context) (int64, error)

// Solution holds the answers of a parsed input.
type Solution struct {
	Part1 Answer
	Part2 Answer
}

func (s Solution) Part(p Part) (Answer, error) {
	switch p {
	case Part1:
		return s.Part1, nil
	case Part2:
		return s.Part2, nil
	}
	return nil, fmt.Errorf("aoc: invalid part %d", int(p))
}

// Options carry the tunable parameters of the puzzles that have any.
type Options struct {
	CubeBound cubes.Draw
	// ExpansionRates are the galaxy expansion rates of part 1 and part 2.
	ExpansionRates     [2]int64
	SpinCycles         int
	UnfoldFactor       int
	ContraptionWorkers int
}

func DefaultOptions() Options {
	return Options{
		CubeBound:          cubes.DefaultBound,
		ExpansionRates:     [2]int64{2, 1_000_000},
		SpinCycles:         1_000_000_000,
		UnfoldFactor:       5,
		ContraptionWorkers: runtime.GOMAXPROCS(0),
	}
}

type Puzzle struct {
	Day   int
	Title string
	// Solve parses lines once; the returned answers share the parsed model.
	Solve func(lines []string, opts Options) (Solution, error)
}

var registry = map[int]Puzzle{}

func register(p Puzzle) {
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("aoc: day %d registered twice", p.Day))
	}
	registry[p.Day] = p
}

func Lookup(day int) (Puzzle, error) {
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return p, nil
}

// Days returns the registered days in ascending order.
func Days() []int {
	return slices.Sorted(maps.Keys(registry))
}

// solver adapts a parser and the answer builder of its model to Puzzle.Solve.
func solver[M any](parse func([]string) (M, error), answers func(M, Options) Solution) func([]string, Options) (Solution, error) {
	return func(lines []string, opts Options) (Solution, error) {
		m, err := parse(lines)
		if err != nil {
			return Solution{}, err
		}
		return answers(m, opts), nil
	}
}

func value(f func() int64) Answer {
	return func(ctx context.Context) (int64, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return f(), nil
	}
}

func fallible(f func() (int64, error)) Answer {
	return func(ctx context.Context) (int64, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return f()
	}
}

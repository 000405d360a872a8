package aoc

import (
	"context"

	"github.com/aestallon/advent-of-code-2023/internal/almanac"
	"github.com/aestallon/advent-of-code-2023/internal/aplenty"
	"github.com/aestallon/advent-of-code-2023/internal/camelcards"
	"github.com/aestallon/advent-of-code-2023/internal/contraption"
	"github.com/aestallon/advent-of-code-2023/internal/cubes"
	"github.com/aestallon/advent-of-code-2023/internal/dish"
	"github.com/aestallon/advent-of-code-2023/internal/galaxies"
	"github.com/aestallon/advent-of-code-2023/internal/lagoon"
	"github.com/aestallon/advent-of-code-2023/internal/lenses"
	"github.com/aestallon/advent-of-code-2023/internal/mirage"
	"github.com/aestallon/advent-of-code-2023/internal/mirrors"
	"github.com/aestallon/advent-of-code-2023/internal/pipemaze"
	"github.com/aestallon/advent-of-code-2023/internal/races"
	"github.com/aestallon/advent-of-code-2023/internal/schematic"
	"github.com/aestallon/advent-of-code-2023/internal/scratchcards"
	"github.com/aestallon/advent-of-code-2023/internal/springs"
	"github.com/aestallon/advent-of-code-2023/internal/trebuchet"
	"github.com/aestallon/advent-of-code-2023/internal/wasteland"
)

func init() {
	register(Puzzle{Day: 1, Title: "Trebuchet?!", Solve: solver(trebuchet.Parse, func(d trebuchet.Document, _ Options) Solution {
		return Solution{Part1: value(d.Part1), Part2: value(d.Part2)}
	})})
	register(Puzzle{Day: 2, Title: "Cube Conundrum", Solve: solver(cubes.Parse, func(r cubes.Record, opts Options) Solution {
		return Solution{
			Part1: value(func() int64 { return r.Part1(opts.CubeBound) }),
			Part2: value(r.Part2),
		}
	})})
	register(Puzzle{Day: 3, Title: "Gear Ratios", Solve: solver(schematic.Parse, func(s schematic.Schematic, _ Options) Solution {
		return Solution{Part1: value(s.Part1), Part2: value(s.Part2)}
	})})
	register(Puzzle{Day: 4, Title: "Scratchcards", Solve: solver(scratchcards.Parse, func(p scratchcards.Pile, _ Options) Solution {
		return Solution{Part1: value(p.Part1), Part2: value(p.Part2)}
	})})
	register(Puzzle{Day: 5, Title: "If You Give A Seed A Fertilizer", Solve: solver(almanac.Parse, func(a almanac.Almanac, _ Options) Solution {
		return Solution{Part1: value(a.Part1), Part2: fallible(a.Part2)}
	})})
	register(Puzzle{Day: 6, Title: "Wait For It", Solve: solver(races.Parse, func(s races.Sheet, _ Options) Solution {
		return Solution{Part1: value(s.Part1), Part2: fallible(s.Part2)}
	})})
	register(Puzzle{Day: 7, Title: "Camel Cards", Solve: solver(camelcards.Parse, func(g camelcards.Game, _ Options) Solution {
		return Solution{Part1: value(g.Part1), Part2: fallible(g.Part2)}
	})})
	register(Puzzle{Day: 8, Title: "Haunted Wasteland", Solve: solver(wasteland.Parse, func(m wasteland.Map, _ Options) Solution {
		return Solution{Part1: fallible(m.Part1), Part2: fallible(m.Part2)}
	})})
	register(Puzzle{Day: 9, Title: "Mirage Maintenance", Solve: solver(mirage.Parse, func(r mirage.Report, _ Options) Solution {
		return Solution{Part1: value(r.Part1), Part2: value(r.Part2)}
	})})
	register(Puzzle{Day: 10, Title: "Pipe Maze", Solve: solver(pipemaze.Parse, func(m pipemaze.Maze, _ Options) Solution {
		return Solution{Part1: fallible(m.Part1), Part2: fallible(m.Part2)}
	})})
	register(Puzzle{Day: 11, Title: "Cosmic Expansion", Solve: solver(galaxies.Parse, func(img galaxies.Image, opts Options) Solution {
		return Solution{
			Part1: fallible(func() (int64, error) { return img.Distances(opts.ExpansionRates[0]) }),
			Part2: fallible(func() (int64, error) { return img.Distances(opts.ExpansionRates[1]) }),
		}
	})})
	register(Puzzle{Day: 12, Title: "Hot Springs", Solve: solver(springs.Parse, func(rec springs.Records, opts Options) Solution {
		return Solution{
			Part1: value(rec.Part1),
			Part2: value(func() int64 { return rec.Part2(opts.UnfoldFactor) }),
		}
	})})
	register(Puzzle{Day: 13, Title: "Point of Incidence", Solve: solver(mirrors.Parse, func(n mirrors.Notes, _ Options) Solution {
		return Solution{Part1: fallible(n.Part1), Part2: fallible(n.Part2)}
	})})
	register(Puzzle{Day: 14, Title: "Parabolic Reflector Dish", Solve: solver(dish.Parse, func(d dish.Dish, opts Options) Solution {
		return Solution{
			Part1: value(d.Part1),
			Part2: value(func() int64 { return d.Part2(opts.SpinCycles) }),
		}
	})})
	register(Puzzle{Day: 15, Title: "Lens Library", Solve: solver(lenses.Parse, func(seq lenses.Sequence, _ Options) Solution {
		return Solution{Part1: value(seq.Part1), Part2: value(seq.Part2)}
	})})
	register(Puzzle{Day: 16, Title: "The Floor Will Be Lava", Solve: solver(contraption.Parse, func(c contraption.Contraption, opts Options) Solution {
		return Solution{
			Part1: value(c.Part1),
			Part2: func(ctx context.Context) (int64, error) { return c.Part2(ctx, opts.ContraptionWorkers) },
		}
	})})
	register(Puzzle{Day: 18, Title: "Lavaduct Lagoon", Solve: solver(lagoon.Parse, func(p lagoon.Plan, _ Options) Solution {
		return Solution{Part1: value(p.Part1), Part2: fallible(p.Part2)}
	})})
	register(Puzzle{Day: 19, Title: "Aplenty", Solve: solver(aplenty.Parse, func(s aplenty.System, _ Options) Solution {
		return Solution{Part1: fallible(s.Part1), Part2: fallible(s.Part2)}
	})})
}

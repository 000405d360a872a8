package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	aoc "github.com/aestallon/advent-of-code-2023"
	"github.com/aestallon/advent-of-code-2023/internal/source"
)

var (
	inputFile string
	inputDir  string
	part      int
	watch     bool

	solveCmd = &cobra.Command{
		Use:   "solve [days...]",
		Short: "Solve the given days, or every day when none is given",
		RunE:  runSolve,
	}
)

func init() {
	flags := solveCmd.Flags()
	flags.StringVar(&inputFile, "input", "", "input file for a single day")
	flags.StringVar(&inputDir, "dir", "", "directory holding one input file per day; overrides the config")
	flags.IntVar(&part, "part", 0, "solve only part 1 or 2")
	flags.BoolVar(&watch, "watch", false, "solve again whenever the --input file changes")
}

var errFailed = errors.New("some parts failed")

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		if _, err := aoc.Lookup(day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if inputFile != "" && len(days) != 1 {
		return errors.New("--input needs exactly one day")
	}
	if watch && inputFile == "" {
		return errors.New("--watch needs --input")
	}

	loader := cfg.Loader()
	switch {
	case inputFile != "":
		loader = source.File(inputFile)
	case inputDir != "":
		loader = source.Dir{Root: inputDir, Pattern: cfg.Input.Pattern}
	}

	runner := aoc.CreateRunner(loader, cfg.ToOptions(), logger)
	runner.Concurrency = cfg.Concurrency
	switch part {
	case 0:
	case 1, 2:
		runner.Parts = []aoc.Part{aoc.Part(part)}
	default:
		return fmt.Errorf("invalid part %d", part)
	}

	ctx, stop := commandContext(cmd)
	defer stop()
	if watch {
		return watchInput(ctx, inputFile, func(ctx context.Context) {
			streamDays(ctx, cmd.OutOrStdout(), runner, days)
		})
	}
	if err := collectDays(ctx, cmd.OutOrStdout(), runner, days); err != nil {
		return err
	}
	return ctx.Err()
}

// collectDays solves the days concurrently and prints them in day order once
// all are done.
func collectDays(ctx context.Context, w io.Writer, runner *aoc.Runner, days []int) error {
	results, err := runner.Collect(ctx, days...)
	if err != nil {
		return err
	}
	return report(w, slices.Values(results))
}

// streamDays prints each result as soon as it is solved.
func streamDays(ctx context.Context, w io.Writer, runner *aoc.Runner, days []int) error {
	return report(w, runner.Results(ctx, days...))
}

func report(w io.Writer, results iter.Seq[aoc.Result]) error {
	failed := false
	for res := range results {
		if !printResult(w, res) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

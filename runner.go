package aoc

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aestallon/advent-of-code-2023/internal/source"
	"github.com/aestallon/advent-of-code-2023/pkg/logging"
)

// Result is the outcome of one part of one day. A failed part carries Err
// and a zero Answer.
type Result struct {
	RunID    uuid.UUID
	Day      int
	Part     Part
	Answer   int64
	Duration time.Duration
	Err      error
}

type Runner struct {
	Loader  source.Loader
	Options Options
	Logger  *slog.Logger
	// Concurrency bounds the number of days Collect solves at once.
	Concurrency int
	// Parts selects the parts to solve; empty means both.
	Parts []Part
}

func CreateRunner(loader source.Loader, opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{
		Loader:      loader,
		Options:     opts,
		Logger:      logger,
		Concurrency: 4,
	}
}

func (r *Runner) parts() []Part {
	if len(r.Parts) == 0 {
		return Parts
	}
	return r.Parts
}

// Results solves the days one after another, yielding each part as soon as
// it is known. With no days given every registered day is solved.
func (r *Runner) Results(ctx context.Context, days ...int) iter.Seq[Result] {
	if len(days) == 0 {
		days = Days()
	}
	runID := uuid.New()
	return func(yield func(Result) bool) {
		for _, day := range days {
			if ctx.Err() != nil {
				return
			}
			lines, err := r.Loader.Lines(ctx, day)
			if err != nil {
				err = fmt.Errorf("loading day %d: %w", day, err)
			}
			for _, res := range r.solve(ctx, runID, day, lines, err) {
				if !yield(res) {
					return
				}
			}
		}
	}
}

// Collect solves the days concurrently and returns their results sorted by
// day and part. Failed parts are reported in their Result; the error is
// only set for unknown days or a cancelled context.
func (r *Runner) Collect(ctx context.Context, days ...int) ([]Result, error) {
	if len(days) == 0 {
		days = Days()
	}
	for _, day := range days {
		if _, err := Lookup(day); err != nil {
			return nil, err
		}
	}
	runID := uuid.New()

	var (
		mu      sync.Mutex
		results []Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Concurrency, 1))
	for _, day := range days {
		g.Go(func() error {
			lines, err := r.Loader.Lines(gctx, day)
			if err != nil {
				err = fmt.Errorf("loading day %d: %w", day, err)
			}
			res := r.solve(gctx, runID, day, lines, err)
			mu.Lock()
			results = append(results, res...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b Result) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Part, b.Part))
	})
	return results, nil
}

// SolveLines solves one day over lines that were loaded elsewhere.
func (r *Runner) SolveLines(ctx context.Context, day int, lines []string) ([]Result, error) {
	if _, err := Lookup(day); err != nil {
		return nil, err
	}
	return r.solve(ctx, uuid.New(), day, lines, nil), nil
}

// solve parses lines and computes the selected parts. A load or parse
// failure is reported against every selected part.
func (r *Runner) solve(ctx context.Context, runID uuid.UUID, day int, lines []string, loadErr error) []Result {
	logger := r.Logger.With("run_id", runID.String(), "day", day)
	parts := r.parts()
	fail := func(err error) []Result {
		out := make([]Result, len(parts))
		for i, p := range parts {
			out[i] = Result{RunID: runID, Day: day, Part: p, Err: err}
			solvesTotal.WithLabelValues(strconv.Itoa(day), strconv.Itoa(int(p)), outcomeError).Inc()
		}
		logger.Warn("day failed", "error", err)
		return out
	}
	if loadErr != nil {
		return fail(loadErr)
	}
	puzzle, err := Lookup(day)
	if err != nil {
		return fail(err)
	}

	logger.Debug("parsing", "lines", len(lines))
	sol, err := puzzle.Solve(lines, r.Options)
	if err != nil {
		return fail(fmt.Errorf("day %d: %w", day, err))
	}

	out := make([]Result, 0, len(parts))
	for _, p := range parts {
		res := Result{RunID: runID, Day: day, Part: p}
		answer, err := sol.Part(p)
		if err == nil {
			start := time.Now()
			res.Answer, err = answer(ctx)
			res.Duration = time.Since(start)
		}
		dayLabel, partLabel := strconv.Itoa(day), strconv.Itoa(int(p))
		if err != nil {
			res.Answer = 0
			res.Err = fmt.Errorf("day %d %v: %w", day, p, err)
			solvesTotal.WithLabelValues(dayLabel, partLabel, outcomeError).Inc()
			logger.Warn("part failed", "part", int(p), "error", err)
		} else {
			solvesTotal.WithLabelValues(dayLabel, partLabel, outcomeOK).Inc()
			solveDuration.WithLabelValues(dayLabel, partLabel).Observe(res.Duration.Seconds())
			logger.Info("solved", "part", int(p), "answer", res.Answer, "duration", res.Duration)
		}
		out = append(out, res)
	}
	return out
}

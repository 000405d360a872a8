package primitives

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is the half-open integer range [Lo, Hi).
type Interval[T constraints.Integer] struct {
	Lo, Hi T
}

// Span returns the interval of n values starting at start.
func Span[T constraints.Integer](start, n T) Interval[T] {
	return Interval[T]{Lo: start, Hi: start + n}
}

func (i Interval[T]) Len() T {
	if i.Hi <= i.Lo {
		return 0
	}
	return i.Hi - i.Lo
}

func (i Interval[T]) Empty() bool {
	return i.Hi <= i.Lo
}

func (i Interval[T]) Contains(v T) bool {
	return v >= i.Lo && v < i.Hi
}

// Intersect returns the overlap of i and j, which may be empty.
func (i Interval[T]) Intersect(j Interval[T]) Interval[T] {
	return Interval[T]{Lo: max(i.Lo, j.Lo), Hi: min(i.Hi, j.Hi)}
}

// SplitAt cuts i into the values below v and the values from v upwards.
// Either half may be empty.
func (i Interval[T]) SplitAt(v T) (below, above Interval[T]) {
	v = min(max(v, i.Lo), i.Hi)
	return Interval[T]{Lo: i.Lo, Hi: v}, Interval[T]{Lo: v, Hi: i.Hi}
}

// Shift moves the interval by delta.
func (i Interval[T]) Shift(delta T) Interval[T] {
	return Interval[T]{Lo: i.Lo + delta, Hi: i.Hi + delta}
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%d, %d)", i.Lo, i.Hi)
}

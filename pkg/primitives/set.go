package primitives

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Set is a bitmap of integers in the closed range given to NewSet.
type Set[T constraints.Integer] struct {
	present []bool
	lo      T
	count   int
}

func NewSet[T constraints.Integer](lo, hi T) *Set[T] {
	return &Set[T]{present: make([]bool, int(hi-lo)+1), lo: lo}
}

// SetOf builds a set over [lo, hi] holding vs. Repeated values are kept once.
func SetOf[T constraints.Integer](lo, hi T, vs ...T) (*Set[T], error) {
	s := NewSet(lo, hi)
	for _, v := range vs {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts v; adding a present value is a no-op.
func (s *Set[T]) Add(v T) error {
	if !s.inRange(v) {
		return fmt.Errorf("value %d is out of range [%d, %d]", v, s.lo, s.lo+T(len(s.present)-1))
	}
	if !s.present[v-s.lo] {
		s.present[v-s.lo] = true
		s.count++
	}
	return nil
}

// Contains reports whether v is in the set. Values outside the range are
// never contained.
func (s *Set[T]) Contains(v T) bool {
	return s.inRange(v) && s.present[v-s.lo]
}

// Intersection returns the values present in both sets, over the range of s.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := NewSet(s.lo, s.lo+T(len(s.present)-1))
	for i, ok := range s.present {
		if v := s.lo + T(i); ok && other.Contains(v) {
			out.present[i] = true
			out.count++
		}
	}
	return out
}

func (s *Set[T]) Count() int {
	return s.count
}

func (s *Set[T]) inRange(v T) bool {
	return v >= s.lo && int(v-s.lo) < len(s.present)
}

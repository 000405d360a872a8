package primitives

import "golang.org/x/exp/constraints"

// Pt is a point on an integer plane. Y grows downwards, matching row order
// in puzzle input.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Point is the grid coordinate used by most puzzles.
type Point = Pt[int]

func (p Pt[T]) Add(q Pt[T]) Pt[T] {
	return Pt[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Pt[T]) Sub(q Pt[T]) Pt[T] {
	return Pt[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Pt[T]) Scale(k T) Pt[T] {
	return Pt[T]{X: p.X * k, Y: p.Y * k}
}

// Manhattan returns the taxicab distance between p and q.
func (p Pt[T]) Manhattan(q Pt[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Direction is an enum representing one of the four compass directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{Y: -1}
	case East:
		return Point{X: 1}
	case South:
		return Point{Y: 1}
	case West:
		return Point{X: -1}
	}
	panic("invalid direction")
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

package primitives

import "golang.org/x/exp/constraints"

func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of all values. LCM of nothing is 1.
func LCM[T constraints.Integer](vs ...T) T {
	var l T = 1
	for _, v := range vs {
		if v == 0 {
			return 0
		}
		l = l / GCD(l, v) * v
	}
	if l < 0 {
		return -l
	}
	return l
}

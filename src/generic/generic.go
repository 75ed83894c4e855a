package generic

import (
	"cmp"
	"math"
)

// Add works for every ordered type; strings are concatenated.
func Add[T cmp.Ordered](a, b T) T {
	return a + b
}

// Largest returns the largest element of s, or false if s is empty.
func Largest[S ~[]E, E cmp.Ordered](s S) (E, bool) {
	var largest E
	if len(s) == 0 {
		return largest, false
	}
	largest = s[0]
	for _, item := range s[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest, true
}

type Point[T, U any] struct {
	X T
	Y U
}

// Mixup takes X from p and Y from other.
func Mixup[T, U, V, W any](p Point[T, U], other Point[V, W]) Point[T, W] {
	return Point[T, W]{X: p.X, Y: other.Y}
}

func DistanceFromOrigin[F ~float32 | ~float64](p Point[F, F]) F {
	return F(math.Sqrt(float64(p.X*p.X + p.Y*p.Y)))
}

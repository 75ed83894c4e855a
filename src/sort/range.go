package sort

import "fmt"

// Range is an inclusive index window [Lo, Hi] into a sequence.
type Range struct {
	Lo, Hi int
}

func (r Range) Len() int { return r.Hi - r.Lo + 1 }

// Valid reports whether r is a non-empty window inside a sequence of length n.
func (r Range) Valid(n int) bool {
	return 0 <= r.Lo && r.Lo <= r.Hi && r.Hi < n
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// Step is a range a sort strategy worked on, with its recursion depth.
type Step struct {
	Range Range
	Depth int
}

type visitor func(r Range, depth int)

func (v visitor) visit(lo, hi, depth int) {
	if v != nil {
		v(Range{Lo: lo, Hi: hi}, depth)
	}
}

// splitAt cuts s at mid into two views that never overlap: the left view's
// capacity stops at mid, so growing it reallocates rather than writing into
// the right view.
func splitAt[E any](s []E, mid int) (left, right []E) {
	return s[:mid:mid], s[mid:]
}

func checkRange(r Range, n int) {
	if !r.Valid(n) {
		panic(fmt.Sprintf("sort: range %v out of bounds for length %d", r, n))
	}
}

package sort

import "cmp"

type IntArray []int

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Sort bubble sorts any Sorter in place. It is stable.
func Sort(data Sorter) {
	bubble(data, nil)
}

// BubbleSort sorts s in place in ascending order. It is stable.
func BubbleSort[S ~[]E, E cmp.Ordered](s S) {
	bubble(funcSorter[E]{s, cmp.Less[E]}, nil)
}

// BubbleSortFunc is BubbleSort ordered by less.
func BubbleSortFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	bubble(funcSorter[E]{s, less}, nil)
}

// funcSorter adapts a slice and its ordering to Sorter.
type funcSorter[E any] struct {
	s    []E
	less func(a, b E) bool
}

func (f funcSorter[E]) Len() int { return len(f.s) }

func (f funcSorter[E]) Less(i, j int) bool { return f.less(f.s[i], f.s[j]) }

func (f funcSorter[E]) Swap(i, j int) { f.s[i], f.s[j] = f.s[j], f.s[i] }

// bubble runs n-1 passes; pass k scans the window [0, n-k], leaving the
// largest remaining element at its end.
func bubble(data Sorter, v visitor) {
	n := data.Len()
	if n == 0 {
		return
	}
	v.visit(0, n-1, 0)
	for pass := 1; pass < n; pass++ {
		v.visit(0, n-pass, 1)
		for i := 0; i < n-pass; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
			}
		}
	}
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return IsSortedFunc(s, cmp.Less[E])
}

func IsSortedFunc[S ~[]E, E any](s S, less func(a, b E) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

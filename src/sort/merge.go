package sort

import "cmp"

// MergeSort sorts s in place in ascending order. Equal elements are not kept
// in their original order; see Merge.
func MergeSort[S ~[]E, E cmp.Ordered](s S) {
	mergeSort(s, cmp.Less[E], nil, 0, 0)
}

func MergeSortFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	mergeSort(s, less, nil, 0, 0)
}

func mergeSort[E any](s []E, less func(a, b E) bool, v visitor, off, depth int) {
	if len(s) == 0 {
		return
	}
	v.visit(off, off+len(s)-1, depth)
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	left, right := splitAt(s, mid)
	mergeSort(left, less, v, off, depth+1)
	mergeSort(right, less, v, off+mid, depth+1)
	copy(s, merge(left, right, less))
}

// Merge combines two sorted slices into a new sorted slice.
//
// The left element is taken only while it is strictly less than the right
// one, or once b is exhausted. On a tie the right element goes first, so the
// merge is not stable.
func Merge[S ~[]E, E cmp.Ordered](a, b S) S {
	return S(merge(a, b, cmp.Less[E]))
}

func MergeFunc[S ~[]E, E any](a, b S, less func(a, b E) bool) S {
	return S(merge(a, b, less))
}

func merge[E any](a, b []E, less func(a, b E) bool) []E {
	res := make([]E, 0, len(a)+len(b))
	ia, ib := 0, 0
	for ia < len(a) || ib < len(b) {
		if (ia < len(a) && ib < len(b) && less(a[ia], b[ib])) || ib == len(b) {
			res = append(res, a[ia])
			ia++
		} else {
			res = append(res, b[ib])
			ib++
		}
	}
	return res
}

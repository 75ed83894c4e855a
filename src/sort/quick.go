package sort

import "cmp"

// QuickSortFilter sorts s in place. Each level pivots on the first element,
// copies the rest into fresh less / greater-or-equal groups and writes them
// back around the pivot.
func QuickSortFilter[S ~[]E, E cmp.Ordered](s S) {
	quickSortFilter(s, cmp.Less[E], nil, 0, 0)
}

func QuickSortFilterFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	quickSortFilter(s, less, nil, 0, 0)
}

// PartitionFilter splits s[1:] around the pivot s[0]: lt holds the elements
// strictly less than the pivot, ge the rest, both in their original order.
func PartitionFilter[S ~[]E, E cmp.Ordered](s S) (lt, ge S) {
	if len(s) == 0 {
		return nil, nil
	}
	l, g := partitionFilter(s, cmp.Less[E])
	return S(l), S(g)
}

func partitionFilter[E any](s []E, less func(a, b E) bool) (lt, ge []E) {
	pivot := s[0]
	for _, x := range s[1:] {
		if less(x, pivot) {
			lt = append(lt, x)
		} else {
			ge = append(ge, x)
		}
	}
	return lt, ge
}

func quickSortFilter[E any](s []E, less func(a, b E) bool, v visitor, off, depth int) {
	if len(s) == 0 {
		return
	}
	v.visit(off, off+len(s)-1, depth)
	if len(s) < 2 {
		return
	}
	pivot := s[0]
	lt, ge := partitionFilter(s, less)
	l := len(lt)
	s[l] = pivot
	copy(s[:l], lt)
	copy(s[l+1:], ge)

	left, rest := splitAt(s, l)
	quickSortFilter(left, less, v, off, depth+1)
	quickSortFilter(rest[1:], less, v, off+l+1, depth+1)
}

// QuickSortTwoPointer sorts s in place with the two-pointer Partition and no
// extra storage. The pivot is always the first element of a range, so sorted
// and reverse-sorted input take quadratic time.
func QuickSortTwoPointer[S ~[]E, E cmp.Ordered](s S) {
	if len(s) > 0 {
		quickSortRange(s, 0, len(s)-1, cmp.Less[E], nil, 0)
	}
}

func QuickSortTwoPointerFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	if len(s) > 0 {
		quickSortRange(s, 0, len(s)-1, less, nil, 0)
	}
}

// Partition rearranges s[lo:hi+1] around the pivot s[lo] and returns the
// pivot's final index p: s[lo:p] <= pivot <= s[p+1:hi+1].
// It panics if [lo, hi] is not inside s.
func Partition[S ~[]E, E cmp.Ordered](s S, lo, hi int) int {
	checkRange(Range{Lo: lo, Hi: hi}, len(s))
	return partition(s, lo, hi, cmp.Less[E])
}

func partition[E any](s []E, lo, hi int, less func(a, b E) bool) int {
	l, r := lo, hi
	for l < r {
		for l < r && !less(s[r], s[lo]) {
			r--
		}
		for l < r && !less(s[lo], s[l]) {
			l++
		}
		if l != r {
			s[l], s[r] = s[r], s[l]
		}
	}
	s[lo], s[l] = s[l], s[lo]
	return l
}

func quickSortRange[E any](s []E, lo, hi int, less func(a, b E) bool, v visitor, depth int) {
	if lo > hi {
		return
	}
	v.visit(lo, hi, depth)
	if lo == hi {
		return
	}
	pos := partition(s, lo, hi, less)
	// pos-1 would fall below the window when the pivot stays at lo.
	if pos != lo {
		quickSortRange(s, lo, pos-1, less, v, depth+1)
	}
	quickSortRange(s, pos+1, hi, less, v, depth+1)
}

package sort

import (
	"cmp"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm names one of the interchangeable sort strategies.
type Algorithm string

const (
	AlgoBubble          Algorithm = "bubble"
	AlgoMerge           Algorithm = "merge"
	AlgoQuickFilter     Algorithm = "quick-filter"
	AlgoQuickTwoPointer Algorithm = "quick"
)

var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

func Algorithms() []Algorithm {
	return []Algorithm{AlgoBubble, AlgoMerge, AlgoQuickFilter, AlgoQuickTwoPointer}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range Algorithms() {
		if strings.EqualFold(name, string(alg)) {
			return alg, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// SortWith sorts s in place with the named strategy.
func SortWith[S ~[]E, E cmp.Ordered](alg Algorithm, s S) error {
	return run(alg, s, cmp.Less[E], nil)
}

// Trace sorts s with the named strategy and returns, in visiting order, every
// range the strategy worked on.
func Trace[S ~[]E, E cmp.Ordered](alg Algorithm, s S) ([]Step, error) {
	var steps []Step
	err := run(alg, s, cmp.Less[E], func(r Range, depth int) {
		steps = append(steps, Step{Range: r, Depth: depth})
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func run[E any](alg Algorithm, s []E, less func(a, b E) bool, v visitor) error {
	switch alg {
	case AlgoBubble:
		bubble(funcSorter[E]{s, less}, v)
	case AlgoMerge:
		mergeSort(s, less, v, 0, 0)
	case AlgoQuickFilter:
		quickSortFilter(s, less, v, 0, 0)
	case AlgoQuickTwoPointer:
		if len(s) > 0 {
			quickSortRange(s, 0, len(s)-1, less, v, 0)
		}
	default:
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", string(alg))
	}
	return nil
}

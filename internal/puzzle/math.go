package puzzle

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Sum adds up vs.
func Sum[T constraints.Integer](vs ...T) (tot T) {
	for _, v := range vs {
		tot += v
	}
	return tot
}

// TopN returns the n largest values of vs in descending order. vs is not
// modified. If vs holds fewer than n values all of them are returned.
func TopN[T constraints.Ordered](vs []T, n int) []T {
	sorted := slices.Clone(vs)
	slices.SortFunc(sorted, func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

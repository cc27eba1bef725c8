// Package sort implements the comparison sorts used to order highscore
// tables: bubble sort, bottom-up merge sort and natural merge sort.
//
// All three are stable for the comparators used here: bubble sort only swaps
// strictly out of order neighbours and both merges take the left element on
// ties, so the same input always produces the same output whichever
// algorithm runs.
package sort

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// CompareFunc is a three-way comparison: negative when a sorts before b,
// zero when they are equal and positive when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// Ordered compares two values of a naturally ordered type.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Reverse returns cmp with its arguments swapped.
func Reverse[T any](cmp CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int { return cmp(b, a) }
}

func direction[T any](cmp CompareFunc[T], ascending bool) CompareFunc[T] {
	if ascending {
		return cmp
	}
	return Reverse(cmp)
}

type Algorithm int

const (
	Merge Algorithm = iota
	Bubble
	NaturalMerge
)

var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

var algorithmNames = map[Algorithm]string{
	Bubble:       "bubble",
	Merge:        "merge",
	NaturalMerge: "natural",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm accepts the names printed by Algorithm.String, case
// insensitively. An empty name selects merge sort.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Merge, nil
	}
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}
	return Merge, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Slice orders data in place with the chosen algorithm.
func Slice[T any](alg Algorithm, data []T, cmp CompareFunc[T], ascending bool) error {
	switch alg {
	case Bubble:
		BubbleSort(data, cmp, ascending)
	case Merge:
		MergeSort(data, cmp, ascending)
	case NaturalMerge:
		NaturalMergeSort(data, cmp, ascending)
	default:
		return errors.Wrapf(ErrUnknownAlgorithm, "%d", int(alg))
	}
	return nil
}

// Package search finds values in slices of any element type given a
// three-way comparator. Binary and jump search expect the slice to already be
// in ascending order under that comparator; the order is not checked.
package search

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"highscore/src/sort"
)

// NotFound is returned when the target is absent.
const NotFound = -1

var (
	ErrBlockSize     = errors.New("invalid jump search block size")
	ErrUnknownMethod = errors.New("unknown search method")
)

// Linear returns the first index holding a value equal to target.
func Linear[T any](data []T, target T, cmp sort.CompareFunc[T]) int {
	for i := range data {
		if cmp(data[i], target) == 0 {
			return i
		}
	}
	return NotFound
}

// Binary keeps every element below lo strictly less than target and every
// element at or above hi strictly greater, so the window shrinks each step
// and the loop ends even if data is not actually sorted.
func Binary[T any](data []T, target T, cmp sort.CompareFunc[T]) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(data[mid], target); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid
		}
	}
	return NotFound
}

// DefaultBlockSize is floor(sqrt(n)), never below one.
func DefaultBlockSize(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(n))))
}

// Jump strides through data in blocks of blockSize until the last element of
// a block is not less than target, then scans that block backwards. A
// blockSize of zero selects DefaultBlockSize; negative values and values
// larger than len(data) are rejected.
func Jump[T any](data []T, target T, cmp sort.CompareFunc[T], blockSize int) (int, error) {
	n := len(data)
	switch {
	case blockSize < 0 || blockSize > n:
		return NotFound, errors.Wrapf(ErrBlockSize, "block size %d for %d elements", blockSize, n)
	case n == 0:
		return NotFound, nil
	case blockSize == 0:
		blockSize = DefaultBlockSize(n)
	}

	prev, next := 0, blockSize
	for cmp(data[min(next, n)-1], target) < 0 {
		prev = next
		if prev >= n {
			return NotFound, nil
		}
		next += blockSize
	}
	for i := min(next, n) - 1; i >= prev; i-- {
		c := cmp(data[i], target)
		if c == 0 {
			return i, nil
		}
		if c < 0 {
			break
		}
	}
	return NotFound, nil
}

type Method int

const (
	MethodLinear Method = iota
	MethodBinary
	MethodJump
)

var methodNames = map[Method]string{
	MethodLinear: "linear",
	MethodBinary: "binary",
	MethodJump:   "jump",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// RequiresSorted reports whether the method only works on ascending input.
func (m Method) RequiresSorted() bool { return m != MethodLinear }

// ParseMethod maps a method name to a Method. An empty name selects linear
// search since it has no ordering precondition.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return MethodLinear, nil
	}
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return MethodLinear, errors.Wrapf(ErrUnknownMethod, "%q", name)
}

// Find runs the chosen method. blockSize only matters for jump search.
func Find[T any](m Method, data []T, target T, cmp sort.CompareFunc[T], blockSize int) (int, error) {
	switch m {
	case MethodLinear:
		return Linear(data, target, cmp), nil
	case MethodBinary:
		return Binary(data, target, cmp), nil
	case MethodJump:
		return Jump(data, target, cmp, blockSize)
	}
	return NotFound, errors.Wrapf(ErrUnknownMethod, "%d", int(m))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package sort

// MergeSort is a bottom-up merge sort. The run length doubles from 1 until it
// covers the slice; each level merges neighbouring blocks into a scratch
// buffer the size of data and copies it back.
func MergeSort[T any](data []T, cmp CompareFunc[T], ascending bool) {
	n := len(data)
	if n < 2 {
		return
	}
	cmp = direction(cmp, ascending)
	scratch := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(data, scratch, lo, mid, hi, cmp)
		}
		copy(data, scratch)
	}
}

// merge writes the union of data[lo:mid] and data[mid:hi] to scratch[lo:hi].
// Equal elements are taken from the left block first.
func merge[T any](data, scratch []T, lo, mid, hi int, cmp CompareFunc[T]) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		if i < mid && (j >= hi || cmp(data[i], data[j]) <= 0) {
			scratch[k] = data[i]
			i++
		} else {
			scratch[k] = data[j]
			j++
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

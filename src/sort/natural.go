package sort

// Run is an inclusive index range [Begin, End] that is already
// non-decreasing.
type Run struct {
	Begin int
	End   int
}

func (r Run) Len() int { return r.End - r.Begin + 1 }

// Runs splits data into maximal non-decreasing runs under cmp.
func Runs[T any](data []T, cmp CompareFunc[T]) []Run {
	return appendRuns(nil, data, cmp)
}

func appendRuns[T any](runs []Run, data []T, cmp CompareFunc[T]) []Run {
	n := len(data)
	for begin := 0; begin < n; {
		end := begin
		for end+1 < n && cmp(data[end], data[end+1]) <= 0 {
			end++
		}
		runs = append(runs, Run{Begin: begin, End: end})
		begin = end + 1
	}
	return runs
}

// NaturalMergeSort merges the runs already present in data pairwise until a
// single run spans the slice. Sorted input costs a single scan.
func NaturalMergeSort[T any](data []T, cmp CompareFunc[T], ascending bool) {
	n := len(data)
	if n < 2 {
		return
	}
	cmp = direction(cmp, ascending)
	runs := appendRuns(nil, data, cmp)
	if len(runs) == 1 {
		return
	}
	scratch := make([]T, n)
	for len(runs) > 1 {
		for r := 0; r < len(runs); r += 2 {
			if r+1 == len(runs) {
				last := runs[r]
				copy(scratch[last.Begin:last.End+1], data[last.Begin:last.End+1])
				break
			}
			merge(data, scratch, runs[r].Begin, runs[r+1].Begin, runs[r+1].End+1, cmp)
		}
		copy(data, scratch)
		runs = appendRuns(runs[:0], data, cmp)
	}
}

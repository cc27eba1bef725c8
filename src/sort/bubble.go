package sort

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// Sort bubble sorts data. Each pass walks [0, n-2] and the loop stops after
// the first pass without a swap, so at most n-1 passes run.
func Sort(data Sorter) {
	n := data.Len()
	for pass := 1; pass < n; pass++ {
		swapped := false
		for i := 0; i < n-1; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

type sliceSorter[T any] struct {
	data []T
	cmp  CompareFunc[T]
}

func (s sliceSorter[T]) Len() int { return len(s.data) }

func (s sliceSorter[T]) Less(i, j int) bool { return s.cmp(s.data[i], s.data[j]) < 0 }

func (s sliceSorter[T]) Swap(i, j int) { s.data[i], s.data[j] = s.data[j], s.data[i] }

// BubbleSort orders data in place.
func BubbleSort[T any](data []T, cmp CompareFunc[T], ascending bool) {
	if len(data) < 2 {
		return
	}
	Sort(sliceSorter[T]{data: data, cmp: direction(cmp, ascending)})
}

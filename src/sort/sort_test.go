package sort

import (
	"math/rand"
	stdsort "sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sorterFunc func(data []int, cmp CompareFunc[int], ascending bool)

var algorithms = map[string]sorterFunc{
	"bubble":  BubbleSort[int],
	"merge":   MergeSort[int],
	"natural": NaturalMergeSort[int],
}

func randomInts(r *rand.Rand, n, max int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(max)
	}
	return data
}

func TestSortSmallInputs(t *testing.T) {
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			var empty []int
			fn(empty, Ordered[int], true)
			assert.Empty(t, empty)

			one := []int{42}
			fn(one, Ordered[int], false)
			assert.Equal(t, []int{42}, one)
		})
	}
}

func TestSortOrderAndPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{2, 3, 5, 16, 17, 100} {
				data := randomInts(r, n, 20)
				want := append([]int(nil), data...)
				stdsort.Ints(want)

				asc := append([]int(nil), data...)
				fn(asc, Ordered[int], true)
				require.Equal(t, want, asc, "n=%d", n)

				desc := append([]int(nil), data...)
				fn(desc, Ordered[int], false)
				for i := 1; i < len(desc); i++ {
					require.GreaterOrEqual(t, desc[i-1], desc[i])
				}
				require.ElementsMatch(t, data, desc)
			}
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	sorted := []int{1, 2, 2, 3, 8, 13, 21}
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			data := append([]int(nil), sorted...)
			fn(data, Ordered[int], true)
			assert.Equal(t, sorted, data)
		})
	}
}

type pair struct {
	key int
	tag string
}

func byKey(a, b pair) int { return Ordered(a.key, b.key) }

func TestCrossAlgorithmEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		n := r.Intn(40)
		input := make([]pair, n)
		for i := range input {
			input[i] = pair{key: r.Intn(5), tag: string(rune('a' + i%26))}
		}
		for _, ascending := range []bool{true, false} {
			bubble := append([]pair(nil), input...)
			merge := append([]pair(nil), input...)
			natural := append([]pair(nil), input...)
			BubbleSort(bubble, byKey, ascending)
			MergeSort(merge, byKey, ascending)
			NaturalMergeSort(natural, byKey, ascending)
			require.Equal(t, bubble, merge)
			require.Equal(t, bubble, natural)
		}
	}
}

func TestMergeLeftBias(t *testing.T) {
	data := []pair{{1, "a"}, {0, "b"}, {1, "c"}, {0, "d"}}
	MergeSort(data, byKey, true)
	assert.Equal(t, []pair{{0, "b"}, {0, "d"}, {1, "a"}, {1, "c"}}, data)

	data = []pair{{1, "a"}, {0, "b"}, {1, "c"}, {0, "d"}}
	NaturalMergeSort(data, byKey, false)
	assert.Equal(t, []pair{{1, "a"}, {1, "c"}, {0, "b"}, {0, "d"}}, data)
}

func TestRuns(t *testing.T) {
	assert.Nil(t, Runs([]int{}, Ordered[int]))
	assert.Equal(t, []Run{{0, 0}}, Runs([]int{5}, Ordered[int]))
	assert.Equal(t, []Run{{0, 2}, {3, 4}, {5, 5}},
		Runs([]int{1, 2, 2, 0, 9, 3}, Ordered[int]))
	assert.Equal(t, []Run{{0, 3}}, Runs([]int{1, 2, 3, 4}, Ordered[int]))
	assert.Equal(t, 3, Run{Begin: 2, End: 4}.Len())
}

func TestLegacySorter(t *testing.T) {
	data := stdsort.IntSlice{74, 59, 238, -784, 9845, 959, 905, 0, 0, 42, 7586, -5467984, 7586}
	Sort(data)
	assert.True(t, stdsort.IsSorted(data))
}

func TestParseAlgorithm(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Algorithm
	}{
		{"", Merge},
		{"bubble", Bubble},
		{" Merge ", Merge},
		{"NATURAL", NaturalMerge},
	} {
		got, err := ParseAlgorithm(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		back, err := ParseAlgorithm(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, back)
	}

	_, err := ParseAlgorithm("quick")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSliceDispatch(t *testing.T) {
	for _, alg := range []Algorithm{Bubble, Merge, NaturalMerge} {
		data := []string{"b", "c", "a"}
		require.NoError(t, Slice(alg, data, Ordered[string], false))
		assert.Equal(t, []string{"c", "b", "a"}, data, alg.String())
	}
	require.ErrorIs(t, Slice(Algorithm(9), []int{2, 1}, Ordered[int], true), ErrUnknownAlgorithm)
	assert.Equal(t, "unknown", Algorithm(9).String())
}

package dc3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountingSortStable(t *testing.T) {
	// Two tuples share a key at stage 0; their relative order must survive.
	values := [][tupleSize]int32{
		{2, 9, 0},
		{1, 1, 0},
		{2, 5, 0},
		{0, 0, 0},
	}
	got := countingSort(values, nil, 10, len(values), 0)
	assert.Equal(t, []int32{3, 1, 0, 2}, got)
}

func TestCountingSortChainsPrev(t *testing.T) {
	values := [][tupleSize]int32{
		{1, 0, 0},
		{0, 2, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	byStage1 := countingSort(values, nil, 10, len(values), 1)
	assert.Equal(t, []int32{0, 3, 2, 1}, byStage1)

	byStage0Then1 := countingSort(values, byStage1, 10, len(values), 0)
	assert.Equal(t, []int32{3, 1, 0, 2}, byStage0Then1)
}

func TestRadixSortOrdersTriplesLexicographically(t *testing.T) {
	t12 := &tupleInfo{
		totalBlocks: 4,
		values: [][tupleSize]int32{
			{2, 1, 3},
			{1, 4, 0},
			{1, 3, 9},
			{2, 0, 0},
		},
	}
	sorting := radixSort(t12)

	for i := 1; i < len(sorting); i++ {
		assert.LessOrEqual(t, compareTriples(t12.values[sorting[i-1]], t12.values[sorting[i]]), 0)
	}
}

// compareTriples returns <0, 0, or >0 comparing a and b field-wise in
// index order, the same order DC3's merge step uses.
func compareTriples(a, b [tupleSize]int32) int {
	for i := 0; i < tupleSize; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

func TestAlphabetBoundHasFloor(t *testing.T) {
	assert.Equal(t, int32(minAlphabetBound), alphabetBound(1))
	assert.Equal(t, int32(300), alphabetBound(100))
}

// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package dc3

// tupleSize is the width of the fixed tuples DC3 samples and sorts: three
// consecutive symbols starting at a sampled position.
const tupleSize = 3

// additionalPadding is the number of trailing zero sentinels every padded
// input buffer must carry, so that reading three symbols past the last
// sampled position never runs off the end of the slice.
const additionalPadding = 2

// minAlphabetBound is the smallest histogram size counting sort will use,
// regardless of how few elements it is sorting. It mirrors MIN_LEN from
// the original C sources and keeps tiny recursive calls from needing a
// degenerate zero-sized bucket array.
const minAlphabetBound = 127

// tupleInfo bundles the sampled triples for one DC3 level: their source
// offsets, the 1/2 residue class each triple belongs to, the triples
// themselves, the permutation that sorts them, and the number of distinct
// names assigned once sorted.
//
// Indices into shared slices replace the C struct's separately-owned
// pointers: everything here is allocated for one level and discarded once
// the level returns.
type tupleInfo struct {
	positions    []int32
	tupleSorting []int32
	tupleType    []int32
	values       [][tupleSize]int32
	totalBlocks  int
	maxName      int32
}

// sampledCount returns how many positions p in [0, n) satisfy p mod 3 in
// {1, 2} and have a full tupleSize window inside the padded buffer.
func sampledCount(n int) int {
	return n - (n+additionalPadding)/3
}

// buildTuplesT12 samples every position p in [0, n) with p mod 3 in
// {1, 2}, emitting first all mod-1 positions then all mod-2 positions (the
// grouping the mod-0 construction step relies on). padded must have length
// n+additionalPadding with the trailing two symbols zero.
func buildTuplesT12(padded []int32, n int) *tupleInfo {
	total := sampledCount(n)

	t := &tupleInfo{
		positions:   make([]int32, total),
		tupleType:   make([]int32, total),
		values:      make([][tupleSize]int32, total),
		totalBlocks: total,
	}

	k := 0
	for j := 1; j < tupleSize; j++ {
		for i := 0; 3*i+j+2 < n+additionalPadding; i++ {
			index := 3*i + j
			t.positions[k] = int32(index)
			t.tupleType[k] = int32(j)
			for q := 0; q < tupleSize; q++ {
				t.values[k][q] = padded[index+q]
			}
			k++
		}
	}

	logger.Debug().Int("total_blocks", total).Msg("sampled T12 tuples")
	return t
}

// buildTuplesT0Ordered produces the mod-0 tuple table in the order
// dictated by t12's already-sorted mod-1 entries: the second sort key
// (the rank of the following mod-1 suffix) is implicit in iteration
// order, so only the leading symbol needs to be sorted afterwards.
func buildTuplesT0Ordered(t12 *tupleInfo, padded []int32, n int) *tupleInfo {
	total := (n + additionalPadding) / 3

	t := &tupleInfo{
		positions:   make([]int32, total),
		values:      make([][tupleSize]int32, total),
		totalBlocks: total,
	}

	k := 0
	if n%3 == 1 {
		// Position n-1 is followed by the empty suffix, the smallest
		// possible second key, so it comes first.
		t.positions[k] = int32(n - 1)
		t.values[k][tupleSize-1] = padded[n-1]
		k++
	}
	for i := 0; i < t12.totalBlocks; i++ {
		pos := t12.positions[i]
		if t12.tupleType[i] == 1 {
			t.positions[k] = pos - 1
			t.values[k][tupleSize-1] = padded[pos-1]
			k++
		}
	}

	return t
}

// reorderInt32 returns a freshly allocated slice with arr[sorting[i]] at
// position i, mirroring the C "reorder" helper (which additionally freed
// the input slice — unnecessary under a garbage collector).
func reorderInt32(arr, sorting []int32) []int32 {
	out := make([]int32, len(sorting))
	for i, j := range sorting {
		out[i] = arr[j]
	}
	return out
}

// nameTuples assigns consecutive names (starting at 1) to the sorted
// triples in t, incrementing only when the triple changes, and returns
// the resulting name array indexed by table index (not sorted position),
// padded with two trailing zero names so the result can itself serve as
// input to a recursive suffix-array call. t.maxName is set as a side
// effect.
func nameTuples(t *tupleInfo) []int32 {
	names := make([]int32, t.totalBlocks+additionalPadding)
	if t.totalBlocks == 0 {
		t.maxName = 0
		return names
	}

	sorting := t.tupleSorting
	name := int32(1)
	names[sorting[0]] = name

	for i := 1; i < t.totalBlocks; i++ {
		if t.values[sorting[i-1]] != t.values[sorting[i]] {
			name++
		}
		names[sorting[i]] = name
	}

	t.maxName = name
	return names
}

// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
// Package dc3 computes, in linear time, the suffix array, longest-common-
// prefix array, and longest-previous-factor array of an integer-valued
// string, using the Skew (DC3) algorithm of Kärkkäinen and Sanders for
// suffix-array construction, Kasai's algorithm for the LCP array, and a
// linked-list sweep over the LCP array for LPF.
//
// Callers work with plain []int32 input; every symbol must be strictly
// positive (0 is reserved internally for the trailing sentinel). The
// package copies the input into an internally padded buffer, so callers
// never need to add sentinel padding themselves.
package dc3

// SuffixArray computes the suffix array of s: a permutation of
// {0, ..., len(s)-1} such that the suffixes s[SA[i]:] are strictly
// increasing in lexicographic order. Every symbol in s must be >= 1.
func SuffixArray(s []int32) ([]int32, error) {
	n := len(s)
	if n == 0 {
		return []int32{}, nil
	}
	for _, v := range s {
		if v <= 0 {
			return nil, ErrInvalidAlphabet
		}
	}

	padded := make([]int32, n+additionalPadding)
	copy(padded, s)

	return suffixArrayCore(padded, n), nil
}

// suffixArrayCore is the recursive DC3 construction. padded must have
// length n+additionalPadding, with the trailing additionalPadding symbols
// zero.
func suffixArrayCore(padded []int32, n int) []int32 {
	logger.Debug().Int("n", n).Msg("suffixArrayCore")

	t12 := buildTuplesT12(padded, n)
	t12.tupleSorting = radixSort(t12)
	tupleNames := nameTuples(t12)

	if t12.maxName != int32(t12.totalBlocks) {
		sa12 := suffixArrayCore(tupleNames, t12.totalBlocks)
		t12.tupleSorting = sa12
	}

	t12.positions = reorderInt32(t12.positions, t12.tupleSorting)
	t12.tupleType = reorderInt32(t12.tupleType, t12.tupleSorting)

	sa12r := buildRank1Based(t12.positions, t12.totalBlocks, n+additionalPadding)

	t0 := buildTuplesT0Ordered(t12, padded, n)
	sorting0 := countingSort(t0.values, nil, alphabetBound(t0.totalBlocks), t0.totalBlocks, tupleSize-1)
	t0.positions = reorderInt32(t0.positions, sorting0)

	return mergeSuffixes(padded, sa12r, t0, t12)
}

// buildRank1Based maps each sampled source position to the 1-based rank
// its suffix holds among the elements-many sorted entries in positions.
// Unsampled positions (including everything past the valid range) stay 0,
// which sorts as "smallest possible", a valid tie-break against the
// sentinel symbols.
func buildRank1Based(positions []int32, elements, length int) []int32 {
	rank := make([]int32, length)
	for i := 0; i < elements; i++ {
		rank[positions[i]] = int32(i + 1)
	}
	return rank
}

// mergeSuffixes merges the lexicographically sorted mod-0 suffixes (t0)
// and mod-{1,2} suffixes (t12) into the full suffix array, using sa12r
// (the 1-based rank of each sampled suffix) to compare suffixes in O(1)
// per step.
func mergeSuffixes(s []int32, sa12r []int32, t0, t12 *tupleInfo) []int32 {
	sa := make([]int32, t0.totalBlocks+t12.totalBlocks)
	i0, i12, k := 0, 0, 0

	for i0 < t0.totalBlocks && i12 < t12.totalBlocks {
		pos0 := t0.positions[i0]
		pos12 := t12.positions[i12]

		var cr int
		if t12.tupleType[i12] == 1 {
			a0, a1 := s[pos0], sa12r[pos0+1]
			b0, b1 := s[pos12], sa12r[pos12+1]
			cr = cmpPair(a0, a1, b0, b1)
		} else {
			a0, a1, a2 := s[pos0], s[pos0+1], sa12r[pos0+2]
			b0, b1, b2 := s[pos12], s[pos12+1], sa12r[pos12+2]
			cr = cmpTriple(a0, a1, a2, b0, b1, b2)
		}

		if cr <= 0 {
			sa[k] = pos0
			i0++
		} else {
			sa[k] = pos12
			i12++
		}
		logger.Debug().Int32("pos", sa[k]).Bool("mod0", cr <= 0).Msg("merge step")
		k++
	}
	for i12 < t12.totalBlocks {
		sa[k] = t12.positions[i12]
		i12++
		k++
	}
	for i0 < t0.totalBlocks {
		sa[k] = t0.positions[i0]
		i0++
		k++
	}

	return sa
}

func cmpPair(a0, a1, b0, b1 int32) int {
	if a0 != b0 {
		return int(a0) - int(b0)
	}
	return int(a1) - int(b1)
}

func cmpTriple(a0, a1, a2, b0, b1, b2 int32) int {
	if a0 != b0 {
		return int(a0) - int(b0)
	}
	if a1 != b1 {
		return int(a1) - int(b1)
	}
	return int(a2) - int(b2)
}

// ReverseSuffixArray computes the inverse permutation of sa: the rank
// (position in lexicographic order) of the suffix starting at each source
// position. ReverseSuffixArray(sa)[sa[i]] == i for every i.
func ReverseSuffixArray(sa []int32) []int32 {
	rank := make([]int32, len(sa))
	for i, pos := range sa {
		rank[pos] = int32(i)
	}
	return rank
}

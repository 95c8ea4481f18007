// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package dc3

// LCPArray computes the longest-common-prefix array for s given its
// suffix array sa and the inverse permutation rank (rank[sa[i]] == i),
// using Kasai's algorithm. LCP[0] is always 0; for i >= 1, LCP[i] is the
// length of the longest common prefix of the suffixes at sa[i-1] and
// sa[i].
//
// The walk takes linear time: the carry k never exceeds len(s) and
// decreases by at most one per source position, so it is incremented at
// most 2*len(s) times in total.
func LCPArray(s, sa, rank []int32) ([]int32, error) {
	n := len(s)
	if n != len(sa) || n != len(rank) {
		return nil, ErrMismatchedLengths
	}
	if n == 0 {
		return []int32{}, nil
	}

	lcp := make([]int32, n)
	k := 0

	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			lcp[r] = 0
			if k > 0 {
				k--
			}
			continue
		}

		j := int(sa[r-1])
		for i+k < n && j+k < n && s[i+k] == s[j+k] {
			k++
		}
		lcp[r] = int32(k)

		if k > 0 {
			k--
		}
	}

	return lcp, nil
}

// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package dc3

// adjacentNode is one entry of the doubly linked list the LPF sweep
// threads over ranks: prev/next are neighboring ranks not yet processed,
// prevVal/nextVal are the LCP values on the edges to those neighbors.
type adjacentNode struct {
	prev, next       int32
	prevVal, nextVal int32
}

// buildAdjacent initializes one node per rank directly from the LCP
// array: adjacent[r] starts out linked to its immediate neighbors r-1 and
// r+1 in suffix-array order.
func buildAdjacent(lcp []int32) []adjacentNode {
	n := len(lcp)
	adj := make([]adjacentNode, n)
	if n == 1 {
		adj[0] = adjacentNode{prev: -1, next: -1}
		return adj
	}

	adj[0] = adjacentNode{prev: -1, next: 1, prevVal: 0, nextVal: lcp[1]}
	adj[n-1] = adjacentNode{prev: int32(n - 2), next: -1, prevVal: lcp[n-1], nextVal: 0}

	for i := 1; i < n-1; i++ {
		adj[i] = adjacentNode{prev: int32(i - 1), next: int32(i + 1), prevVal: lcp[i], nextVal: lcp[i+1]}
	}

	return adj
}

// LPFArray computes the Longest Previous Factor array of s: for each
// position i, the length of the longest factor starting at i that also
// occurs starting somewhere earlier in s. LPF[0] is always 0.
//
// It walks ranks in reverse source-position order, splicing each visited
// rank out of a doubly linked "adjacent" list and relying on the identity
// lcp(a, c) = min(lcp(a, b), lcp(b, c)) for a < b < c in lexicographic
// order to keep the list's edge values correct as nodes are removed.
func LPFArray(s []int32) ([]int32, error) {
	n := len(s)
	if n == 0 {
		return []int32{}, nil
	}

	sa, err := SuffixArray(s)
	if err != nil {
		return nil, err
	}
	rank := ReverseSuffixArray(sa)
	lcp, err := LCPArray(s, sa, rank)
	if err != nil {
		return nil, err
	}

	lpf := make([]int32, n)
	adj := buildAdjacent(lcp)

	for i := n - 1; i > 0; i-- {
		r := rank[i]
		node := adj[r]
		prev, next := node.prev, node.next
		prevVal, nextVal := node.prevVal, node.nextVal

		if prevVal > nextVal {
			lpf[i] = prevVal
		} else {
			lpf[i] = nextVal
		}
		logger.Debug().Int("i", i).Int32("lpf", lpf[i]).Msg("lpf step")

		if next >= 0 {
			adj[next].prev = prev
			if prevVal < nextVal {
				adj[next].prevVal = prevVal
			} else {
				adj[next].prevVal = nextVal
			}
		}
		if prev >= 0 {
			adj[prev].next = next
			if next >= 0 {
				adj[prev].nextVal = adj[next].prevVal
			} else {
				adj[prev].nextVal = 0
			}
		}
	}

	return lpf, nil
}

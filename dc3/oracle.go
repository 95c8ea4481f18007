// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package dc3

import (
	"fmt"
	"math/rand"
	"slices"
)

// NaiveSuffixArray sorts indices 0..len(s)-1 by direct suffix comparison.
// O(n^2 log n) worst case. It exists only as a correctness oracle for
// tests and the CLI's validate subcommand; the core construction never
// calls it.
func NaiveSuffixArray(s []int32) []int32 {
	n := len(s)
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = int32(i)
	}
	slices.SortFunc(sa, func(a, b int32) int {
		return slices.Compare(s[a:], s[b:])
	})
	return sa
}

// NaiveLPF computes the Longest Previous Factor array by, for each
// position i, scanning every earlier position j < i and keeping the
// longest matching run starting there. O(n^3) worst case; an oracle,
// never used by the core construction.
func NaiveLPF(s []int32) []int32 {
	n := len(s)
	lpf := make([]int32, n)
	for i := 0; i < n; i++ {
		var best int32
		for j := i - 1; j >= 0; j-- {
			var length int32
			for int(length) < n-i && s[i+int(length)] == s[j+int(length)] {
				length++
			}
			if length > best {
				best = length
			}
		}
		lpf[i] = best
	}
	return lpf
}

// Validate cross-checks the DC3/Kasai/LPF implementation against the
// naive oracles over tries random strings of the given length, drawn from
// an alphabet of alphabetSize symbols (1..alphabetSize). mode selects
// which index to validate: "sa" or "lpf". It returns the first mismatch
// found, or nil once every trial agrees.
func Validate(mode string, length, tries, alphabetSize int, rng *rand.Rand) error {
	if alphabetSize < 1 {
		return fmt.Errorf("dc3: alphabetSize must be >= 1, got %d", alphabetSize)
	}

	for trial := 0; trial < tries; trial++ {
		s := make([]int32, length)
		for i := range s {
			s[i] = int32(rng.Intn(alphabetSize)) + 1
		}

		switch mode {
		case "sa":
			got, err := SuffixArray(s)
			if err != nil {
				return err
			}
			if want := NaiveSuffixArray(s); !slices.Equal(got, want) {
				return fmt.Errorf("dc3: suffix array mismatch on trial %d of %v: got %v, want %v", trial, s, got, want)
			}
		case "lpf":
			got, err := LPFArray(s)
			if err != nil {
				return err
			}
			if want := NaiveLPF(s); !slices.Equal(got, want) {
				return fmt.Errorf("dc3: lpf array mismatch on trial %d of %v: got %v, want %v", trial, s, got, want)
			}
		default:
			return fmt.Errorf("dc3: unknown validate mode %q", mode)
		}
	}

	return nil
}

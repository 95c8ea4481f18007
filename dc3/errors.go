// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package dc3

import "errors"

// ErrInvalidAlphabet is returned when the input string contains a zero or
// negative symbol. The DC3 construction relies on 0
// being reserved for the trailing sentinel, so a zero or negative symbol
// inside the string breaks the algorithm's tie-breaking invariants.
var ErrInvalidAlphabet = errors.New("dc3: symbols must be positive integers")

// ErrMismatchedLengths is returned by LCPArray when the suffix array or
// rank array it is given does not have the same length as the input
// string.
var ErrMismatchedLengths = errors.New("dc3: s, sa, and rank must have equal length")

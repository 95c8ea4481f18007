package dc3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCPArrayMismatchedLengths(t *testing.T) {
	_, err := LCPArray([]int32{1, 2, 3}, []int32{0, 1}, []int32{0, 1})
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}

func TestLCPArrayFirstEntryAlwaysZero(t *testing.T) {
	s := ascii("aaaaa")
	sa, err := SuffixArray(s)
	require.NoError(t, err)
	rank := ReverseSuffixArray(sa)

	lcp, err := LCPArray(s, sa, rank)
	require.NoError(t, err)
	assert.Equal(t, int32(0), lcp[0])
}

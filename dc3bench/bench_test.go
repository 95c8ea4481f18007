package dc3bench

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProducesOneResultPerTrial(t *testing.T) {
	cfg := Config{
		Mode:         ModeSuffixArray,
		Length:       64,
		Tries:        5,
		AlphabetSize: 4,
		Rand:         rand.New(rand.NewSource(42)),
	}

	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 5)

	for i, r := range results {
		assert.Equal(t, i, r.Trial)
		assert.Equal(t, 64, r.Length)
		assert.GreaterOrEqual(t, r.Elapsed.Nanoseconds(), int64(0))
	}
}

func TestRunLPFMode(t *testing.T) {
	cfg := Config{
		Mode:         ModeLPF,
		Length:       32,
		Tries:        3,
		AlphabetSize: 2,
		Rand:         rand.New(rand.NewSource(7)),
	}
	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := map[string]Config{
		"zero tries":    {Mode: ModeSuffixArray, Length: 10, Tries: 0, AlphabetSize: 2},
		"zero length":   {Mode: ModeSuffixArray, Length: 0, Tries: 1, AlphabetSize: 2},
		"zero alphabet": {Mode: ModeSuffixArray, Length: 10, Tries: 1, AlphabetSize: 0},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Run(cfg)
			assert.Error(t, err)
		})
	}
}

func TestReportWritesCSVHeaderAndRows(t *testing.T) {
	results, err := Run(Config{
		Mode:         ModeSuffixArray,
		Length:       16,
		Tries:        2,
		AlphabetSize: 3,
		Rand:         rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "trial,length,elapsed_ns,ns_per_symbol", lines[0])
}

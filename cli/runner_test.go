package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjsanders/dc3suffix/dc3"
	"github.com/kjsanders/dc3suffix/dc3bench"
)

func TestApplyVerboseAcceptsBothSettings(t *testing.T) {
	defer func() {
		dc3.SetLogger(zerolog.Nop())
		dc3bench.SetLogger(zerolog.Nop())
	}()

	ApplyVerbose(Options{Verbose: false})
	ApplyVerbose(Options{Verbose: true})
}

func TestReadSymbolsTokenized(t *testing.T) {
	s, err := ReadSymbols(strings.NewReader("2 7 1 7 3 1\n"))
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 7, 1, 7, 3, 1}, s)
}

func TestReadSymbolsBareString(t *testing.T) {
	s, err := ReadSymbols(strings.NewReader("banana\n"))
	require.NoError(t, err)
	assert.Equal(t, []int32{'b', 'a', 'n', 'a', 'n', 'a'}, s)
}

func TestReadSymbolsEmptyLine(t *testing.T) {
	s, err := ReadSymbols(strings.NewReader("\n"))
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestRunSuffixArrayPrintsSAAndLCP(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunSuffixArray(strings.NewReader("banana\n"), &out))

	got := out.String()
	assert.Contains(t, got, "SA:")
	assert.Contains(t, got, "LCP:")
}

func TestRunLPFPrintsLPF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunLPF(strings.NewReader("banana\n"), &out))
	assert.Contains(t, out.String(), "LPF:")
}

func TestRunBenchWritesCSV(t *testing.T) {
	var out bytes.Buffer
	err := RunBench(BenchConfig{Mode: "sa", Length: 32, Tries: 2, AlphabetSize: 3, Seed: 1}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "trial,length,elapsed_ns,ns_per_symbol")
}

func TestRunBenchRejectsUnknownMode(t *testing.T) {
	var out bytes.Buffer
	err := RunBench(BenchConfig{Mode: "bogus", Length: 32, Tries: 1, AlphabetSize: 3, Seed: 1}, &out)
	assert.Error(t, err)
}

func TestRunValidateSucceedsAndFails(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunValidate(ValidateConfig{Mode: "sa", Length: 50, Tries: 5, AlphabetSize: 4, Seed: 1}, &out))
	assert.Contains(t, out.String(), "ok:")

	var out2 bytes.Buffer
	err := RunValidate(ValidateConfig{Mode: "bogus", Length: 50, Tries: 5, AlphabetSize: 4, Seed: 1}, &out2)
	assert.Error(t, err)
}

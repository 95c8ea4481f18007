// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
// Package cli implements the command bodies behind the dc3 CLI: reading an
// input string, invoking the dc3 core or dc3bench harness, and formatting
// the result. cmd/dc3/main.go stays a thin cobra wiring layer; this package
// hides the actual work, following the ariadne cmd/cli split.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kjsanders/dc3suffix/dc3"
	"github.com/kjsanders/dc3suffix/dc3bench"
)

// Options holds flags shared across dc3 subcommands.
type Options struct {
	Verbose bool
}

// ApplyVerbose installs a stderr-writing debug logger on dc3 and dc3bench
// when opts.Verbose is set, surfacing the recursion/merge/bench trace
// events that are otherwise silenced by the zero-value zerolog.Nop()
// logger. Called once from cmd/dc3 before dispatching to a subcommand.
func ApplyVerbose(opts Options) {
	if !opts.Verbose {
		return
	}
	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	dc3.SetLogger(logger)
	dc3bench.SetLogger(logger)
}

// ReadSymbols parses whitespace-separated integers from the first line of r as
// the []int32 symbol sequence the dc3 package operates on. A bare string
// with no separators is read one byte per symbol instead, so `echo banana`
// works as well as a pre-tokenized list like `2 7 1 7 3 1`.
func ReadSymbols(r io.Reader) ([]int32, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	line := strings.TrimRight(scanner.Text(), "\r\n")
	if line == "" {
		return nil, nil
	}

	fields := strings.Fields(line)
	if len(fields) > 1 {
		out := make([]int32, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("cli: parsing symbol %q: %w", f, err)
			}
			out[i] = int32(v)
		}
		return out, nil
	}

	out := make([]int32, len(line))
	for i := 0; i < len(line); i++ {
		out[i] = int32(line[i])
	}
	return out, nil
}

// RunSuffixArray prints the SA and LCP array of the symbols read from in.
func RunSuffixArray(in io.Reader, out io.Writer) error {
	s, err := ReadSymbols(in)
	if err != nil {
		return fmt.Errorf("cli: reading input: %w", err)
	}

	sa, err := dc3.SuffixArray(s)
	if err != nil {
		return fmt.Errorf("cli: computing suffix array: %w", err)
	}
	rank := dc3.ReverseSuffixArray(sa)
	lcp, err := dc3.LCPArray(s, sa, rank)
	if err != nil {
		return fmt.Errorf("cli: computing LCP array: %w", err)
	}

	fmt.Fprintf(out, "SA:  %v\n", sa)
	fmt.Fprintf(out, "LCP: %v\n", lcp)
	return nil
}

// RunLPF prints the LPF array of the symbols read from in.
func RunLPF(in io.Reader, out io.Writer) error {
	s, err := ReadSymbols(in)
	if err != nil {
		return fmt.Errorf("cli: reading input: %w", err)
	}

	lpf, err := dc3.LPFArray(s)
	if err != nil {
		return fmt.Errorf("cli: computing LPF array: %w", err)
	}

	fmt.Fprintf(out, "LPF: %v\n", lpf)
	return nil
}

// BenchConfig holds the flags for the bench subcommand.
type BenchConfig struct {
	Mode         string
	Length       int
	Tries        int
	AlphabetSize int
	Seed         int64
}

// RunBench runs the dc3bench harness and writes a CSV report to out.
func RunBench(cfg BenchConfig, out io.Writer) error {
	mode := dc3bench.Mode(cfg.Mode)
	if mode != dc3bench.ModeSuffixArray && mode != dc3bench.ModeLPF {
		return fmt.Errorf("cli: unknown bench mode %q (want \"sa\" or \"lpf\")", cfg.Mode)
	}

	results, err := dc3bench.Run(dc3bench.Config{
		Mode:         mode,
		Length:       cfg.Length,
		Tries:        cfg.Tries,
		AlphabetSize: cfg.AlphabetSize,
		Rand:         rand.New(rand.NewSource(cfg.Seed)),
	})
	if err != nil {
		return fmt.Errorf("cli: running benchmark: %w", err)
	}

	if err := dc3bench.Report(out, results); err != nil {
		return fmt.Errorf("cli: writing report: %w", err)
	}
	return nil
}

// ValidateConfig holds the flags for the validate subcommand.
type ValidateConfig struct {
	Mode         string
	Length       int
	Tries        int
	AlphabetSize int
	Seed         int64
}

// RunValidate cross-checks the dc3 core against the naive oracles and
// reports the outcome to out. It returns a non-nil error on the first
// mismatch found, which callers should turn into a non-zero exit code.
func RunValidate(cfg ValidateConfig, out io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := dc3.Validate(cfg.Mode, cfg.Length, cfg.Tries, cfg.AlphabetSize, rng); err != nil {
		return fmt.Errorf("cli: validation failed: %w", err)
	}
	fmt.Fprintf(out, "ok: %d trials of mode %q agreed with the naive oracle\n", cfg.Tries, cfg.Mode)
	return nil
}

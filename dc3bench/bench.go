// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
// Package dc3bench times repeated SA/LPF construction over randomly
// generated alphabets and reports the results as CSV, the external
// collaborator named but left unspecified by the suffix/LCP/LPF core.
package dc3bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/kjsanders/dc3suffix/dc3"
)

// Mode selects which construction a Run times.
type Mode string

const (
	ModeSuffixArray Mode = "sa"
	ModeLPF         Mode = "lpf"
)

var logger = zerolog.Nop()

// SetLogger installs a logger for bench progress events.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Config controls a benchmark run.
type Config struct {
	Mode         Mode
	Length       int
	Tries        int
	AlphabetSize int
	Rand         *rand.Rand
}

// Result is one trial's timing, reported as a CSV row by Report.
type Result struct {
	Trial    int
	Length   int
	Elapsed  time.Duration
	NanosPer float64
}

// Run executes cfg.Tries independent trials, each over a freshly generated
// random string of cfg.Length symbols drawn from [1, cfg.AlphabetSize], and
// returns one Result per trial. Construction itself stays single-threaded
// within each trial so timings are comparable across trials.
func Run(cfg Config) ([]Result, error) {
	if cfg.Tries <= 0 {
		return nil, fmt.Errorf("dc3bench: tries must be positive, got %d", cfg.Tries)
	}
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("dc3bench: length must be positive, got %d", cfg.Length)
	}
	if cfg.AlphabetSize <= 0 {
		return nil, fmt.Errorf("dc3bench: alphabet size must be positive, got %d", cfg.AlphabetSize)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	results := make([]Result, cfg.Tries)
	for trial := 0; trial < cfg.Tries; trial++ {
		s := make([]int32, cfg.Length)
		for i := range s {
			s[i] = int32(rng.Intn(cfg.AlphabetSize)) + 1
		}

		logger.Debug().Int("trial", trial).Int("length", cfg.Length).Str("mode", string(cfg.Mode)).Msg("bench trial starting")

		start := time.Now()
		if err := runOnce(cfg.Mode, s); err != nil {
			return nil, fmt.Errorf("dc3bench: trial %d: %w", trial, err)
		}
		elapsed := time.Since(start)

		results[trial] = Result{
			Trial:    trial,
			Length:   cfg.Length,
			Elapsed:  elapsed,
			NanosPer: float64(elapsed.Nanoseconds()) / float64(cfg.Length),
		}
	}
	return results, nil
}

func runOnce(mode Mode, s []int32) error {
	switch mode {
	case ModeSuffixArray:
		_, err := dc3.SuffixArray(s)
		return err
	case ModeLPF:
		_, err := dc3.LPFArray(s)
		return err
	default:
		return fmt.Errorf("dc3bench: unknown mode %q", mode)
	}
}

// Report writes results as CSV (trial, length, elapsed_ns, ns_per_symbol) to w.
func Report(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"trial", "length", "elapsed_ns", "ns_per_symbol"}); err != nil {
		return fmt.Errorf("dc3bench: writing header: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Trial),
			strconv.Itoa(r.Length),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(r.NanosPer, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("dc3bench: writing row %d: %w", r.Trial, err)
		}
	}
	return cw.Error()
}

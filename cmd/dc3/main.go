// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
// Package main provides the dc3 CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kjsanders/dc3suffix/cli"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "dc3",
		Short: "Linear-time suffix array, LCP array, and LPF array construction",
		Long: `dc3 builds the Suffix Array, LCP array, and Longest Previous Factor array
of an input string using the DC3/Skew algorithm and Kasai's algorithm.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.ApplyVerbose(cli.Options{Verbose: verbose})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log DC3 recursion/merge/bench trace events to stderr")

	rootCmd.AddCommand(saCmd())
	rootCmd.AddCommand(lpfCmd())
	rootCmd.AddCommand(benchCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func saCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sa",
		Short: "Print the suffix array and LCP array of a string read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSuffixArray(os.Stdin, os.Stdout)
		},
	}
}

func lpfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lpf",
		Short: "Print the LPF array of a string read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunLPF(os.Stdin, os.Stdout)
		},
	}
}

func benchCmd() *cobra.Command {
	var length, tries, alphabet int
	var seed int64

	cmd := &cobra.Command{
		Use:       "bench {sa|lpf}",
		Short:     "Time repeated SA/LPF construction over random strings and report CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sa", "lpf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunBench(cli.BenchConfig{
				Mode:         args[0],
				Length:       length,
				Tries:        tries,
				AlphabetSize: alphabet,
				Seed:         seed,
			}, os.Stdout)
		},
	}

	cmd.Flags().IntVar(&length, "length", 1000, "length of each random test string")
	cmd.Flags().IntVar(&tries, "tries", 10, "number of trials to run")
	cmd.Flags().IntVar(&alphabet, "alphabet", 4, "alphabet size, symbols drawn from 1..alphabet")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func validateCmd() *cobra.Command {
	var length, tries, alphabet int
	var seed int64

	cmd := &cobra.Command{
		Use:       "validate {sa|lpf}",
		Short:     "Cross-check the DC3/Kasai/LPF implementation against a naive oracle",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sa", "lpf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(cli.ValidateConfig{
				Mode:         args[0],
				Length:       length,
				Tries:        tries,
				AlphabetSize: alphabet,
				Seed:         seed,
			}, os.Stdout)
		},
	}

	cmd.Flags().IntVar(&length, "length", 200, "length of each random test string")
	cmd.Flags().IntVar(&tries, "tries", 20, "number of trials to run")
	cmd.Flags().IntVar(&alphabet, "alphabet", 4, "alphabet size, symbols drawn from 1..alphabet")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

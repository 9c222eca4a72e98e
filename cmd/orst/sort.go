package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-orst/internal/flags"
	"github.com/ajroetker/go-orst/orst"
	"github.com/ajroetker/go-orst/orst/contrib/workerpool"
)

// errInvalidNumber indicates an input token that is not a number.
var errInvalidNumber = errors.New("invalid number")

func newSortCommand() *cobra.Command {
	sortCmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values given as arguments or on stdin",
		Long: "\nSort whitespace-separated values given as arguments, or read from stdin when no\n" +
			"arguments are given. Values are numbers unless --strings is set.",
		RunE: runSort,
	}

	flags.RegisterSortFlags(sortCmd)

	return sortCmd
}

func runSort(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	rawAlgorithm, _ := fs.GetString("algorithm")
	workers, _ := fs.GetInt("workers")
	asStrings, _ := fs.GetBool("strings")
	withStats, _ := fs.GetBool("stats")

	alg, err := orst.ParseAlgorithm(rawAlgorithm)
	if err != nil {
		return err
	}

	tokens, err := inputTokens(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	sorter := alg.Sorter()
	if alg == orst.ParallelQuick {
		pool := workerpool.New(workers)
		defer pool.Close()

		sorter = orst.ParallelQuickSort{Pool: pool}
	}

	var (
		data   sort.Interface
		format func() []string
	)

	if asStrings {
		data = orst.Slice[string](tokens)
		format = func() []string { return tokens }
	} else {
		numbers, err := parseNumbers(tokens)
		if err != nil {
			return err
		}

		data = orst.Slice[float64](numbers)
		format = func() []string {
			return lo.Map(numbers, func(v float64, _ int) string {
				return strconv.FormatFloat(v, 'g', -1, 64)
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"elements":  data.Len(),
		"strings":   asStrings,
	}).Debug("Sorting input")

	var counter *orst.Counter
	if withStats {
		counter = orst.Instrument(data)
		data = counter
	}

	orst.Sort(data, sorter)

	if counter != nil {
		logrus.WithFields(logrus.Fields{
			"algorithm":   alg.String(),
			"elements":    counter.Len(),
			"comparisons": counter.Comparisons(),
			"swaps":       counter.Swaps(),
		}).Info("Sort statistics")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(format(), " "))

	return err
}

// inputTokens splits args on whitespace, or reads whitespace-separated words
// from r when there are no args.
func inputTokens(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return lo.FlatMap(args, func(arg string, _ int) []string {
			return strings.Fields(arg)
		}), nil
	}

	var tokens []string

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return tokens, nil
}

func parseNumbers(tokens []string) ([]float64, error) {
	numbers := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidNumber, tok)
		}

		numbers = append(numbers, v)
	}

	return numbers, nil
}

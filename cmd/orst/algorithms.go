package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-orst/orst"
)

var algorithmNotes = map[orst.Algorithm]string{
	orst.Quick:         "first-element pivot, O(n log n) average, O(n²) on sorted input",
	orst.Insertion:     "stable, O(n) on sorted input, O(n²) otherwise",
	orst.Selection:     "always n(n-1)/2 comparisons, not stable",
	orst.ParallelQuick: "quick sort with partitions sorted on a worker pool",
}

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available sorting algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title := cases.Title(language.English)
			out := cmd.OutOrStdout()

			for _, alg := range append(orst.Algorithms(), orst.ParallelQuick) {
				name := title.String(strings.ReplaceAll(alg.String(), "-", " ")) + " Sort"
				if _, err := fmt.Fprintf(out, "%-16s %-20s %s\n", alg, name, algorithmNotes[alg]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

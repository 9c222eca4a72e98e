package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-orst/internal/flags"
	"github.com/ajroetker/go-orst/strsplit"
)

// errRuneDelimiter indicates --rune was given a delimiter that is not exactly
// one rune long.
var errRuneDelimiter = errors.New("delimiter must be exactly one rune")

func newSplitCommand() *cobra.Command {
	splitCmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text on a delimiter, one piece per line",
		Long: "\nSplit the arguments, joined by single spaces, or stdin when no arguments are\n" +
			"given. A trailing newline on stdin is not part of the text.",
		RunE: runSplit,
	}

	flags.RegisterSplitFlags(splitCmd)

	return splitCmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	rawDelimiter, _ := fs.GetString("delimiter")
	asRune, _ := fs.GetBool("rune")
	firstOnly, _ := fs.GetBool("first")

	text, err := inputText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var delimiter strsplit.Delimiter = strsplit.String(rawDelimiter)
	if asRune {
		if utf8.RuneCountInString(rawDelimiter) != 1 {
			return fmt.Errorf("%w: %q", errRuneDelimiter, rawDelimiter)
		}

		r, _ := utf8.DecodeRuneInString(rawDelimiter)

		delimiter, err = strsplit.NewRune(r)
		if err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"delimiter": rawDelimiter,
		"rune":      asRune,
		"bytes":     len(text),
	}).Debug("Splitting input")

	out := cmd.OutOrStdout()

	if firstOnly {
		var first string
		if r, ok := delimiter.(strsplit.Rune); ok {
			first = strsplit.UntilRune(text, rune(r))
		} else {
			first, _ = strsplit.New(text, delimiter).Next()
		}

		_, err = fmt.Fprintln(out, first)

		return err
	}

	for piece := range strsplit.New(text, delimiter).All() {
		if _, err := fmt.Fprintln(out, piece); err != nil {
			return err
		}
	}

	return nil
}

func inputText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	text := strings.TrimSuffix(string(raw), "\n")

	return strings.TrimSuffix(text, "\r"), nil
}

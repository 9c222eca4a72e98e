package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-orst/internal/flags"
)

// NewRootCommand builds the orst command tree.
func NewRootCommand() *cobra.Command {
	flags.SetDefaults()

	rootCmd := &cobra.Command{
		Use:   "orst",
		Short: "Sort and split input with classic textbook algorithms",
		Long: "\norst sorts numbers or strings in place with insertion, selection or quick sort,\n" +
			"and splits text lazily on a delimiter.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return flags.SetupLogging(cmd.Flags())
		},
	}

	flags.RegisterSystemFlags(rootCmd)

	rootCmd.AddCommand(
		newSortCommand(),
		newSplitCommand(),
		newAlgorithmsCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Fatal("Failed to execute command")
	}
}

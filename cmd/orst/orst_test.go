package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-orst/orst"
)

// runCLI executes the command tree with args and stdin, returning stdout.
func runCLI(stdin string, args ...string) (string, error) {
	var stdout bytes.Buffer

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()

	return stdout.String(), err
}

var _ = ginkgo.Describe("orst", func() {
	var logs *bytes.Buffer

	ginkgo.BeforeEach(func() {
		logs = &bytes.Buffer{}
		originalOut := logrus.StandardLogger().Out
		originalLevel := logrus.GetLevel()
		logrus.SetOutput(logs)
		ginkgo.DeferCleanup(func() {
			logrus.SetOutput(originalOut)
			logrus.SetLevel(originalLevel)
		})
	})

	ginkgo.Describe("sort", func() {
		ginkgo.It("sorts numeric arguments with every algorithm", func() {
			for _, alg := range append(orst.Algorithms(), orst.ParallelQuick) {
				out, err := runCLI("", "sort", "-a", alg.String(), "4", "2", "3", "1")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(out).To(gomega.Equal("1 2 3 4\n"), "algorithm %s", alg)
			}
		})

		ginkgo.It("splits quoted arguments on whitespace", func() {
			out, err := runCLI("", "sort", "7 3 1 9 4", "2 8 5 6 10")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("1 2 3 4 5 6 7 8 9 10\n"))
		})

		ginkgo.It("reads stdin when no arguments are given", func() {
			out, err := runCLI("2.5\n-1\n 0 1e3\n", "sort", "--algorithm", "selection")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("-1 0 2.5 1000\n"))
		})

		ginkgo.It("sorts strings lexically", func() {
			out, err := runCLI("", "sort", "--strings", "pear", "apple", "fig", "10", "9")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("10 9 apple fig pear\n"))
		})

		ginkgo.It("handles empty input", func() {
			out, err := runCLI("", "sort")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("\n"))
		})

		ginkgo.It("logs comparison and swap counts with --stats", func() {
			out, err := runCLI("", "sort", "-a", "insertion", "--stats", "1", "2", "3", "4", "5")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("1 2 3 4 5\n"))
			gomega.Expect(logs.String()).To(gomega.ContainSubstring("comparisons=4"))
			gomega.Expect(logs.String()).To(gomega.ContainSubstring("swaps=0"))
		})

		ginkgo.It("rejects non-numeric input", func() {
			_, err := runCLI("", "sort", "1", "two", "3")
			gomega.Expect(err).To(gomega.MatchError(errInvalidNumber))
		})

		ginkgo.It("rejects unknown algorithms", func() {
			_, err := runCLI("", "sort", "-a", "bogo", "1")
			gomega.Expect(err).To(gomega.MatchError(orst.ErrUnknownAlgorithm))
		})

		ginkgo.It("takes the default algorithm from ORST_ALGORITHM", func() {
			gomega.Expect(os.Setenv("ORST_ALGORITHM", "bogus")).To(gomega.Succeed())
			ginkgo.DeferCleanup(os.Unsetenv, "ORST_ALGORITHM")

			_, err := runCLI("", "sort", "1")
			gomega.Expect(err).To(gomega.MatchError(orst.ErrUnknownAlgorithm))
		})
	})

	ginkgo.Describe("split", func() {
		ginkgo.It("prints one piece per line", func() {
			out, err := runCLI("", "split", "a b c d e")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("a\nb\nc\nd\ne\n"))
		})

		ginkgo.It("keeps empty pieces", func() {
			out, err := runCLI("", "split", "-d", ",", "a,,b,")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("a\n\nb\n\n"))
		})

		ginkgo.It("splits on a multi-byte rune", func() {
			out, err := runCLI("α→β→γ\n", "split", "--rune", "-d", "→")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("α\nβ\nγ\n"))
		})

		ginkgo.It("prints only the first piece with --first", func() {
			out, err := runCLI("", "split", "--rune", "--first", "-d", "o", "hello world")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("hell\n"))

			out, err = runCLI("", "split", "--first", "-d", "lo", "hello world")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("hel\n"))
		})

		ginkgo.It("rejects a multi-rune delimiter with --rune", func() {
			_, err := runCLI("", "split", "--rune", "-d", "ab", "x")
			gomega.Expect(err).To(gomega.MatchError(errRuneDelimiter))
		})
	})

	ginkgo.Describe("algorithms", func() {
		ginkgo.It("lists every algorithm", func() {
			out, err := runCLI("", "algorithms")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(strings.Split(strings.TrimSpace(out), "\n")).To(gomega.HaveLen(4))
			gomega.Expect(out).To(gomega.ContainSubstring("Parallel Quick Sort"))
			gomega.Expect(out).To(gomega.ContainSubstring("Insertion Sort"))
		})
	})

	ginkgo.Describe("logging flags", func() {
		ginkgo.It("rejects an unknown log format", func() {
			_, err := runCLI("", "--log-format", "xml", "algorithms")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("applies the log level", func() {
			_, err := runCLI("", "--log-level", "debug", "sort", "3", "1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(logrus.GetLevel()).To(gomega.Equal(logrus.DebugLevel))
			gomega.Expect(logs.String()).To(gomega.ContainSubstring("Sorting input"))
		})
	})
})

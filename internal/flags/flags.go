package flags

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// errInvalidLogFormat indicates an unsupported --log-format value.
var errInvalidLogFormat = errors.New("invalid log format specified")

// errInvalidLogLevel indicates an unsupported --log-level value.
var errInvalidLogLevel = errors.New("invalid log level specified")

// errReadFlagFailed indicates a flag could not be read from the flag set.
var errReadFlagFailed = errors.New("failed to read flag value")

// SetDefaults enables environment lookup and sets fallback values for every
// ORST_* variable.
func SetDefaults() {
	viper.AutomaticEnv()
	viper.SetDefault("ORST_ALGORITHM", "quick")
	viper.SetDefault("ORST_WORKERS", runtime.GOMAXPROCS(0))
	viper.SetDefault("ORST_LOG_LEVEL", "info")
	viper.SetDefault("ORST_LOG_FORMAT", "auto")
}

// RegisterSystemFlags adds the logging flags shared by every subcommand.
func RegisterSystemFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.String(
		"log-level",
		envString("ORST_LOG_LEVEL"),
		"The maximum log level that will be written to STDERR. Possible values: panic, fatal, error, warn, info, debug or trace")

	flags.String(
		"log-format",
		envString("ORST_LOG_FORMAT"),
		"Sets what logging format to use for console output. Possible values: Auto, LogFmt, Pretty, JSON")

	// https://no-color.org/
	flags.Bool(
		"no-color",
		viper.IsSet("NO_COLOR"),
		"Disable ANSI color escape codes in log output")
}

// RegisterSortFlags adds the flags of the sort subcommand.
func RegisterSortFlags(sortCmd *cobra.Command) {
	flags := sortCmd.Flags()

	flags.StringP(
		"algorithm",
		"a",
		envString("ORST_ALGORITHM"),
		"Sorting algorithm to use. Possible values: quick, insertion, selection, parallel-quick")

	flags.IntP(
		"workers",
		"w",
		envInt("ORST_WORKERS"),
		"Number of workers used by parallel-quick")

	flags.BoolP(
		"strings",
		"s",
		false,
		"Sort the input as strings instead of numbers")

	flags.Bool(
		"stats",
		false,
		"Log the number of comparisons and swaps performed")
}

// RegisterSplitFlags adds the flags of the split subcommand.
func RegisterSplitFlags(splitCmd *cobra.Command) {
	flags := splitCmd.Flags()

	flags.StringP(
		"delimiter",
		"d",
		" ",
		"Delimiter separating the pieces")

	flags.BoolP(
		"rune",
		"r",
		false,
		"Treat the delimiter as a single rune")

	flags.Bool(
		"first",
		false,
		"Only print the piece before the first delimiter")
}

// envString binds key to the environment and returns its value.
func envString(key string) string {
	viper.MustBindEnv(key)

	return viper.GetString(key)
}

// envInt binds key to the environment and returns its value.
func envInt(key string) int {
	viper.MustBindEnv(key)

	return viper.GetInt(key)
}

// SetupLogging configures the logrus formatter and level from flags.
func SetupLogging(flags *pflag.FlagSet) error {
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return fmt.Errorf("%w: %w", errReadFlagFailed, err)
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return fmt.Errorf("%w: %w", errReadFlagFailed, err)
	}

	if err := configureLogFormat(logFormat, noColor); err != nil {
		return err
	}

	rawLogLevel, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("%w: %w", errReadFlagFailed, err)
	}

	logLevel, err := logrus.ParseLevel(rawLogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidLogLevel, err)
	}

	logrus.SetLevel(logLevel)

	return nil
}

// configureLogFormat sets the logrus formatter for the given format name.
func configureLogFormat(logFormat string, noColor bool) error {
	switch strings.ToLower(logFormat) {
	case "auto":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:             noColor,
			EnvironmentOverrideColors: true,
		})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "logfmt":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "pretty":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !noColor,
			FullTimestamp: false,
		})
	default:
		return fmt.Errorf("%w: %s", errInvalidLogFormat, logFormat)
	}

	return nil
}

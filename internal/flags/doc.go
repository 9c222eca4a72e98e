// Package flags registers the orst command-line flags, binds their defaults
// to ORST_* environment variables through viper, and configures logrus from
// the parsed values.
package flags

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Quiet      bool
}

var globalFlags GlobalFlags

// CopyFlags holds the copy flags of the root command
type CopyFlags struct {
	Replace  []string
	Ignore   string
	Output   string
	Progress bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var copyFlags CopyFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/templa/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress per-entry output",
	)
}

// addCopyFlags registers the flags that drive a copy run
func addCopyFlags(flags *pflag.FlagSet) {
	flags.StringArrayVarP(&copyFlags.Replace, "replace", "r", nil, "substitution FROM=TO applied to names and text (repeatable)")
	flags.StringVarP(&copyFlags.Ignore, "ignore", "i", "", "';'-separated wildcard patterns to skip (replaces the configured list)")
	flags.StringVarP(&copyFlags.Output, "output", "o", "human", "output format: human, json")
	flags.BoolVar(&copyFlags.Progress, "progress", false, "show a progress bar on stderr")

	// Logging flags
	flags.StringVar(&copyFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	flags.StringVar(&copyFlags.LogFormat, "log-format", "text", "log format: text, json")
	flags.StringVar(&copyFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

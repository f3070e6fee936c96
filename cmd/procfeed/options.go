package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CommandLineOptions contains all command line options
type CommandLineOptions struct {
	ConfigName string
	ConfigDir  string
	LogLevel   string
}

// Bind registers the options as persistent flags of cmd
func (o *CommandLineOptions) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigName, "config-name", "procfeed_config", "Configuration file name without extension")
	flags.StringVar(&o.ConfigDir, "config-dir", "", "Directory searched for the configuration file before the built-in config directory")
	flags.StringVar(&o.LogLevel, "log-level", "", "Log level (overrides logging.level)")
}

// Print logs the current command line options
func (o CommandLineOptions) Print(log *zerolog.Logger) {
	log.Info().
		Str("config_name", o.ConfigName).
		Str("config_dir", o.ConfigDir).
		Str("log_level", o.LogLevel).
		Msg("command line options")
}

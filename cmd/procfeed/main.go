package main

import (
	"fmt"
	"os"

	"github.com/Gthulhu/procfeed/config"
	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/pkg/util"
	"github.com/Gthulhu/procfeed/procfeed/app"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// @title ProcFeed API
// @version 1.0
// @description Process list snapshots with a live feed of newly observed processes
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := CommandLineOptions{}
	rootCmd := &cobra.Command{
		Use:           "procfeed",
		Short:         "Process list snapshots with a live feed of newly observed processes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	options.Bind(rootCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(options)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and machine id",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "procfeed %s (machine %s)\n", version, util.GetMachineID())
		},
	})
	return rootCmd
}

func runServe(options CommandLineOptions) error {
	cfg, err := config.InitConfig(options.ConfigName, options.ConfigDir)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if options.LogLevel != "" {
		level = options.LogLevel
	}
	log := logger.InitLogger(level)
	options.Print(log)

	restApp, err := app.NewRestApp(options.ConfigName, options.ConfigDir)
	if err != nil {
		return err
	}
	restApp.Run()
	return restApp.Err()
}

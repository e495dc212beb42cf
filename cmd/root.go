package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
)

var logLevel string // Log verbosity level; overrides log_level from the config file

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpu-scheduler",
	Short: "Discrete-event simulator for classic CPU scheduling algorithms",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(config.GetSchedulerConfig())
	},
}

// setupLogging applies --log, falling back to the configured level.
func setupLogging(cfg *config.SchedulerConfig) error {
	name := cfg.LogLevel
	if logLevel != "" {
		name = logLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config", "", "Path to the config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(generateCmd)
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pastedown/pastedown/internal/logging"
)

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter logs + debug level")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info for service, debug for interactive)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads the logging flags and configures slog.
func setupLogging(cmd *cobra.Command) {
	noBackground, _ := cmd.Flags().GetBool("no-background")
	format, _ := cmd.Flags().GetString("log-format")
	level, _ := cmd.Flags().GetString("log-level")
	interactive := noBackground || logging.IsTTY(os.Stderr)
	resolveLogging(interactive, format, level)
}

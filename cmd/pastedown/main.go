// pastedown: clipboard-to-document conversion on a hotkey.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pastedown/pastedown/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "pastedown",
		Short: "Convert clipboard content into the foreground document",
		Long: `pastedown watches a global hotkey. On each press it classifies the
clipboard (markdown, HTML, pipe table, or files), detects the foreground
application, converts the content with pandoc, and places the result: a
scripted insert into Word/WPS Writer, a cell-range paste into Excel/WPS
Spreadsheets, or a generated file when no known target is active. The
original clipboard contents are restored after every paste.

Run "pastedown run" to start the service. "pastedown trigger" pokes a
running service over its local control socket.

Config file: $PASTEDOWN_CONFIG_DIR/pastedown.yaml, default
$HOME/.config/pastedown/pastedown.yaml. All keys can be overridden via
PASTEDOWN_<KEY> env vars.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newTriggerCmd(),
		newDoctorCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pastedown %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}

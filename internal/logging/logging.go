// Package logging configures the global slog logger for the pastedown binary.
// The service usually runs detached from a terminal, so the default output is
// JSON for log collectors; an interactive run gets tinted human output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format selects the log output format.
type Format string

const (
	FormatAuto Format = "auto" // tinted on a TTY, JSON otherwise
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format. Unknown values fall back to
// FormatAuto rather than erroring; a bad flag value should not keep the
// hotkey service from starting.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	}
	return FormatAuto
}

// ParseLevel converts a string to a slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Setup installs the global slog logger on stderr. Call once after flag
// parsing. NO_COLOR forces the plain JSON handler even on a TTY.
func Setup(format Format, level slog.Level) {
	w := os.Stderr
	tinted := format == FormatText || (format == FormatAuto && IsTTY(w))
	if os.Getenv("NO_COLOR") != "" {
		tinted = false
	}

	var h slog.Handler
	if tinted {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(h))
}

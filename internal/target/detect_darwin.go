//go:build darwin

package target

import (
	"log/slog"
	"os/exec"
	"strings"
)

type darwinDetector struct{}

// NewDetector returns the macOS foreground-application detector. It reads
// the frontmost process's bundle identifier and window title through System
// Events; both queries degrade to empty values on script failure.
func NewDetector() Detector { return &darwinDetector{} }

func (d *darwinDetector) Detect() Identity {
	script := `tell application "System Events" to get bundle identifier of first application process whose frontmost is true`
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		slog.Debug("frontmost bundle id query failed", "err", err)
		return None
	}
	bundle := strings.TrimSpace(string(out))
	if bundle == "" {
		return None
	}
	return FromProcess(bundle, bundle, d.WindowTitle())
}

func (d *darwinDetector) WindowTitle() string {
	script := `tell application "System Events" to get name of front window of (first application process whose frontmost is true)`
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

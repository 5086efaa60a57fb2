//go:build darwin

package notify

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

type centerNotifier struct{}

// New returns the macOS notifier, posting through Notification Center via
// osascript.
func New() Notifier { return centerNotifier{} }

func (centerNotifier) Notify(title, message string) {
	script := fmt.Sprintf("display notification %q with title %q",
		sanitize(message), sanitize(title))
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		slog.Warn("notification delivery failed", "err", err)
	}
}

func sanitize(s string) string {
	return strings.NewReplacer("\"", "'", "\\", "").Replace(s)
}

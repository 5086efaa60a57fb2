//go:build windows

package notify

import (
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
)

const toastScript = `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = @"
<toast><visual><binding template="ToastText02"><text id="1">{TITLE}</text><text id="2">{MESSAGE}</text></binding></visual></toast>
"@
$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml($template)
$toast = New-Object Windows.UI.Notifications.ToastNotification $xml
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier("pastedown").Show($toast)
`

type toastNotifier struct{}

// New returns the Windows notifier, posting toast notifications through
// PowerShell and the WinRT notification API.
func New() Notifier { return toastNotifier{} }

func (toastNotifier) Notify(title, message string) {
	script := strings.NewReplacer(
		"{TITLE}", xmlEscape(title),
		"{MESSAGE}", xmlEscape(message),
	).Replace(toastScript)

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	if err := cmd.Run(); err != nil {
		slog.Warn("notification delivery failed", "err", err)
	}
}

func xmlEscape(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
	).Replace(s)
}

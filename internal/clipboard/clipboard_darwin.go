//go:build darwin

package clipboard

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"golang.design/x/clipboard"
)

// Synthetic format ids used for darwin snapshots; the pasteboard is
// addressed by type name, not numeric format.
const (
	darwinFmtText  = "public.utf8-plain-text"
	darwinFmtHTML  = "public.html"
	darwinFmtRTF   = "public.rtf"
	darwinFmtFiles = "public.file-url"
)

type darwinBackend struct{}

// New returns the macOS clipboard backend. Plain text goes through
// golang.design/x/clipboard; HTML, RTF and file lists ride osascript since
// they have no portable API.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
	}
	return &darwinBackend{}
}

func (b *darwinBackend) Name() string { return "macOS NSPasteboard" }

func (b *darwinBackend) ReadText() (string, bool) {
	data := clipboard.Read(clipboard.FmtText)
	if data == nil {
		return "", false
	}
	return string(data), true
}

func (b *darwinBackend) ReadHTML() (string, bool) {
	out, err := runOsascript(`the clipboard as «class HTML»`)
	if err != nil {
		return "", false
	}
	html, ok := decodeHexData(out)
	if !ok {
		return "", false
	}
	// Strip surrounding document boilerplate down to the fragment when the
	// producer used CF_HTML-style markers.
	if frag, err := DecodeCFHTML([]byte(html)); err == nil {
		return frag, true
	}
	return html, true
}

func (b *darwinBackend) ReadFiles() ([]string, bool) {
	script := `
set out to ""
tell application "System Events"
	repeat with f in (the clipboard as list)
		try
			set out to out & (POSIX path of f) & linefeed
		end try
	end repeat
end tell
return out`
	out, err := runOsascript(script)
	if err != nil {
		return nil, false
	}
	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	if len(paths) == 0 {
		return nil, false
	}
	return paths, true
}

func (b *darwinBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *darwinBackend) WriteRich(r Rich) error {
	if r.HTML != "" {
		script := fmt.Sprintf(`set the clipboard to {«class HTML»:«data HTML%x», string:%s}`,
			[]byte(r.HTML), osascriptString(r.Text))
		if _, err := runOsascript(script); err != nil {
			return &Error{Op: "write html", Err: err}
		}
		return nil
	}
	if len(r.RTF) > 0 {
		script := fmt.Sprintf(`set the clipboard to {«class RTF »:«data RTF %x», string:%s}`,
			r.RTF, osascriptString(r.Text))
		if _, err := runOsascript(script); err != nil {
			return &Error{Op: "write rtf", Err: err}
		}
		return nil
	}
	return b.WriteText(r.Text)
}

func (b *darwinBackend) WriteFiles(paths []string) error {
	if len(paths) == 0 {
		return &Error{Op: "write files", Err: fmt.Errorf("empty path list")}
	}
	var items []string
	for _, p := range paths {
		items = append(items, fmt.Sprintf("(POSIX file %s)", osascriptString(p)))
	}
	script := fmt.Sprintf(`set the clipboard to {%s}`, strings.Join(items, ", "))
	if _, err := runOsascript(script); err != nil {
		return &Error{Op: "write files", Err: err}
	}
	return nil
}

// Snapshot captures the formats the pasteboard round-trips reliably from
// script: text, HTML and RTF. Exotic promise-based types are best-effort
// out of scope, per the restore contract.
func (b *darwinBackend) Snapshot() (*Snapshot, error) {
	var s Snapshot
	if text, ok := b.ReadText(); ok {
		s.entries = append(s.entries, snapEntry{name: darwinFmtText, data: []byte(text)})
	}
	if out, err := runOsascript(`the clipboard as «class HTML»`); err == nil {
		if html, ok := decodeHexData(out); ok {
			s.entries = append(s.entries, snapEntry{name: darwinFmtHTML, data: []byte(html)})
		}
	}
	if out, err := runOsascript(`the clipboard as «class RTF »`); err == nil {
		if rtf, ok := decodeHexData(out); ok {
			s.entries = append(s.entries, snapEntry{name: darwinFmtRTF, data: []byte(rtf)})
		}
	}
	return &s, nil
}

func (b *darwinBackend) Restore(s *Snapshot) {
	if s == nil {
		return
	}
	var text, html string
	var rtf []byte
	for _, e := range s.entries {
		switch e.name {
		case darwinFmtText:
			text = string(e.data)
		case darwinFmtHTML:
			html = string(e.data)
		case darwinFmtRTF:
			rtf = append([]byte(nil), e.data...)
		}
	}
	switch {
	case html != "":
		if err := b.WriteRich(Rich{HTML: html, Text: text}); err != nil {
			slog.Debug("clipboard html restore failed", "err", err)
			_ = b.WriteText(text)
		}
	case len(rtf) > 0:
		if err := b.WriteRich(Rich{RTF: rtf, Text: text}); err != nil {
			slog.Debug("clipboard rtf restore failed", "err", err)
			_ = b.WriteText(text)
		}
	default:
		_ = b.WriteText(text)
	}
}

// Paste sends a single Cmd+V through System Events.
func (b *darwinBackend) Paste() error {
	script := `tell application "System Events" to keystroke "v" using command down`
	if _, err := runOsascript(script); err != nil {
		return &Error{Op: "paste", Err: err}
	}
	return nil
}

func (b *darwinBackend) Close() {}

func runOsascript(script string) (string, error) {
	cmd := exec.Command("osascript", "-e", script)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodeHexData parses osascript's «data TYPExxxx» literal output into the
// raw payload string.
func decodeHexData(out string) (string, bool) {
	out = strings.TrimSpace(out)
	i := strings.Index(out, "«data ")
	if i < 0 {
		return "", false
	}
	hexPart := out[i+len("«data "):]
	if j := strings.Index(hexPart, "»"); j >= 0 {
		hexPart = hexPart[:j]
	}
	if len(hexPart) <= 4 {
		return "", false
	}
	hexPart = hexPart[4:] // skip the 4-char type code
	raw := make([]byte, 0, len(hexPart)/2)
	for k := 0; k+1 < len(hexPart); k += 2 {
		var v byte
		if _, err := fmt.Sscanf(hexPart[k:k+2], "%02X", &v); err != nil {
			return "", false
		}
		raw = append(raw, v)
	}
	return string(raw), true
}

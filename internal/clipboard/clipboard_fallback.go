//go:build !windows && !darwin

package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// fallbackBackend covers platforms without rich-format clipboard support.
// Text round-trips through github.com/atotto/clipboard; HTML, RTF and file
// lists are simply absent, and paste keystrokes are unsupported.
type fallbackBackend struct{}

// New returns the portable text-only clipboard backend.
func New() Backend { return &fallbackBackend{} }

func (b *fallbackBackend) Name() string { return "portable text clipboard" }

func (b *fallbackBackend) ReadText() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	return text, true
}

func (b *fallbackBackend) ReadHTML() (string, bool)     { return "", false }
func (b *fallbackBackend) ReadFiles() ([]string, bool)  { return nil, false }

func (b *fallbackBackend) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return &Error{Op: "write text", Err: err}
	}
	return nil
}

func (b *fallbackBackend) WriteRich(r Rich) error { return b.WriteText(r.Text) }

func (b *fallbackBackend) WriteFiles(paths []string) error {
	return &Error{Op: "write files", Err: fmt.Errorf("unsupported on this platform")}
}

func (b *fallbackBackend) Snapshot() (*Snapshot, error) {
	var s Snapshot
	if text, ok := b.ReadText(); ok {
		s.entries = append(s.entries, snapEntry{name: "text", data: []byte(text)})
	}
	return &s, nil
}

func (b *fallbackBackend) Restore(s *Snapshot) {
	if s == nil {
		return
	}
	for _, e := range s.entries {
		if e.name == "text" {
			_ = b.WriteText(string(e.data))
		}
	}
}

func (b *fallbackBackend) Paste() error {
	return &Error{Op: "paste", Err: fmt.Errorf("paste keystroke unsupported on this platform")}
}

func (b *fallbackBackend) Close() {}

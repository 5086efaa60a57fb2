// Package clipboard provides a unified interface to the system clipboard
// across platforms. Build constraints select the appropriate implementation:
//
//	clipboard_windows.go:  Windows via user32 raw format access (golang.org/x/sys)
//	clipboard_darwin.go:   macOS via golang.design/x/clipboard + osascript for rich formats
//	clipboard_fallback.go: other platforms, text-only via github.com/atotto/clipboard
//
// Reads of optional formats return (value, ok) pairs: an absent format is an
// expected condition, not an error. Errors are reserved for OS-level failures.
package clipboard

import "fmt"

// Error wraps a clipboard read/write/format-negotiation failure.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Rich is a multi-representation clipboard payload. The target application
// picks its preferred available format; Text is the universal fallback.
type Rich struct {
	HTML string // fragment, wrapped into the platform HTML format on write
	RTF  []byte
	Text string
}

// Snapshot is an opaque capture of all clipboard format entries at a point
// in time. It is created before any mutating write and consumed exactly once
// by Restore; it is never partially applied.
type Snapshot struct {
	entries []snapEntry
}

type snapEntry struct {
	format uint32 // platform format id; synthetic ids on non-Windows
	name   string // registered format name, when known
	data   []byte
}

// Len returns the number of captured format entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Backend is the capability set every platform clipboard implements.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the plain-text clipboard content. ok is false when
	// no text format is present.
	ReadText() (text string, ok bool)

	// ReadHTML returns the decoded HTML fragment (between the start/end
	// fragment markers), without platform header boilerplate.
	ReadHTML() (html string, ok bool)

	// ReadFiles returns the file paths on the clipboard, in clipboard order.
	ReadFiles() (paths []string, ok bool)

	// WriteText replaces the clipboard with plain text.
	WriteText(text string) error

	// WriteRich replaces the clipboard with the available representations
	// of r (HTML and/or RTF, plus plain text).
	WriteRich(r Rich) error

	// WriteFiles places a file-path list on the clipboard.
	WriteFiles(paths []string) error

	// Snapshot captures all formats for later restoration.
	Snapshot() (*Snapshot, error)

	// Restore re-applies a snapshot. Best-effort per format: a failure to
	// restore one format must not block restoring the rest.
	Restore(s *Snapshot)

	// Paste sends exactly one simulated paste keystroke to the foreground
	// application.
	Paste() error

	// Close releases any resources held by the backend.
	Close()
}

// IsEmpty reports whether the clipboard carries nothing actionable: no
// text, no HTML and no files.
func IsEmpty(b Backend) bool {
	if t, ok := b.ReadText(); ok && t != "" {
		return false
	}
	if _, ok := b.ReadHTML(); ok {
		return false
	}
	if p, ok := b.ReadFiles(); ok && len(p) > 0 {
		return false
	}
	return true
}

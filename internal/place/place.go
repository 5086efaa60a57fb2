// Package place delivers converted content into the target application.
// Every placer issues at most one paste keystroke per call and reports
// expected failures through Result rather than panicking; clipboard state is
// snapshotted and restored around each paste.
package place

import "github.com/pastedown/pastedown/internal/clipboard"

// Method names how content reached the target.
type Method string

const (
	MethodPaste     Method = "paste"     // clipboard write + simulated keystroke
	MethodInsert    Method = "insert"    // scripted document insertion
	MethodClipboard Method = "clipboard" // left on the clipboard, no keystroke
)

// Result is the outcome of one placement attempt. Err is set only when OK is
// false; Warnings carry non-fatal degradations (lost cell formatting, a
// skipped hyperlink).
type Result struct {
	OK       bool
	Method   Method
	Err      error
	Warnings []string
}

func failed(m Method, err error) Result { return Result{Method: m, Err: err} }

// Text pastes plain text into the foreground application, preserving the
// prior clipboard contents.
func Text(b clipboard.Backend, text string) Result {
	err := clipboard.WithPreserved(b, func() error {
		if err := b.WriteText(text); err != nil {
			return err
		}
		return clipboard.SettleThenPaste(b)
	})
	if err != nil {
		return failed(MethodPaste, err)
	}
	return Result{OK: true, Method: MethodPaste}
}

// Rich pastes a multi-format payload, letting the target pick HTML, RTF or
// plain text.
func Rich(b clipboard.Backend, r clipboard.Rich) Result {
	err := clipboard.WithPreserved(b, func() error {
		if err := b.WriteRich(r); err != nil {
			return err
		}
		return clipboard.SettleThenPaste(b)
	})
	if err != nil {
		return failed(MethodPaste, err)
	}
	return Result{OK: true, Method: MethodPaste}
}

// Files pastes a file list into the foreground application.
func Files(b clipboard.Backend, paths []string) Result {
	err := clipboard.WithPreserved(b, func() error {
		if err := b.WriteFiles(paths); err != nil {
			return err
		}
		return clipboard.SettleThenPaste(b)
	})
	if err != nil {
		return failed(MethodPaste, err)
	}
	return Result{OK: true, Method: MethodPaste}
}

// Leave replaces the clipboard with text and does not paste. Used by the
// clipboard no-app action and as the terminal fallback; deliberately not
// guarded, since the new content is the point.
func Leave(b clipboard.Backend, text string) Result {
	if err := b.WriteText(text); err != nil {
		return failed(MethodClipboard, err)
	}
	return Result{OK: true, Method: MethodClipboard}
}

// LeaveRich is Leave for multi-format payloads.
func LeaveRich(b clipboard.Backend, r clipboard.Rich) Result {
	if err := b.WriteRich(r); err != nil {
		return failed(MethodClipboard, err)
	}
	return Result{OK: true, Method: MethodClipboard}
}

package clipboard

import (
	"log/slog"
	"time"
)

// SettleDelay pads the paste keystroke that lands immediately after a
// clipboard write; some apps need the write to settle first.
const SettleDelay = 100 * time.Millisecond

// SettleThenPaste is the placer helper: short settle delay, then exactly one
// paste keystroke.
func SettleThenPaste(b Backend) error {
	time.Sleep(SettleDelay)
	return b.Paste()
}

// RestoreDelay is how long WithPreserved waits before restoring the
// snapshot. Target applications may read the clipboard asynchronously after
// receiving the paste keystroke; restoring too early can race that read.
const RestoreDelay = 250 * time.Millisecond

// WithPreserved snapshots the clipboard, runs fn, and restores the snapshot
// on every exit path (normal return, error return or panic) after
// RestoreDelay. Restoration is best-effort per format.
func WithPreserved(b Backend, fn func() error) error {
	return WithPreservedDelay(b, RestoreDelay, fn)
}

// WithPreservedDelay is WithPreserved with an explicit restore delay.
// Tests pass zero to avoid sleeping.
func WithPreservedDelay(b Backend, delay time.Duration, fn func() error) error {
	snap, err := b.Snapshot()
	if err != nil {
		return &Error{Op: "snapshot", Err: err}
	}
	defer func() {
		if delay > 0 {
			time.Sleep(delay)
		}
		b.Restore(snap)
	}()
	if err := fn(); err != nil {
		slog.Debug("guarded clipboard operation failed", "err", err)
		return err
	}
	return nil
}

package workflow

import "github.com/pastedown/pastedown/internal/notify"

// reporter enforces the one-terminal-notification-per-press contract: the
// first success or failure wins, later reports are dropped. Progress
// notices are non-terminal and pass through until a terminal report lands.
type reporter struct {
	notifier notify.Notifier
	done     bool
}

func (r *reporter) progress(title, message string) {
	if r.done {
		return
	}
	r.notifier.Notify(title, message)
}

func (r *reporter) success(title, message string) {
	if r.done {
		return
	}
	r.done = true
	r.notifier.Notify(title, message)
}

func (r *reporter) fail(title, message string) {
	if r.done {
		return
	}
	r.done = true
	r.notifier.Notify(title, message)
}

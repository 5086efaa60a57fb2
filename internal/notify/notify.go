// Package notify delivers user-facing desktop notifications.
package notify

import (
	"log/slog"
	"sync"
)

// Notifier shows one notification. Delivery is best effort; failures are
// logged, never returned, so a broken notification daemon cannot break a
// paste.
type Notifier interface {
	Notify(title, message string)
}

// Discard drops all notifications. Used when notifications are disabled in
// configuration.
type Discard struct{}

func (Discard) Notify(string, string) {}

// LogNotifier writes notifications to the log instead of the desktop.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string) {
	slog.Info("notification", "title", title, "message", message)
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

type Entry struct {
	Title   string
	Message string
}

func (r *Recorder) Notify(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Title: title, Message: message})
}

func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

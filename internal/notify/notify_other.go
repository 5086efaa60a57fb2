//go:build !windows && !darwin

package notify

// New returns the log-backed notifier; headless platforms have no desktop
// notification surface.
func New() Notifier { return LogNotifier{} }

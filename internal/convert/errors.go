package convert

import "fmt"

// stderrLogLimit caps converter diagnostics in logs; pandoc can emit
// megabytes of warnings on pathological input.
const stderrLogLimit = 4000

// Error is the one failure type the converter surfaces: any nonzero exit or
// I/O failure from the external process. Stderr carries the converter's raw
// diagnostic output.
type Error struct {
	Op     string // e.g. "markdown→docx"
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Stderr
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("convert %s: %s", e.Op, Truncate(msg, stderrLogLimit))
}

func (e *Error) Unwrap() error { return e.Err }

// Truncate shortens s to at most limit bytes, marking the cut.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...(truncated)"
}

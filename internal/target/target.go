// Package target identifies the foreground application a converted artifact
// should land in.
package target

// Identity names an insertion target. The four reserved identities map to
// fixed workflows; anything else is the lowercased raw identity (executable
// path, bundle id or process name) used by extensible workflow bindings.
// The empty identity means "no actionable foreground app".
type Identity string

const (
	Word      Identity = "word"
	WPSWriter Identity = "wps"
	Excel     Identity = "excel"
	WPSSheet  Identity = "wps_excel"
	None      Identity = ""
)

// Reserved reports whether id is one of the built-in targets.
func (id Identity) Reserved() bool {
	switch id {
	case Word, WPSWriter, Excel, WPSSheet:
		return true
	}
	return false
}

// Spreadsheet reports whether id is a spreadsheet-role target.
func (id Identity) Spreadsheet() bool { return id == Excel || id == WPSSheet }

// Detector resolves the live foreground application. Detection failures
// degrade to None / empty title; they never surface as errors because a
// press with an undetectable target still routes to the fallback workflow.
type Detector interface {
	// Detect returns the identity of the foreground application.
	Detect() Identity

	// WindowTitle returns the frontmost window's title, or "".
	WindowTitle() string
}

// Package automation drives office applications through their scripting
// interfaces: document insertion at the cursor for word processors and
// cell-range writes for spreadsheets.
package automation

import (
	"errors"
	"time"

	"github.com/pastedown/pastedown/internal/target"
)

// Timeout bounds every scripted interaction; a modal dialog in the target
// application would otherwise hang the hotkey press forever.
const Timeout = 30 * time.Second

// ErrUnsupported is returned on platforms without an application scripting
// bridge.
var ErrUnsupported = errors.New("application scripting not supported on this platform")

// CellRun is one formatted run of text inside a spreadsheet cell.
type CellRun struct {
	Text   string
	Bold   bool
	Italic bool
	Strike bool
	Code   bool
}

// Cell is one spreadsheet cell to write: the plain value, optional rich
// runs covering the full value, an optional whole-cell hyperlink, and
// whether the code-cell shading applies.
type Cell struct {
	Text     string
	Runs     []CellRun
	Link     string
	CodeFill bool
}

// Scripter drives the frontmost office application: document insertion at
// the cursor for word processors, cell-range writes for spreadsheets.
type Scripter interface {
	// InsertDocument inserts the file at path into app. With moveToEnd set,
	// the selection is moved to the end of the document before inserting and
	// collapsed past the inserted content afterwards.
	InsertDocument(app target.Identity, path string, moveToEnd bool) error

	// InsertCells writes a cell range into app starting at the active cell.
	// Values are written as a batch; the rich-formatting pass is best
	// effort, with per-cell failures returned as warnings rather than an
	// error.
	InsertCells(app target.Identity, cells [][]Cell) ([]string, error)
}

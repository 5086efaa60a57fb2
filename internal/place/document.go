package place

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pastedown/pastedown/internal/automation"
	"github.com/pastedown/pastedown/internal/target"
)

// insertFileName is the fixed scratch file reused for every scripted
// insertion. Reusing one path keeps the temp directory from accumulating a
// file per paste.
const insertFileName = "insert.docx"

// Document inserts rendered DOCX bytes into a word processor through its
// scripting interface.
type Document struct {
	Scripter automation.Scripter
	TempDir  string
	// MoveCursorToEnd collapses the selection past the inserted content.
	MoveCursorToEnd bool
}

// Insert writes docx to the scratch file and asks app to insert it at the
// cursor. Scripting failures come back as a non-OK Result.
func (d *Document) Insert(app target.Identity, docx []byte) Result {
	if err := os.MkdirAll(d.TempDir, 0o755); err != nil {
		return failed(MethodInsert, fmt.Errorf("create temp dir: %w", err))
	}
	path := filepath.Join(d.TempDir, insertFileName)
	if err := os.WriteFile(path, docx, 0o644); err != nil {
		return failed(MethodInsert, fmt.Errorf("write scratch document: %w", err))
	}
	if err := d.Scripter.InsertDocument(app, path, d.MoveCursorToEnd); err != nil {
		return failed(MethodInsert, err)
	}
	return Result{OK: true, Method: MethodInsert}
}

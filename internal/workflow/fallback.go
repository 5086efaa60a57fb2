package workflow

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/pastedown/pastedown/internal/classify"
	"github.com/pastedown/pastedown/internal/config"
	"github.com/pastedown/pastedown/internal/place"
	"github.com/pastedown/pastedown/internal/target"
)

// codeCellFill is the shading applied to workbook cells containing inline
// code.
const codeCellFill = "EFEFEF"

// runFallback is the no-app workflow: no recognized target is in the
// foreground, so the press produces a file artifact instead of a paste.
// Tables become a workbook, everything else a document; the configured
// action then decides what happens to the file.
func (e *Engine) runFallback(ctx context.Context, r *reporter, _ target.Identity, c classify.Result) {
	if c.Kind == classify.Files {
		r.success("Pastedown", "No target application for file content.")
		return
	}
	e.maybeProgress(r, c)

	data, ext, err := e.fallbackArtifact(ctx, c)
	if err != nil {
		e.reportError(r, err)
		return
	}

	action := e.Cfg.Action()
	if action == config.ActionNone {
		r.success("Pastedown", "Converted; no action configured.")
		return
	}

	path, err := e.saveArtifact(data, c.Text, ext)
	if err != nil {
		e.reportError(r, err)
		return
	}

	switch action {
	case config.ActionOpen:
		if err := openPath(path); err != nil {
			slog.Error("open artifact failed", "path", path, "err", err)
			r.fail("Open failed", "Converted file saved, but could not be opened: "+filepath.Base(path))
			return
		}
		r.success("Pastedown", "Opened "+filepath.Base(path)+".")
	case config.ActionClipboard:
		if err := e.Clip.WriteFiles([]string{path}); err != nil {
			e.reportError(r, err)
			return
		}
		r.success("Pastedown", "Converted file copied to clipboard.")
	default: // ActionSave
		r.success("Pastedown", "Saved "+filepath.Base(path)+".")
	}
}

// fallbackArtifact renders the press content into file bytes: a workbook
// for tables, a document for everything else.
func (e *Engine) fallbackArtifact(ctx context.Context, c classify.Result) ([]byte, string, error) {
	if c.Kind == classify.Table {
		fill := ""
		if e.Cfg.ExcelCodeBG {
			fill = codeCellFill
		}
		f, warnings, err := place.BuildWorkbook(c.Table, place.WorkbookOptions{
			KeepFormat:     e.Cfg.ExcelKeepFmt,
			InlineCodeFill: fill,
		})
		if err != nil {
			return nil, "", err
		}
		for _, w := range warnings {
			slog.Warn("workbook formatting degraded", "warning", w)
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".xlsx", nil
	}

	var (
		docx     []byte
		err      error
		fromHTML = c.Kind == classify.HTML
	)
	if fromHTML {
		docx, err = e.Convert.HTMLToDocx(ctx, c.HTML)
	} else {
		docx, err = e.Convert.MarkdownToDocx(ctx, c.Text)
	}
	if err != nil {
		return nil, "", err
	}
	return e.suppressIndent(docx, fromHTML), ".docx", nil
}

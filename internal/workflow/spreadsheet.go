package workflow

import (
	"context"
	"log/slog"

	"github.com/pastedown/pastedown/internal/classify"
	"github.com/pastedown/pastedown/internal/place"
	"github.com/pastedown/pastedown/internal/target"
)

// runSpreadsheet is the workflow for spreadsheet targets. Tables go in as
// scripted cell-range writes, with the clipboard table paste as the
// fallback; anything else pastes as plain text into the active cell.
func (e *Engine) runSpreadsheet(ctx context.Context, r *reporter, app target.Identity, c classify.Result) {
	if c.Kind == classify.Table {
		if e.Sheet != nil {
			res := e.Sheet.Insert(app, c.Table)
			if res.OK {
				for _, w := range res.Warnings {
					slog.Warn("cell formatting degraded", "warning", w)
				}
				r.success("Pastedown", "Table inserted into "+appDisplayName(app)+".")
				return
			}
			slog.Warn("scripted cell insert failed, pasting instead", "target", string(app), "err", res.Err)
		}
		res := place.Table(e.Clip, c.Table, e.Cfg.ExcelKeepFmt)
		if !res.OK {
			e.reportError(r, res.Err)
			return
		}
		for _, w := range res.Warnings {
			slog.Warn("table formatting degraded", "warning", w)
		}
		r.success("Pastedown", "Table pasted into "+appDisplayName(app)+".")
		return
	}

	text := c.Text
	if c.Kind == classify.HTML && text == "" {
		md, err := e.Convert.HTMLToMarkdown(ctx, c.HTML)
		if err != nil {
			e.reportError(r, err)
			return
		}
		text = md
	}
	res := place.Text(e.Clip, text)
	if !res.OK {
		e.reportError(r, res.Err)
		return
	}
	r.success("Pastedown", "Pasted into "+appDisplayName(app)+".")
}

package workflow

import (
	"context"
	"log/slog"

	"github.com/pastedown/pastedown/internal/classify"
	"github.com/pastedown/pastedown/internal/convert"
	"github.com/pastedown/pastedown/internal/place"
	"github.com/pastedown/pastedown/internal/target"
)

// indentStyle is the paragraph style whose first-line indent the DOCX
// post-processing pass suppresses.
const indentStyle = "Body Text"

// runDocument is the workflow for word-processor targets: convert the
// clipboard to DOCX and insert it at the cursor through the application's
// scripting interface.
func (e *Engine) runDocument(ctx context.Context, r *reporter, app target.Identity, c classify.Result) {
	if c.Kind == classify.Files {
		// Non-markdown files paste through as a file list; the word
		// processor embeds or links them itself.
		res := place.Files(e.Clip, c.Files)
		if !res.OK {
			e.reportError(r, res.Err)
			return
		}
		r.success("Pastedown", "Files pasted into "+appDisplayName(app)+".")
		return
	}

	e.maybeProgress(r, c)

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
		e.reportError(r, err)
		return
	}

	docx = e.suppressIndent(docx, fromHTML)
	e.keepCopy(docx, c.Text, ".docx")

	res := e.Doc.Insert(app, docx)
	if !res.OK {
		slog.Error("document insert failed", "target", string(app), "err", res.Err)
		r.fail("Insert failed", "Could not insert into "+appDisplayName(app)+".")
		return
	}
	r.success("Pastedown", "Inserted into "+appDisplayName(app)+".")
}

// suppressIndent applies the in-memory DOCX fixup when enabled for the
// source format. Post-processing failure keeps the unpatched document; an
// indented first paragraph beats a lost paste.
func (e *Engine) suppressIndent(docx []byte, fromHTML bool) []byte {
	enabled := e.Cfg.MdNoIndent
	if fromHTML {
		enabled = e.Cfg.HTMLNoIndent
	}
	if !enabled {
		return docx
	}
	patched, err := convert.DisableFirstLineIndent(docx, indentStyle)
	if err != nil {
		slog.Warn("docx indent fixup failed", "err", err)
		return docx
	}
	return patched
}

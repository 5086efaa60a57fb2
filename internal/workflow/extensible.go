package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pastedown/pastedown/internal/classify"
	"github.com/pastedown/pastedown/internal/clipboard"
	"github.com/pastedown/pastedown/internal/convert"
	"github.com/pastedown/pastedown/internal/place"
	"github.com/pastedown/pastedown/internal/target"
)

// extensiblePipeline maps a configured workflow name to its generic
// content-delivery pipeline.
func (e *Engine) extensiblePipeline(name string) (pipeline, bool) {
	switch strings.ToLower(name) {
	case "html":
		return e.runHTMLPipeline, true
	case "markdown", "md":
		return e.runMarkdownPipeline, true
	case "latex":
		return e.runLaTeXPipeline, true
	case "file":
		return e.runFilePipeline, true
	}
	return nil, false
}

// runMarkdownPipeline delivers the content as markdown text. Plain HTML is
// lowered in process; the converter is only involved when formulas must be
// preserved.
func (e *Engine) runMarkdownPipeline(ctx context.Context, r *reporter, app target.Identity, c classify.Result) {
	text := c.Text
	if c.Kind == classify.HTML {
		var (
			md  string
			err error
		)
		if e.Cfg.KeepFormula {
			md, err = e.Convert.HTMLToMarkdown(ctx, c.HTML)
		} else {
			md, err = convert.LocalHTMLToMarkdown(c.HTML)
		}
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
	r.success("Pastedown", "Markdown pasted into "+appDisplayName(app)+".")
}

// runHTMLPipeline delivers the content as rich HTML with RTF and plain-text
// alternatives.
func (e *Engine) runHTMLPipeline(ctx context.Context, r *reporter, app target.Identity, c classify.Result) {
	e.maybeProgress(r, c)

	frag := c.HTML
	if c.Kind != classify.HTML {
		html, err := e.Convert.MarkdownToHTML(ctx, c.Text)
		if err != nil {
			e.reportError(r, err)
			return
		}
		frag = html
	}

	rich := clipboard.Rich{HTML: frag, Text: c.Text}
	// The RTF alternative is best effort; targets that prefer it get it,
	// everyone else falls back to HTML or text.
	if c.Kind != classify.HTML {
		if rtf, err := e.Convert.MarkdownToRTF(ctx, c.Text); err == nil {
			rich.RTF = rtf
		} else {
			slog.Debug("rtf alternative skipped", "err", err)
		}
	}

	res := place.Rich(e.Clip, rich)
	if !res.OK {
		e.reportError(r, res.Err)
		return
	}
	r.success("Pastedown", "Rich text pasted into "+appDisplayName(app)+".")
}

// runLaTeXPipeline delivers the content as a LaTeX fragment.
func (e *Engine) runLaTeXPipeline(ctx context.Context, r *reporter, app target.Identity, c classify.Result) {
	md := c.Text
	if c.Kind == classify.HTML {
		converted, err := e.Convert.HTMLToMarkdown(ctx, c.HTML)
		if err != nil {
			e.reportError(r, err)
			return
		}
		md = converted
	}
	latex, err := e.Convert.MarkdownToLaTeX(ctx, md)
	if err != nil {
		e.reportError(r, err)
		return
	}
	res := place.Text(e.Clip, latex)
	if !res.OK {
		e.reportError(r, res.Err)
		return
	}
	r.success("Pastedown", "LaTeX pasted into "+appDisplayName(app)+".")
}

// runFilePipeline converts to a document file and pastes the file itself,
// for targets that accept attachments rather than rich text.
func (e *Engine) runFilePipeline(ctx context.Context, r *reporter, app target.Identity, c classify.Result) {
	e.maybeProgress(r, c)

	data, ext, err := e.fallbackArtifact(ctx, c)
	if err != nil {
		e.reportError(r, err)
		return
	}
	path, err := e.saveArtifact(data, c.Text, ext)
	if err != nil {
		e.reportError(r, err)
		return
	}
	res := place.Files(e.Clip, []string{path})
	if !res.OK {
		e.reportError(r, res.Err)
		return
	}
	r.success("Pastedown", "Converted file pasted into "+appDisplayName(app)+".")
}

// Package classify inspects clipboard payloads and determines what the user
// actually copied: a table, real HTML, markdown files, or text that should be
// treated as Markdown. Classification is a pure query over the clipboard; it
// never mutates clipboard state and is derived fresh per hotkey press.
package classify

import (
	"log/slog"
	"strings"

	"github.com/pastedown/pastedown/internal/clipboard"
)

// Kind is the classification result. Exactly one per call, never composite.
type Kind int

const (
	Empty Kind = iota
	Table
	HTML
	Markdown
	Files
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Table:
		return "table"
	case HTML:
		return "html"
	case Markdown:
		return "markdown"
	case Files:
		return "files"
	default:
		return "unknown"
	}
}

// Result carries the classification plus the content it was derived from,
// so workflows don't have to re-read the clipboard.
type Result struct {
	Kind  Kind
	Text  string     // markdown/plain text; merged content for markdown files
	HTML  string     // HTML fragment, when one was present
	Files []string   // file paths, when Kind == Files
	Table [][]string // parsed cells, when Kind == Table
}

// Classify reads the current clipboard state through b and determines its
// content kind.
//
// Priority: empty → table (tables win even when HTML is present, because
// spreadsheet targets need raw cell data, not rendered HTML) → HTML (unless
// the plain-fragment heuristic says it is Markdown in a styling wrapper) →
// markdown files (merged) → plain text as Markdown.
func Classify(b clipboard.Backend) Result {
	if clipboard.IsEmpty(b) {
		return Result{Kind: Empty}
	}

	text, _ := b.ReadText()
	htmlFrag, hasHTML := b.ReadHTML()
	paths, hasFiles := b.ReadFiles()

	var mdFiles []NamedContent
	if hasFiles {
		md, err := ReadMarkdownFiles(FilterMarkdownPaths(paths))
		if err != nil {
			slog.Warn("markdown file read failed", "err", err)
		}
		mdFiles = md
	}

	candidate := text
	if len(mdFiles) > 0 {
		candidate = Merge(mdFiles)
	}

	if cells := ParseTable(candidate); len(cells) > 0 {
		return Result{Kind: Table, Text: candidate, HTML: htmlFrag, Table: cells}
	}

	if hasHTML {
		if !PlainFragment(htmlFrag, text) {
			return Result{Kind: HTML, Text: text, HTML: htmlFrag}
		}
		slog.Debug("html fragment looks like wrapped markdown, using text flow")
	}

	if len(mdFiles) > 0 {
		return Result{Kind: Markdown, Text: candidate, Files: paths}
	}

	if hasFiles && len(paths) > 0 {
		return Result{Kind: Files, Files: paths}
	}

	if strings.TrimSpace(text) != "" {
		return Result{Kind: Markdown, Text: text, HTML: htmlFrag}
	}

	return Result{Kind: Empty}
}

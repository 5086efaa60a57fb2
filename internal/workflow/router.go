package workflow

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/pastedown/pastedown/internal/classify"
	"github.com/pastedown/pastedown/internal/target"
)

// pipeline is one workflow execution, already bound to its engine.
type pipeline func(ctx context.Context, r *reporter, app target.Identity, c classify.Result)

// selectWorkflow resolves the routing table for this press: the four
// reserved targets, then enabled extensible bindings filtered by window
// title, then the fallback. The table is rebuilt per press because the
// window title is part of the match.
func (e *Engine) selectWorkflow(app target.Identity, title string) (string, pipeline) {
	switch app {
	case target.Word, target.WPSWriter:
		return "document", e.runDocument
	case target.Excel, target.WPSSheet:
		if e.Cfg.EnableExcel {
			return "spreadsheet", e.runSpreadsheet
		}
		slog.Debug("spreadsheet support disabled, using fallback")
		return "fallback", e.runFallback
	case target.None:
		return "fallback", e.runFallback
	}

	if name, run, ok := e.extensibleFor(app, title); ok {
		return name, run
	}
	return "fallback", e.runFallback
}

// extensibleFor scans enabled extensible workflows for a binding matching
// the target identity and window title. Workflow names are visited in
// sorted order so routing is deterministic.
func (e *Engine) extensibleFor(app target.Identity, title string) (string, pipeline, bool) {
	names := make([]string, 0, len(e.Cfg.Workflows))
	for name := range e.Cfg.Workflows {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		wf := e.Cfg.Workflows[name]
		if !wf.Enabled {
			continue
		}
		run, ok := e.extensiblePipeline(name)
		if !ok {
			slog.Warn("unknown extensible workflow, skipping", "workflow", name)
			continue
		}
		for _, binding := range wf.Apps {
			if !strings.EqualFold(strings.TrimSpace(binding.ID), string(app)) {
				continue
			}
			if matchesWindow(binding.WindowPatterns, title) {
				return name, run, true
			}
		}
	}
	return "", nil, false
}

// matchesWindow reports whether the title matches at least one pattern.
// No patterns means the binding applies to every window. Patterns are
// case-insensitive regular expressions; an invalid pattern is logged and
// skipped, never fatal.
func matchesWindow(patterns []string, title string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pat := range patterns {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			slog.Warn("invalid window pattern, skipping", "pattern", pat, "err", err)
			continue
		}
		if re.MatchString(title) {
			return true
		}
	}
	return false
}

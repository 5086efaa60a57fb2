// Package workflow routes a hotkey press through one conversion pipeline:
// detect the target application, classify the clipboard, select a workflow,
// execute it, and surface exactly one terminal notification.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pastedown/pastedown/internal/classify"
	"github.com/pastedown/pastedown/internal/clipboard"
	"github.com/pastedown/pastedown/internal/config"
	"github.com/pastedown/pastedown/internal/convert"
	"github.com/pastedown/pastedown/internal/notify"
	"github.com/pastedown/pastedown/internal/place"
	"github.com/pastedown/pastedown/internal/target"
)

// progressLineThreshold is the input size past which a non-terminal
// "working" notification is shown, since large conversions take seconds.
const progressLineThreshold = 100

// Engine executes one workflow per hotkey press. Presses arriving while a
// workflow is still running are dropped: clipboard operations are serialized
// by the OS anyway, and a queued second paste would duplicate content.
type Engine struct {
	Clip     clipboard.Backend
	Detector target.Detector
	Convert  *convert.Service
	Notifier notify.Notifier
	Doc      *place.Document
	Sheet    *place.Spreadsheet
	Cfg      *config.Config

	busy atomic.Bool
}

// HandlePress runs one press end to end. Safe to call from any goroutine;
// re-entrant calls return immediately.
func (e *Engine) HandlePress() {
	if !e.busy.CompareAndSwap(false, true) {
		slog.Debug("press dropped, previous workflow still running")
		return
	}
	defer e.busy.Store(false)

	r := &reporter{notifier: e.Notifier}
	// Last line of defense: a panic anywhere below becomes a logged
	// generic failure, never a crash of the hotkey service.
	defer func() {
		if p := recover(); p != nil {
			slog.Error("workflow panicked", "panic", p, "stack", string(debug.Stack()))
			r.fail("Conversion failed", "An unexpected error occurred; see the log for details.")
		}
	}()

	e.press(r)
}

func (e *Engine) press(r *reporter) {
	started := time.Now()
	app := e.Detector.Detect()
	title := e.Detector.WindowTitle()

	content := classify.Classify(e.Clip)
	if content.Kind == classify.Empty {
		r.success("Pastedown", "Clipboard has nothing to convert.")
		return
	}

	name, run := e.selectWorkflow(app, title)
	slog.Info("press routed",
		"content", content.Kind.String(),
		"target", string(app),
		"workflow", name,
	)

	e.runGuarded(name, r, app, content, run)
	slog.Debug("press finished", "workflow", name, "elapsed", time.Since(started))

	// A workflow that returned without reporting is a bug; cover it so the
	// press is never silent.
	r.fail("Conversion failed", "Something went wrong; see the log for details.")
}

// runGuarded isolates one workflow execution so no failure mode of a single
// pipeline can escape to the router loop.
func (e *Engine) runGuarded(name string, r *reporter, app target.Identity, c classify.Result, run pipeline) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("workflow panicked", "workflow", name, "panic", p, "stack", string(debug.Stack()))
			r.fail("Conversion failed", "An unexpected error occurred; see the log for details.")
		}
	}()
	run(context.Background(), r, app, c)
}

// maybeProgress posts the non-terminal working notification for large
// inputs.
func (e *Engine) maybeProgress(r *reporter, c classify.Result) {
	body := c.Text
	if c.Kind == classify.HTML {
		body = c.HTML
	}
	if strings.Count(body, "\n")+1 >= progressLineThreshold {
		r.progress("Pastedown", "Converting, this may take a moment…")
	}
}

// reportError maps an error onto the user-facing failure taxonomy:
// clipboard, conversion (HTML vs Markdown source), or generic.
func (e *Engine) reportError(r *reporter, err error) {
	var clipErr *clipboard.Error
	var convErr *convert.Error
	switch {
	case errors.As(err, &clipErr):
		slog.Error("clipboard failure", "err", err)
		r.fail("Clipboard error", "Could not access the clipboard.")
	case errors.As(err, &convErr):
		slog.Error("conversion failure", "op", convErr.Op, "err", err)
		if strings.HasPrefix(convErr.Op, "html") {
			r.fail("Conversion failed", "Could not convert the copied HTML content.")
		} else {
			r.fail("Conversion failed", "Could not convert the copied Markdown content.")
		}
	default:
		slog.Error("workflow failure", "err", err)
		r.fail("Conversion failed", "Something went wrong; see the log for details.")
	}
}

// saveArtifact writes data into the save directory under a content-derived
// name and returns the path.
func (e *Engine) saveArtifact(data []byte, seed, ext string) (string, error) {
	dir := e.Cfg.SaveDir
	if dir == "" {
		dir = filepath.Join(config.DataDir(), "exports")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}
	path := filepath.Join(dir, artifactName(seed, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}

// keepCopy honors the keep-file setting. Failure to keep a copy is logged,
// never terminal; the paste itself still proceeds.
func (e *Engine) keepCopy(data []byte, seed, ext string) {
	if !e.Cfg.KeepFile {
		return
	}
	path, err := e.saveArtifact(data, seed, ext)
	if err != nil {
		slog.Warn("keep-file copy failed", "err", err)
		return
	}
	slog.Info("kept converted file", "path", path)
}

// artifactName derives a filename from the first non-blank content line
// plus a timestamp, so repeated presses never collide.
func artifactName(seed, ext string) string {
	slug := "pastedown"
	for _, line := range strings.Split(seed, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "#*>-"))
		if line == "" {
			continue
		}
		var sb strings.Builder
		for _, r := range line {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				sb.WriteRune(r)
			case r == ' ' || r == '-' || r == '_':
				sb.WriteByte('-')
			}
			if sb.Len() >= 32 {
				break
			}
		}
		if s := strings.Trim(sb.String(), "-"); s != "" {
			slug = s
		}
		break
	}
	return slug + "-" + time.Now().Format("20060102-150405") + ext
}

func appDisplayName(app target.Identity) string {
	switch app {
	case target.Word:
		return "Word"
	case target.WPSWriter:
		return "WPS Writer"
	case target.Excel:
		return "Excel"
	case target.WPSSheet:
		return "WPS Spreadsheets"
	}
	return string(app)
}

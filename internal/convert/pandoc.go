// Package convert wraps the external pandoc binary behind a small service
// with typed errors and a self-healing binary path, plus the in-process
// HTML→Markdown fast path used by extensible workflows.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultBinary is the bare binary name resolved through PATH. It doubles as
// the recovery candidate when a configured absolute path stops working.
const DefaultBinary = "pandoc"

// probeTimeout bounds the --version check so a wedged binary cannot stall
// the hotkey press that triggered it.
const probeTimeout = 10 * time.Second

// mathExtensions is appended to every markdown reader invocation so that
// $..$, \(..\) and \\(..\\) math all survive conversion.
const mathExtensions = "+tex_math_dollars+raw_tex+tex_math_double_backslash+tex_math_single_backslash"

// Pandoc locates and runs the converter binary. The configured path is
// verified lazily on first use; if it fails but the bare default works, the
// service switches to the default and reports the fix through OnHeal so the
// caller can persist it.
type Pandoc struct {
	runner Runner

	// OnHeal, when set, is invoked once with the working path after the
	// configured one was found broken.
	OnHeal func(path string)

	mu       sync.Mutex
	path     string // configured candidate
	verified string // empty until a probe succeeds
	version  string
}

// NewPandoc builds a handle around the configured binary path ("" means the
// bare default). No probing happens until the first conversion.
func NewPandoc(path string, runner Runner) *Pandoc {
	if path == "" {
		path = DefaultBinary
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Pandoc{runner: runner, path: path}
}

// Version reports the first line of `pandoc --version`, probing if needed.
func (p *Pandoc) Version(ctx context.Context) (string, error) {
	if _, err := p.ensure(ctx); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version, nil
}

// ensure returns a verified binary path, probing the configured candidate
// and falling back to the bare default exactly once.
func (p *Pandoc) ensure(ctx context.Context) (string, error) {
	p.mu.Lock()
	if p.verified != "" {
		path := p.verified
		p.mu.Unlock()
		return path, nil
	}
	candidate := p.path
	p.mu.Unlock()

	version, err := p.probe(ctx, candidate)
	if err != nil && candidate != DefaultBinary {
		slog.Warn("configured converter path failed, trying default", "path", candidate, "err", err)
		if v, derr := p.probe(ctx, DefaultBinary); derr == nil {
			candidate, version, err = DefaultBinary, v, nil
			if p.OnHeal != nil {
				p.OnHeal(DefaultBinary)
			}
		}
	}
	if err != nil {
		return "", fmt.Errorf("converter binary unavailable at %q: %w", candidate, err)
	}

	p.mu.Lock()
	p.verified = candidate
	p.version = version
	p.mu.Unlock()
	slog.Debug("converter verified", "path", candidate, "version", version)
	return candidate, nil
}

func (p *Pandoc) probe(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, _, err := p.runner.Run(ctx, "", path, nil, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

// run executes one conversion. dir is the working directory for relative
// resource lookup (images referenced from pasted markdown).
func (p *Pandoc) run(ctx context.Context, op, dir string, stdin []byte, args ...string) ([]byte, error) {
	path, err := p.ensure(ctx)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	stdout, stderr, err := p.runner.Run(ctx, dir, path, stdin, args...)
	if len(stderr) > 0 {
		slog.Debug("converter stderr", "op", op, "stderr", Truncate(string(stderr), stderrLogLimit))
	}
	if err != nil {
		return nil, &Error{Op: op, Stderr: string(stderr), Err: err}
	}
	return stdout, nil
}

package convert

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// Options carries the conversion knobs derived from configuration. Zero
// value means plain conversions with no reference document or filters.
type Options struct {
	ReferenceDocx     string
	Filters           []string
	RequestHeaders    []string
	KeepFormula       bool
	LatexReplacements bool
	// WorkDir is the converter's working directory, used for relative
	// resource lookup in pasted content.
	WorkDir string
}

// Service exposes the conversions the workflows need, built on one verified
// converter binary plus the bundled Lua filters.
type Service struct {
	pandoc *Pandoc
	opts   Options

	keepMathFilter   string
	latexFixupFilter string
}

// NewService materializes the bundled filters under dataDir and wires them
// to the converter. Filter materialization failure is logged, not fatal:
// conversions still work, formulas just render through the default math
// writer.
func NewService(p *Pandoc, opts Options, dataDir string) *Service {
	s := &Service{pandoc: p, opts: opts}
	keep, fixups, err := MaterializeFilters(filepath.Join(dataDir, "filters"))
	if err != nil {
		slog.Warn("bundled filters unavailable", "err", err)
		return s
	}
	s.keepMathFilter = keep
	s.latexFixupFilter = fixups
	return s
}

// MarkdownToDocx renders markdown into a DOCX document, honoring the
// reference document, LaTeX fixups and any user-configured filters.
func (s *Service) MarkdownToDocx(ctx context.Context, md string) ([]byte, error) {
	args := []string{
		"-f", "markdown" + mathExtensions,
		"-t", "docx",
		"-o", "-",
		"--highlight-style", "tango",
	}
	args = append(args, s.commonArgs()...)
	args = append(args, s.keepMathArgs()...)
	return s.pandoc.run(ctx, "markdown→docx", s.opts.WorkDir, []byte(NormalizeMarkdown(md)), args...)
}

// HTMLToDocx renders clipboard HTML into a DOCX document. With KeepFormula
// set, the HTML is first lowered to markdown with formulas preserved as
// dollar-delimited source, then rendered; otherwise the converter reads the
// HTML directly.
func (s *Service) HTMLToDocx(ctx context.Context, html string) ([]byte, error) {
	if s.opts.KeepFormula {
		md, err := s.HTMLToMarkdown(ctx, html)
		if err != nil {
			return nil, err
		}
		return s.MarkdownToDocx(ctx, md)
	}
	args := []string{
		"-f", "html" + mathExtensions,
		"-t", "docx",
		"-o", "-",
		"--highlight-style", "tango",
	}
	args = append(args, s.commonArgs()...)
	return s.pandoc.run(ctx, "html→docx", s.opts.WorkDir, []byte(Sanitize(html)), args...)
}

// HTMLToMarkdown lowers HTML to GitHub-flavored markdown through the
// converter. With KeepFormula set the bundled keep-math filter rewrites
// formulas as literal $..$ text.
func (s *Service) HTMLToMarkdown(ctx context.Context, html string) (string, error) {
	args := []string{
		"-f", "html" + mathExtensions,
		"-t", "gfm-raw_html+tex_math_dollars",
		"--wrap", "none",
	}
	args = append(args, s.keepMathArgs()...)
	out, err := s.pandoc.run(ctx, "html→markdown", s.opts.WorkDir, []byte(Sanitize(html)), args...)
	if err != nil {
		return "", err
	}
	return fixupConvertedMarkdown(string(out)), nil
}

// MarkdownToHTML renders markdown into an HTML fragment for rich clipboard
// placement.
func (s *Service) MarkdownToHTML(ctx context.Context, md string) (string, error) {
	args := []string{
		"-f", "markdown" + mathExtensions,
		"-t", "html",
		"--wrap", "none",
		"--highlight-style", "tango",
	}
	args = append(args, s.filterChain()...)
	args = append(args, headerArgs(s.opts.RequestHeaders)...)
	args = append(args, s.keepMathArgs()...)
	out, err := s.pandoc.run(ctx, "markdown→html", s.opts.WorkDir, []byte(NormalizeMarkdown(md)), args...)
	return string(out), err
}

// MarkdownToRTF renders markdown into a standalone RTF document for targets
// that take RTF off the clipboard.
func (s *Service) MarkdownToRTF(ctx context.Context, md string) ([]byte, error) {
	args := []string{
		"-f", "markdown" + mathExtensions,
		"-t", "rtf",
		"--standalone",
	}
	args = append(args, s.filterChain()...)
	args = append(args, s.keepMathArgs()...)
	return s.pandoc.run(ctx, "markdown→rtf", s.opts.WorkDir, []byte(NormalizeMarkdown(md)), args...)
}

// MarkdownToLaTeX renders markdown into a LaTeX fragment.
func (s *Service) MarkdownToLaTeX(ctx context.Context, md string) (string, error) {
	args := []string{
		"-f", "markdown" + mathExtensions,
		"-t", "latex",
		"--wrap", "none",
	}
	out, err := s.pandoc.run(ctx, "markdown→latex", s.opts.WorkDir, []byte(NormalizeMarkdown(md)), args...)
	return string(out), err
}

// Version reports the converter's version line, verifying the binary.
func (s *Service) Version(ctx context.Context) (string, error) {
	return s.pandoc.Version(ctx)
}

func (s *Service) commonArgs() []string {
	args := s.filterChain()
	if s.opts.ReferenceDocx != "" {
		if _, err := os.Stat(s.opts.ReferenceDocx); err == nil {
			args = append(args, "--reference-doc", s.opts.ReferenceDocx)
		} else {
			slog.Warn("reference document not found, using converter default", "path", s.opts.ReferenceDocx)
		}
	}
	return append(args, headerArgs(s.opts.RequestHeaders)...)
}

// keepMathArgs adds the keep-math filter when formulas must stay literal
// dollar-delimited text instead of native equation objects. It runs last so
// earlier filters still see real math nodes. Not applied to the LaTeX
// target, where a literal "$" would be escaped in the output.
func (s *Service) keepMathArgs() []string {
	if s.opts.KeepFormula && s.keepMathFilter != "" {
		return []string{"--lua-filter", s.keepMathFilter}
	}
	return nil
}

// filterChain orders the bundled LaTeX fixups ahead of user filters so user
// filters see the normalized math.
func (s *Service) filterChain() []string {
	var args []string
	if s.opts.LatexReplacements && s.latexFixupFilter != "" {
		args = append(args, "--lua-filter", s.latexFixupFilter)
	}
	return append(args, filterArgs(s.opts.Filters)...)
}

package convert

import (
	"embed"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

//go:embed lua/*.lua
var luaFS embed.FS

const (
	keepMathFilterName    = "keep_latex_math.lua"
	latexFixupsFilterName = "latex_replacements.lua"
)

// MaterializeFilters writes the bundled Lua filters into dir so the external
// converter can load them, overwriting any stale copies from a previous
// version. It returns the on-disk paths of the keep-math and LaTeX-fixup
// filters.
func MaterializeFilters(dir string) (keepMath, latexFixups string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	for _, name := range []string{keepMathFilterName, latexFixupsFilterName} {
		data, err := luaFS.ReadFile("lua/" + name)
		if err != nil {
			return "", "", err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return "", "", err
		}
	}
	return filepath.Join(dir, keepMathFilterName), filepath.Join(dir, latexFixupsFilterName), nil
}

// filterArgs turns user-configured filter paths into converter arguments,
// preserving order. Lua filters get --lua-filter, everything else --filter.
// Missing files are logged and skipped rather than failing the conversion.
func filterArgs(filters []string) []string {
	var args []string
	for _, f := range filters {
		path := os.ExpandEnv(f)
		if _, err := os.Stat(path); err != nil {
			slog.Warn("converter filter not found, skipping", "filter", f)
			continue
		}
		if strings.EqualFold(filepath.Ext(path), ".lua") {
			args = append(args, "--lua-filter", path)
		} else {
			args = append(args, "--filter", path)
		}
	}
	return args
}

// headerArgs turns configured "Name: value" request headers into converter
// arguments. These headers accompany remote image fetches; values may carry
// credentials, so logs only ever see the header name.
func headerArgs(headers []string) []string {
	var args []string
	for _, h := range headers {
		name, _, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			slog.Warn("malformed request header entry, skipping")
			continue
		}
		slog.Debug("passing request header", "name", strings.TrimSpace(name))
		args = append(args, "--request-header", h)
	}
	return args
}

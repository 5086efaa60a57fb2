package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// NamedContent is one markdown file read off the clipboard.
type NamedContent struct {
	Name    string
	Content string
}

// FilterMarkdownPaths keeps only .md/.markdown paths, preserving clipboard
// order.
func FilterMarkdownPaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".md", ".markdown":
			out = append(out, p)
		}
	}
	return out
}

// ReadMarkdownFiles reads each path, decoding non-UTF-8 content via charset
// detection. Unreadable files abort the whole read: silently dropping one
// of the user's files would corrupt the merged document.
func ReadMarkdownFiles(paths []string) ([]NamedContent, error) {
	var out []NamedContent
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		content, err := decodeText(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		out = append(out, NamedContent{Name: filepath.Base(p), Content: content})
	}
	return out, nil
}

func decodeText(raw []byte) (string, error) {
	// Strip a UTF-8 BOM if present.
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		raw = raw[3:]
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	det := chardet.NewTextDetector()
	best, err := det.DetectBest(raw)
	if err != nil {
		return "", err
	}
	enc, err := ianaindex.IANA.Encoding(best.Charset)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unsupported charset %q", best.Charset)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Merge concatenates markdown file contents. A single file passes through
// unchanged; multiple files get per-file source comments with a blank line
// between blocks, in clipboard order.
func Merge(files []NamedContent) string {
	if len(files) == 0 {
		return ""
	}
	if len(files) == 1 {
		return files[0].Content
	}
	var parts []string
	for _, f := range files {
		parts = append(parts, fmt.Sprintf("<!-- Source: %s -->", f.Name))
		parts = append(parts, strings.TrimSpace(f.Content))
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}

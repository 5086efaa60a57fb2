package convert

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// LocalHTMLToMarkdown converts HTML to markdown in process, without the
// external converter. It is the fast path for workflows that only need
// markdown text; formula-preserving conversions still go through the
// converter binary.
func LocalHTMLToMarkdown(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(Sanitize(html))
	if err != nil {
		return "", fmt.Errorf("html to markdown: %w", err)
	}
	return fixupConvertedMarkdown(md), nil
}

package classify

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var tableMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// ParseTable parses text as a GFM pipe table and returns its cells, header
// row first. It returns nil unless the text is substantially a single
// table, so prose that merely contains a table does not classify as one.
//
// Structure is validated with goldmark's table extension; cell contents are
// taken from the raw source lines so that inline markers (**bold**, `code`,
// links) survive for the spreadsheet placer's rich-format pass.
func ParseTable(md string) [][]string {
	md = strings.Replace(md, "\r\n", "\n", -1)
	md = strings.TrimSpace(md)
	if md == "" {
		return nil
	}

	var pipeLines []string
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.Contains(trimmed, "|") {
			return nil
		}
		pipeLines = append(pipeLines, trimmed)
	}
	if len(pipeLines) == 0 || !isTablePerGoldmark(md) {
		return nil
	}

	var rows [][]string
	for _, line := range pipeLines {
		if isDelimiterRow(line) {
			continue
		}
		rows = append(rows, splitRow(line))
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	return rows
}

// isTablePerGoldmark reports whether the document parses into table nodes
// and nothing else.
func isTablePerGoldmark(md string) bool {
	doc := tableMarkdown.Parser().Parse(text.NewReader([]byte(md)))
	sawTable := false
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*east.Table); !ok {
			return false
		}
		sawTable = true
	}
	return sawTable
}

// isDelimiterRow matches the header/body separator: cells of dashes with
// optional alignment colons.
func isDelimiterRow(line string) bool {
	for _, cell := range splitRow(line) {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return false
		}
		trimmed := strings.Trim(cell, ":-")
		if trimmed != "" || !strings.Contains(cell, "-") {
			return false
		}
	}
	return true
}

// splitRow splits a pipe row into cells, honoring backslash-escaped pipes
// and pipes inside code spans.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	var cells []string
	var sb strings.Builder
	inCode := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line) && line[i+1] == '|':
			sb.WriteByte('|')
			i++
		case c == '`':
			inCode = !inCode
			sb.WriteByte(c)
		case c == '|' && !inCode:
			cells = append(cells, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	cells = append(cells, strings.TrimSpace(sb.String()))
	return cells
}

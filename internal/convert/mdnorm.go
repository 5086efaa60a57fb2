package convert

import (
	"regexp"
	"strings"
)

var (
	inlineLatexRe  = regexp.MustCompile(`\\\((.+?)\\\)`)
	displayLatexRe = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)

	mathFenceRe   = regexp.MustCompile("(?s)```math\\s*\n(.*?)\n```")
	inlineMathRe  = regexp.MustCompile("\\$`([^`]+)`\\$")
	escapedTaskRe = regexp.MustCompile(`(?m)^(\s*[-*+]\s+)\\\[([ xX])\\\]`)
)

// NormalizeMarkdown prepares clipboard markdown for conversion: line endings
// become plain LF and \(..\) / \[..\] math delimiters become the dollar
// forms the reader extensions understand.
func NormalizeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = displayLatexRe.ReplaceAllString(s, "$$$$${1}$$$$")
	s = inlineLatexRe.ReplaceAllString(s, "$$${1}$$")
	return s
}

// fixupConvertedMarkdown repairs artifacts of machine-produced markdown:
// ```math fences back to $$ blocks, $`x`$ back to $x$, escaped task-list
// brackets back to [ ] / [x], and escaped strikethrough markers.
func fixupConvertedMarkdown(s string) string {
	s = mathFenceRe.ReplaceAllString(s, "$$$$\n${1}\n$$$$")
	s = inlineMathRe.ReplaceAllString(s, "$$${1}$$")
	s = escapedTaskRe.ReplaceAllString(s, "${1}[${2}]")
	s = strings.ReplaceAll(s, `\~~`, "~~")
	return s
}

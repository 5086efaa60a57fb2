package classify

import (
	"strings"

	"golang.org/x/net/html"
)

// Copy buttons in chat/AI tools often wrap Markdown text in styling spans
// rather than real HTML. Routing that through an HTML-to-document converter
// corrupts the Markdown syntax (literal **bold** lands in the output), so
// fragments are vetted before the HTML path is chosen.

// semanticTags provide real document structure. One of these in a fragment
// means the HTML path is the right one.
var semanticTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "ul": true, "ol": true, "li": true, "dl": true, "dt": true,
	"dd": true, "table": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "th": true, "td": true, "col": true, "colgroup": true,
	"pre": true, "code": true, "blockquote": true, "figure": true,
	"figcaption": true, "math": true, "section": true, "article": true,
	"header": true, "footer": true, "aside": true, "nav": true, "hr": true,
}

// inlineWrapperTags are the usual copy-button shells. A fragment made of
// nothing else carries no structure worth converting.
var inlineWrapperTags = map[string]bool{
	"span": true, "font": true, "strong": true, "em": true, "b": true,
	"i": true, "u": true, "sub": true, "sup": true, "s": true, "del": true,
	"mark": true, "a": true,
}

// skeletonTags are ignored entirely when walking a parsed fragment.
var skeletonTags = map[string]bool{
	"html": true, "head": true, "body": true, "meta": true, "style": true,
	"title": true, "script": true, "link": true, "br": true,
}

// markdownHints are syntax markers scored against the fragment's visible
// text when tag inspection is inconclusive.
var markdownHints = []string{
	"\n#", "\n##", "\n- ", "\n* ", "\n1.", "```", "**", "__", "~~",
	"> ", "$$", `\(`, `\)`, "|", "\n---", "\n***", "`",
}

// PlainFragment reports whether an HTML fragment is just Markdown or plain
// text in a styling wrapper. clipText is the plain-text sibling of the
// fragment; it contributes to hint scoring when the fragment itself has
// hardly any text.
func PlainFragment(fragment, clipText string) bool {
	if strings.TrimSpace(fragment) == "" {
		return true
	}

	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// Unparseable HTML cannot be trusted on the HTML path.
		return true
	}

	if countSemanticTags(root) > 0 {
		return false
	}
	if onlyInlineWrappers(root) {
		return true
	}

	text := visibleText(root)
	if strings.TrimSpace(text) == "" {
		text = clipText
	}
	if strings.TrimSpace(text) == "" {
		return true
	}
	return hintScore(text) >= 2
}

func countSemanticTags(root *html.Node) int {
	count := 0
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && semanticTags[strings.ToLower(n.Data)] {
			count++
		}
	})
	return count
}

func onlyInlineWrappers(root *html.Node) bool {
	ok := true
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		name := strings.ToLower(n.Data)
		if skeletonTags[name] {
			return
		}
		if !inlineWrapperTags[name] {
			ok = false
		}
	})
	return ok
}

func visibleText(root *html.Node) string {
	var sb strings.Builder
	var rec func(n *html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(root)
	return sb.String()
}

func hintScore(text string) int {
	score := 0
	for _, hint := range markdownHints {
		if strings.Contains(text, hint) {
			score++
		}
	}
	return score
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

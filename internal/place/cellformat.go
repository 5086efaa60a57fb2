package place

import (
	"html"
	"regexp"
	"strings"
)

// spanStyle is the inline formatting carried by one run of cell text.
type spanStyle struct {
	Bold   bool
	Italic bool
	Strike bool
	Code   bool
	Link   string
}

type span struct {
	Text  string
	Style spanStyle
}

var cellLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)

// parseCellSpans tokenizes the inline-markdown subset that survives in pipe
// table cells: **bold**, *italic*, ~~strike~~, `code` and [text](url).
// Anything unrecognized stays literal text.
func parseCellSpans(s string) []span {
	var spans []span
	for s != "" {
		loc := cellLinkRe.FindStringSubmatchIndex(s)
		if loc == nil {
			spans = append(spans, styledSpans(s, "")...)
			break
		}
		if loc[0] > 0 {
			spans = append(spans, styledSpans(s[:loc[0]], "")...)
		}
		spans = append(spans, styledSpans(s[loc[2]:loc[3]], s[loc[4]:loc[5]])...)
		s = s[loc[1]:]
	}
	return spans
}

func styledSpans(s, link string) []span {
	var spans []span
	cur := spanStyle{Link: link}
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			spans = append(spans, span{Text: sb.String(), Style: cur})
			sb.Reset()
		}
	}
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "**"):
			flush()
			cur.Bold = !cur.Bold
			i += 2
		case strings.HasPrefix(s[i:], "~~"):
			flush()
			cur.Strike = !cur.Strike
			i += 2
		case s[i] == '`':
			j := strings.IndexByte(s[i+1:], '`')
			if j < 0 {
				sb.WriteByte('`')
				i++
				continue
			}
			flush()
			code := cur
			code.Code = true
			spans = append(spans, span{Text: s[i+1 : i+1+j], Style: code})
			i += j + 2
		case s[i] == '*':
			flush()
			cur.Italic = !cur.Italic
			i++
		default:
			sb.WriteByte(s[i])
			i++
		}
	}
	flush()
	return spans
}

// cellPlainText strips inline markers, leaving the visible text.
func cellPlainText(s string) string {
	var sb strings.Builder
	for _, sp := range parseCellSpans(s) {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// cellHTML renders the cell's inline formatting as an HTML fragment.
func cellHTML(s string) string {
	var sb strings.Builder
	for _, sp := range parseCellSpans(s) {
		text := html.EscapeString(sp.Text)
		if sp.Style.Code {
			text = "<code>" + text + "</code>"
		}
		if sp.Style.Bold {
			text = "<strong>" + text + "</strong>"
		}
		if sp.Style.Italic {
			text = "<em>" + text + "</em>"
		}
		if sp.Style.Strike {
			text = "<del>" + text + "</del>"
		}
		if sp.Style.Link != "" {
			text = `<a href="` + html.EscapeString(sp.Style.Link) + `">` + text + "</a>"
		}
		sb.WriteString(text)
	}
	return sb.String()
}

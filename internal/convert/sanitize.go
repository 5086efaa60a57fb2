package convert

import "github.com/microcosm-cc/bluemonday"

// mathmlElements is the MathML subset the converter's reader understands.
// Formula-bearing clipboard HTML (browsers, note apps) carries equations as
// <math> trees with a TeX annotation; stripping them would make the
// keep-original-formula path a no-op.
var mathmlElements = []string{
	"math", "semantics", "annotation", "annotation-xml",
	"mrow", "mi", "mo", "mn", "ms", "mtext", "mspace", "mstyle",
	"msup", "msub", "msubsup", "mfrac", "msqrt", "mroot",
	"munder", "mover", "munderover", "mmultiscripts",
	"mtable", "mtr", "mtd", "mpadded", "mphantom", "mfenced", "menclose", "merror",
}

var clipboardPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowElements("span", "div", "u", "s", "sup", "sub", "figure", "figcaption")
	p.AllowAttrs("style", "class").Globally()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowElements(mathmlElements...)
	p.AllowAttrs("xmlns", "display", "mode").OnElements("math")
	p.AllowAttrs("encoding").OnElements("annotation", "annotation-xml")
	p.AllowAttrs("mathvariant").OnElements("mi", "mo", "mn", "ms", "mtext", "mstyle")
	return p
}()

// Sanitize strips scripts, event handlers and other active content from
// clipboard HTML before it reaches the converter. Inline styles and classes
// are kept; the converter reads formatting hints from them.
func Sanitize(html string) string {
	return clipboardPolicy.Sanitize(html)
}

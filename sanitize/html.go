// Package sanitize holds the pure text-cleaning helpers shared by the
// content handlers: the rich-text HTML sanitizer and the blog slug utility.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Style values accepted on any styled element. Colors are hex or rgb()
// only; sizes are px/em/%.
var (
	cssSize  = regexp.MustCompile(`^[0-9]+(px|em|%)$`)
	cssColor = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|rgb\(\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*\))$`)
)

// styledElements are the tags that may carry style/class attributes.
var styledElements = []string{
	"span", "p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "mark", "u",
}

var richTextPolicy = newRichTextPolicy()

func newRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"b", "i", "em", "strong", "a", "p", "span", "img",
		"h1", "h2", "h3", "h4", "h5", "h6", "div", "br", "u", "mark",
	)

	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("class", "style").OnElements(styledElements...)

	p.AllowStyles("text-align").MatchingEnum("left", "right", "center", "justify").OnElements(styledElements...)
	p.AllowStyles("font-size", "line-height").Matching(cssSize).OnElements(styledElements...)
	p.AllowStyles("color", "background-color").Matching(cssColor).OnElements(styledElements...)
	p.AllowStyles("text-decoration").MatchingEnum("underline").OnElements(styledElements...)

	return p
}

// Sanitize strips everything outside the rich-text allow-list from the
// given HTML. Disallowed tags and attributes are removed, not escaped.
// Deterministic and idempotent.
func Sanitize(html string) string {
	return richTextPolicy.Sanitize(html)
}

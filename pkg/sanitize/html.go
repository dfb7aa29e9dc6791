package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// AllowedHTMLElements lists the elements kept by HTML. Any attribute not
// explicitly allowed below is dropped.
var AllowedHTMLElements = []string{
	"a", "b", "blockquote", "br", "code", "div", "em", "hr", "i", "li", "ol",
	"p", "pre", "span", "strong", "table", "tbody", "td", "tr", "u", "ul",
}

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedHTMLElements...)
	p.AllowNoAttrs().OnElements(AllowedHTMLElements...)

	// Links: only absolute http(s) targets survive.
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https")
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")

	p.AllowAttrs("border").Matching(regexp.MustCompile(`^[0-9]+$`)).OnElements("table")
	return p
}

// HTML strips disallowed elements and attributes (event handlers, styles,
// iframes, scripts, relative or non-http links) and keeps permitted markup
// and text. It never fails.
func HTML(s string) string {
	return htmlPolicy.Sanitize(s)
}

package mailbox

import (
	"html"
	"regexp"
)

// requires a tag-like shape after "<" so bare comparisons survive
var htmlTagRe = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)

// StripHTML reduces an HTML body to its text: tags removed, entities
// decoded. Plain-text bodies pass through untouched, so "a < b" survives
func StripHTML(s string) string {
	if !htmlTagRe.MatchString(s) {
		return s
	}
	return html.UnescapeString(htmlTagRe.ReplaceAllString(s, " "))
}

package render

import "strings"

// escapeHTML escapes every character that could open markup. All
// user-supplied text must pass through here before being embedded in a
// card fragment; a description containing "<script>" has to render as
// literal text in every collection's output.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

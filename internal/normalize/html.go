package normalize

import (
	"regexp"
	"strings"
)

var (
	brTagPattern  = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// entityReplacer resolves the HTML escapes YouTube emits in descriptions and
// comment bodies. The set is fixed; anything else passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&#39;", "'",
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
)

// StripHTML removes markup from text. Line-break tags become newlines so the
// plain-line matcher still sees one song per line; all other tags are
// dropped and the known entities are unescaped.
func StripHTML(text string) string {
	if text == "" {
		return ""
	}
	text = brTagPattern.ReplaceAllString(text, "\n")
	text = anyTagPattern.ReplaceAllString(text, "")
	return entityReplacer.Replace(text)
}

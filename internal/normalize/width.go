package normalize

import (
	"strings"

	"golang.org/x/text/width"
)

// FoldWidth converts text to canonical width forms: full-width digits,
// punctuation, and Latin letters become their ASCII equivalents and
// half-width katakana becomes full-width. Folding is idempotent.
func FoldWidth(text string) string {
	if text == "" {
		return ""
	}
	return width.Fold.String(text)
}

// PrepareBlob readies a raw description or comment blob for pattern
// matching: line endings are unified and widths folded. Markup and line
// structure are preserved so the anchor strategy can still see them.
func PrepareBlob(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return FoldWidth(text)
}

// CollapseSpaces reduces interior whitespace runs to single spaces and trims.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

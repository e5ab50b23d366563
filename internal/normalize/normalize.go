package normalize

import "strings"

// CleanContent normalizes a single extracted song line: markup is stripped,
// widths folded, leading numbering and ornaments removed, and whitespace
// collapsed. Applying it twice yields the same result as applying it once.
func CleanContent(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = StripHTML(text)
	text = FoldWidth(text)
	text = StripNumbering(text)
	text = StripDecoration(text)
	return CollapseSpaces(text)
}

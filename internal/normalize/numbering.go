package normalize

import "regexp"

// maxNumberingPasses caps repeated numbering removal so pathological inputs
// ("01. 1) 2- …") terminate. The loop exits early once a pass is a no-op.
const maxNumberingPasses = 3

// numberingPatterns match the leading numbering tokens setlist writers use:
// "01.", "1)", "【1】", "(1)", "1 ", "第1曲" and the full-width variants that
// survive width folding.
var numberingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d{1,3}[.。)）\]】ー・\-]\s*`),
	regexp.MustCompile(`^\s*[(（【\[]\s*\d{1,3}\s*[)）】\]]\s*`),
	regexp.MustCompile(`^\s*\d{1,3}\s+`),
	regexp.MustCompile(`^\s*第\d{1,3}[曲話回章]\s*`),
}

// decorationPattern matches leading bullet and arrow ornaments that often
// precede a song line.
var decorationPattern = regexp.MustCompile(`^\s*[&＆※★☆■□◆◇●○▲△▼▽➤➡→⇒►▶・]+\s*`)

// StripNumbering repeatedly removes a leading numbering token, up to
// maxNumberingPasses times, stopping early when a pass changes nothing.
func StripNumbering(text string) string {
	for pass := 0; pass < maxNumberingPasses; pass++ {
		before := text
		for _, pattern := range numberingPatterns {
			text = pattern.ReplaceAllString(text, "")
		}
		if text == before {
			break
		}
	}
	return text
}

// StripDecoration removes leading ornament characters.
func StripDecoration(text string) string {
	return decorationPattern.ReplaceAllString(text, "")
}

package songinfo

import (
	"strings"

	"setlist/internal/normalize"
)

// separators is the ordered list of title/artist separator tokens. The
// first one found in the text splits it; order matters because "/" must win
// over " - " when both appear.
var separators = []string{
	"/", " / ", "／", "feat.", "feat ", "CV.", "CV:", "by ", " - ", "－",
}

// Parse splits song content into (title, artist). Both halves are cleaned
// independently; leading numbering is stripped again from the title since
// numbering often survives inside anchor content ("01. 曲名 / 歌手").
// When no separator is present the whole string becomes the title with an
// empty artist; rejecting that shape is the validity filter's job.
func Parse(text string) (title, artist string) {
	text = normalize.CleanContent(text)
	if text == "" {
		return "", ""
	}
	for _, sep := range separators {
		idx := strings.Index(text, sep)
		if idx < 0 {
			continue
		}
		title = normalize.CleanContent(text[:idx])
		artist = strings.TrimSpace(text[idx+len(sep):])
		if title == "" && artist == "" {
			continue
		}
		return title, artist
	}
	return text, ""
}

package dedup

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Entry is one parsed song occurrence awaiting deduplication. RawContent is
// the pre-cleaning text; leading numbering there marks the occurrence as a
// less canonical rendering of the same song.
type Entry struct {
	VideoID      string
	TimecodeText string
	Seconds      int
	Title        string
	Artist       string
	RawContent   string
	Origin       string
}

var leadingNumbering = regexp.MustCompile(`^\s*\d+`)

// bucketSize groups timecodes within five seconds of each other.
const bucketSize = 5

func groupKey(e Entry) string {
	return fmt.Sprintf("%s\x00%s\x00%s\x00%d",
		strings.ToLower(strings.TrimSpace(e.Title)),
		strings.ToLower(strings.TrimSpace(e.Artist)),
		e.VideoID,
		e.Seconds/bucketSize)
}

// Collapse returns one canonical entry per duplicate group, in the order
// each group was first seen.
func Collapse(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))

	for _, e := range entries {
		key := groupKey(e)
		at, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, e)
			continue
		}
		if better(e, out[at]) {
			out[at] = e
		}
	}
	return out
}

// better reports whether candidate should replace current as the group's
// canonical entry. Strict comparison keeps the earlier entry on ties.
func better(candidate, current Entry) bool {
	cr := rank(candidate)
	or := rank(current)
	for i := range cr {
		if cr[i] != or[i] {
			return cr[i] > or[i]
		}
	}
	return false
}

func rank(e Entry) [3]int {
	var numbered int
	if !leadingNumbering.MatchString(e.RawContent) {
		numbered = 1
	}
	return [3]int{
		numbered,
		utf8.RuneCountInString(e.Title),
		utf8.RuneCountInString(e.Artist),
	}
}

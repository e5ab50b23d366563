package timestamp

import (
	"strconv"
	"strings"
)

// Candidate is one extracted (timecode, content) pair. It lives only within
// a single extraction pass; the pipeline turns surviving candidates into
// catalog entries.
type Candidate struct {
	Timecode   string // clock text as written, "m:ss" or "h:mm:ss"
	Content    string // cleaned song line
	RawContent string // content before cleaning, kept for dedup tie-breaks
}

// ParseSeconds converts a clock string into total seconds. Malformed input
// yields zero rather than an error; validity filtering happens elsewhere.
func ParseSeconds(timecode string) int {
	parts := strings.Split(strings.TrimSpace(timecode), ":")
	switch len(parts) {
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		s, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0
		}
		return m*60 + s
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		s, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return h*3600 + m*60 + s
	default:
		return 0
	}
}

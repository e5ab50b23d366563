package extract

import "time"

// Source origins. All sources feed the same per-video dedup, so a
// setlist repeated across the description and comments yields one entry.
const (
	OriginDescription = "description"
	OriginComment     = "comment"
)

// RawSource is one text blob attached to a video. Input only; the
// pipeline never mutates it.
type RawSource struct {
	VideoID     string
	VideoTitle  string
	PublishedAt string
	StreamStart string
	Text        string
	Origin      string
}

// jst renders published dates the way the downstream sheet expects.
var jst = time.FixedZone("JST", 9*60*60)

// publishedDate picks the stream start when present, else the publish
// time, and renders it as YYYY/MM/DD in JST. Unparseable input yields "".
func publishedDate(streamStart, publishedAt string) string {
	raw := streamStart
	if raw == "" {
		raw = publishedAt
	}
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return t.In(jst).Format("2006/01/02")
}

package catalog

import "fmt"

// Entry is one catalogued song occurrence. PublishedDate is the stream
// date rendered in JST as YYYY/MM/DD; an unparseable upstream timestamp
// leaves it empty rather than failing the entry.
type Entry struct {
	VideoID         string
	TimecodeText    string
	TimecodeSeconds int
	Title           string
	Artist          string
	SearchKey       string
	Genre           string
	Confidence      float64
	PublishedDate   string
	SourceLink      string
	Origin          string
}

// MergeKey is the cross-run identity: coarser than the in-run dedup key
// and stable across re-extractions of the same video.
func (e Entry) MergeKey() string {
	return e.VideoID + "\x00" + e.TimecodeText
}

// WatchLink builds the timestamped watch URL for a video offset.
func WatchLink(videoID string, seconds int) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", videoID, seconds)
}

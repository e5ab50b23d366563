// Package timestamp extracts (timecode, content) candidates from normalized
// description and comment blobs.
//
// Two strategies run in priority order: anchor-tagged timestamps (YouTube
// renders clickable clock anchors in descriptions) and plain-line timestamps
// ("3:45 曲名 / 歌手"). Anchors, when present in a blob, are trusted as the
// more reliable source and suppress the plain-line pass for that blob.
//
// The validity filter screens out candidates that are clearly not song
// mentions: bare URLs, channel IDs, digit-only content, and stream-lifecycle
// announcements. A candidate containing an artist separator token overrides
// the announcement blacklist.
package timestamp

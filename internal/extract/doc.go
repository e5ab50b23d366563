// Package extract runs the song-extraction pipeline over raw video text.
//
// Each RawSource blob is normalized, scanned for timestamp candidates,
// filtered, parsed into (title, artist) and deduplicated per video. The
// surviving entries get a genre, a phonetic search key, a per-video
// confidence score and an optional artist backfill from the lookup
// service. Output order is deterministic and follows input order.
package extract

// Package dedup collapses near-duplicate song entries produced within a
// single extraction run.
//
// Entries group on (lowercased title, lowercased artist, video ID, 5-second
// timecode bucket); each group yields one canonical entry. Canonical
// selection prefers entries whose raw content carries no leading numbering,
// then longer titles, then longer artists, keeping the first-encountered
// entry on full ties so output order stays deterministic.
package dedup

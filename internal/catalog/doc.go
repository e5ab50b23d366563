// Package catalog owns the canonical song-entry store.
//
// Entries are globally unique by (video ID, timecode text) and only ever
// appended; existing rows never change across runs. Persistence is a
// SQLite database guarded by a file lock so concurrent scans cannot
// interleave merges. The pure Merge function defines the append-only
// semantics independently of storage and is what the store enforces.
package catalog

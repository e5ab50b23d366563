package catalog

import "sort"

// Merge appends the incoming entries that are not already present, keyed
// by (video ID, timecode text), and returns the combined set sorted by
// (published date, timecode seconds). Existing entries are never modified
// or dropped; merging the same batch twice leaves the result unchanged.
func Merge(existing, incoming []Entry) []Entry {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]Entry, 0, len(existing)+len(incoming))

	for _, e := range existing {
		if _, dup := seen[e.MergeKey()]; dup {
			continue
		}
		seen[e.MergeKey()] = struct{}{}
		out = append(out, e)
	}
	for _, e := range incoming {
		if _, dup := seen[e.MergeKey()]; dup {
			continue
		}
		seen[e.MergeKey()] = struct{}{}
		out = append(out, e)
	}

	SortEntries(out)
	return out
}

// SortEntries orders entries by (published date, timecode seconds) in
// place. The stable sort keeps existing-before-incoming order on ties so
// repeated merges stay byte-identical.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].PublishedDate != entries[j].PublishedDate {
			return entries[i].PublishedDate < entries[j].PublishedDate
		}
		return entries[i].TimecodeSeconds < entries[j].TimecodeSeconds
	})
}

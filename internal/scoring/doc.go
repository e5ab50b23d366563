// Package scoring computes a per-video singing-stream confidence score.
//
// The score is a normalized weighted sum of text signals (keyword hits,
// title patterns, timecode density in the description and comments) plus
// tiered bonuses derived from the entries already extracted for the video.
// It is advisory metadata: entry inclusion never depends on it. The
// separate IsSingingStream helper applies the hard accept rule used to
// pre-filter videos before extraction.
package scoring

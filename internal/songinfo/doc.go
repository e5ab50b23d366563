// Package songinfo splits extracted song content into title and artist and
// decides whether the pair plausibly names a song.
//
// Splitting tries a fixed, ordered separator list; the first separator
// present wins and both halves are re-normalized. Validity is policy-driven:
// whether artist-less entries count as songs is a configuration decision,
// not a hard-coded branch.
package songinfo

// Package normalize cleans raw description and comment text before
// timestamp extraction and song parsing.
//
// The helpers are pure functions over strings: HTML tag stripping with
// entity unescaping, canonical width folding (full-width digits and
// punctuation to ASCII), and leading-numbering removal. CleanContent chains
// them for single-line song content; PrepareBlob readies a whole text blob
// while preserving line structure for the pattern matcher.
//
// Every function is idempotent and never fails; unrecognized input comes
// back unchanged apart from whitespace trimming.
package normalize

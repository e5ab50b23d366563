// Package phonetic derives kana search keys for song titles.
//
// The built-in KanaFolder is a dictionary-free approximation: katakana
// folds to hiragana, ASCII lowercases, full-width digits fold to half
// width and full-width brackets drop. Kanji passes through unchanged, so
// keys for kanji-heavy titles are partial. The Converter interface leaves
// room for a morphological backend without touching callers.
package phonetic

package phonetic

import (
	"strings"
	"unicode"
)

// Converter turns display text into a phonetic search key.
type Converter interface {
	ToPhonetic(text string) string
}

// KanaFolder is the built-in Converter.
type KanaFolder struct{}

// NewKanaFolder returns the dictionary-free converter.
func NewKanaFolder() *KanaFolder {
	return &KanaFolder{}
}

// ToPhonetic folds text into a lowercase hiragana-leaning search key.
func (KanaFolder) ToPhonetic(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'ァ' && r <= 'ヶ':
			// Keeps the katakana-hiragana block offset. ヵ and ヶ fold
			// to the plain か and け rather than their small forms.
			switch r {
			case 'ヵ':
				b.WriteRune('か')
			case 'ヶ':
				b.WriteRune('け')
			default:
				b.WriteRune(r - 'ァ' + 'ぁ')
			}
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		case r >= '０' && r <= '９':
			b.WriteRune(r - '０' + '0')
		case isFullWidthBracket(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isFullWidthBracket(r rune) bool {
	switch r {
	case '（', '）', '［', '］', '｛', '｝':
		return true
	}
	return false
}

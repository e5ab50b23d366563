package songinfo

import (
	"regexp"
	"strings"
	"unicode"
)

// Policy controls the open acceptance questions around artist-less entries.
type Policy struct {
	// AllowTitleOnly accepts entries without an artist when the title looks
	// like a real song name. The source data disagrees on whether such
	// entries are songs, so this stays a switch rather than a rule.
	AllowTitleOnly bool
}

var (
	numericPunctTitle = regexp.MustCompile(`^[\d\s.\-()\[\]　]+$`)
	numberingRemnant  = regexp.MustCompile(`^\d+[.)\-\s]*$`)

	// titleBlacklist matches non-song lines that pass the timestamp filter:
	// setlist headers, greetings, lifecycle announcements, setup talk.
	titleBlacklist = []*regexp.Regexp{
		regexp.MustCompile(`^セトリ`),
		regexp.MustCompile(`^タイムスタンプ`),
		regexp.MustCompile(`^リスト`),
		regexp.MustCompile(`^曲目`),
		regexp.MustCompile(`^\d+曲目`),
		regexp.MustCompile(`(?i)^BGM`),
		regexp.MustCompile(`^挨拶`),
		regexp.MustCompile(`^あいさつ`),
		regexp.MustCompile(`^おはよ`),
		regexp.MustCompile(`^こんにち`),
		regexp.MustCompile(`^こんばん`),
		regexp.MustCompile(`配信(開始|終了)`),
		regexp.MustCompile(`^マイク(テスト|調整)`),
	}
)

// Valid reports whether (title, artist) plausibly names a song under the
// given policy. A non-empty artist waives the title length requirement but
// not the blacklist or numeric-only rejections.
func (p Policy) Valid(title, artist string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	if numericPunctTitle.MatchString(title) || numberingRemnant.MatchString(title) {
		return false
	}
	for _, pattern := range titleBlacklist {
		if pattern.MatchString(title) {
			return false
		}
	}
	if strings.TrimSpace(artist) != "" {
		return true
	}
	if !p.AllowTitleOnly {
		return false
	}
	if len([]rune(title)) < 3 {
		return false
	}
	return hasWordCharacter(title)
}

// hasWordCharacter reports whether the title carries at least one Latin
// letter or Japanese-script character.
func hasWordCharacter(text string) bool {
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return true
		case unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han):
			return true
		case r == 'ー':
			continue
		}
	}
	return false
}

package timestamp

import (
	"regexp"
	"strings"
)

// Validator screens candidates that are clearly not song mentions.
type Validator struct {
	channelIDs []string
	blacklist  []string
}

// defaultBlacklist covers stream-lifecycle announcements, silence markers,
// and technical-setup talk that routinely carry timestamps without naming a
// song.
var defaultBlacklist = []string{
	"待機", "開始", "終了", "配信", "休憩", "雑談",
	"無音", "マイクテスト", "音量調整", "音声テスト",
	"おつ", "お疲", "ありがと",
	"thank", "thanks", "stream start", "stream end",
}

// separatorTokens are artist separators. Their presence overrides a
// blacklist hit: "開始の合図 / 某アーティスト" is plausibly a real song.
var separatorTokens = []string{"/", "feat.", "feat ", "CV.", "CV:", "by "}

var (
	digitPunctOnly = regexp.MustCompile(`^[\d\s.\-()\[\]　:：]+$`)
	urlPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^https?://`),
		regexp.MustCompile(`(?i)^www\.`),
		regexp.MustCompile(`(?i)youtube\.com/watch`),
		regexp.MustCompile(`(?i)youtu\.be/`),
		regexp.MustCompile(`(?i)href=`),
	}
)

// NewValidator builds a validator. Nil slices fall back to the built-in
// channel-id and blacklist tables.
func NewValidator(channelIDs, blacklist []string) *Validator {
	if blacklist == nil {
		blacklist = defaultBlacklist
	}
	if channelIDs == nil {
		channelIDs = []string{"UCY85ViSyTU5Wy_bwsUVjkdA"}
	}
	return &Validator{channelIDs: channelIDs, blacklist: blacklist}
}

// ValidSongTimestamp reports whether a candidate plausibly describes a song.
// URL, channel-id, and digit-only rejections are unconditional; the
// announcement blacklist yields to an artist separator token.
func (v *Validator) ValidSongTimestamp(timecode, content string) bool {
	content = strings.TrimSpace(content)
	if content == "" || ParseSeconds(timecode) < 0 {
		return false
	}
	if strings.ContainsAny(content, "<>") {
		return false
	}
	for _, pattern := range urlPatterns {
		if pattern.MatchString(content) {
			return false
		}
	}
	for _, id := range v.channelIDs {
		if id != "" && strings.Contains(content, id) {
			return false
		}
	}
	if digitPunctOnly.MatchString(content) {
		return false
	}
	if v.blacklisted(content) && !hasSeparatorToken(content) {
		return false
	}
	return true
}

func (v *Validator) blacklisted(content string) bool {
	lowered := strings.ToLower(content)
	for _, phrase := range v.blacklist {
		if phrase == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

func hasSeparatorToken(content string) bool {
	for _, token := range separatorTokens {
		if strings.Contains(content, token) {
			return true
		}
	}
	return false
}

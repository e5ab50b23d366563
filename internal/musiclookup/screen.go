package musiclookup

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonMusicKeywords mark stream furniture, talk segments, food reviews and
// similar timestamps that should never be sent to the search API.
var nonMusicKeywords = []string{
	"待機", "開始", "終了", "配信", "雑談", "ゲーム", "スタート", "エンディング",
	"お知らせ", "トーク", "休憩", "終わり", "おわり", "はじまり", "始まり",
	"クリア", "ミッション", "ステージ", "レベル", "チャプター", "パート",
	"質問", "q&a", "マシュマロ", "スパチャ", "コメント", "返信",
	"自己紹介", "挨拶", "あいさつ", "ルール", "説明",
	"企画", "コラボ", "お便り", "おたより", "告知",
	"読み上げ", "紹介", "しょうかい", "参加", "さんか",
	"登場", "とうじょう", "出演", "しゅつえん",
	"の話", "について", "とは", "募集", "決め",
	"ラーメン", "中華そば", "そば", "つけ麺", "製麺", "スープ", "店舗",
	"博物館", "食堂", "カップ麺", "背脂", "味玉", "どんぶり",
	"昇格", "対決", "拡張", "part", "ルーレット",
	"マイク", "事情", "活用", "方法", "確認", "タグ",
	"声入り", "寝起き", "意気込み", "披露", "フラグ", "回収",
	"再生", "同時視聴", "記念", "マロ", "ましゅまろ",
	"可愛い", "かわいい", "かわちい", "うわー", "いやー", "にゃ",
	"おっけい", "loading", "zzz",
}

var nonMusicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`.+の話$`),
	regexp.MustCompile(`.+について$`),
	regexp.MustCompile(`.+とは？?$`),
	regexp.MustCompile(`.+事情$`),
	regexp.MustCompile(`.+方法$`),
	regexp.MustCompile(`part\s*\d+`),
	regexp.MustCompile(`パート\s*\d+`),
	regexp.MustCompile(`^声入り`),
	regexp.MustCompile(`削る$`),
	regexp.MustCompile(`^問目`),
	regexp.MustCompile(`^枚目`),
}

// WorthLooking reports whether a title-only entry plausibly names a song
// and deserves a network lookup.
func WorthLooking(title string) bool {
	trimmed := strings.TrimSpace(title)
	if utf8.RuneCountInString(trimmed) <= 3 {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, kw := range nonMusicKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, pattern := range nonMusicPatterns {
		if pattern.MatchString(lower) {
			return false
		}
	}

	// Emoji-heavy lines are reactions, not titles.
	total := 0
	emoji := 0
	for _, r := range trimmed {
		total++
		if r > 0x1F000 {
			emoji++
		}
	}
	if total > 0 && float64(emoji) > float64(total)*0.3 {
		return false
	}
	return true
}

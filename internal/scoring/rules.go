package scoring

// Rules holds the tunable inputs for singing-stream detection. All fields
// are read-only once handed to a Scorer.
type Rules struct {
	IncludeKeywords []string
	ExcludeKeywords []string
	// BonusPatterns are extra regular expressions worth two points each
	// when they match the title or description. The strong-title and
	// music-symbol bonuses are built in; these extend them.
	BonusPatterns []string
	// MinimumScore accepts a video when the raw score reaches it and the
	// exclude hits stay bounded by the score.
	MinimumScore int
	// MinimumScoreOverride accepts unconditionally at or above this score.
	MinimumScoreOverride int
}

// DefaultRules returns the built-in detection table.
func DefaultRules() Rules {
	return Rules{
		IncludeKeywords: []string{
			"歌", "うた", "歌枠", "うたわく", "歌配信", "singing", "sing",
			"カラオケ", "からおけ", "karaoke",
			"音楽", "music", "楽曲", "ソング", "song",
			"メドレー", "medley", "弾き語り",
			"ライブ", "live", "演奏", "performance",
			"アカペラ", "acappella", "コーラス", "chorus",
			"歌ってみた", "うたってみた", "歌リレー", "歌回",
			"リクエスト歌", "歌練習", "新曲", "cover",
			"ボカロ", "vocaloid", "アニソン", "anime song", "anisong",
			"セトリ", "setlist", "リハ", "リハーサル", "rehearsal",
		},
		ExcludeKeywords: []string{
			"ゲーム", "game", "gaming", "プレイ", "play",
			"雑談", "zatsudan", "talk", "おしゃべり", "chat",
			"料理", "cooking", "クッキング", "食べる", "eating",
			"お絵描き", "絵", "drawing", "art", "イラスト",
			"工作", "craft", "作業", "work", "study", "勉強",
		},
		MinimumScore:         2,
		MinimumScoreOverride: 4,
	}
}

package genre

import "sort"

// Rule is one genre's matching table. Lower priority values are evaluated
// first; ties break on the rule name so iteration stays deterministic.
type Rule struct {
	Name     string
	Priority int
	Artists  []string
	Keywords []string
}

// DefaultSentinel is the label applied when nothing matches.
const DefaultSentinel = "その他"

// SortRules orders rules by (priority, name) in place and returns the slice.
func SortRules(rules []Rule) []Rule {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].Name < rules[j].Name
	})
	return rules
}

// DefaultRules is the built-in fallback table used when configuration is
// missing or malformed. It covers the labels the original dataset uses.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "Vocaloid",
			Priority: 1,
			Artists: []string{
				"初音ミク", "鏡音リン", "鏡音レン", "巡音ルカ", "MEIKO", "KAITO",
				"GUMI", "IA", "重音テト", "DECO*27", "wowaka", "supercell",
				"みきとP", "かいりきベア", "Neru", "40mP", "バルーン", "n-buna",
				"ピノキオピー", "Chinozo", "Orangestar", "Kanaria", "ハチ",
				"kemu", "doriko", "柊マグネタイト",
			},
			Keywords: []string{"ボカロ", "vocaloid", "ボーカロイド"},
		},
		{
			Name:     "アニメ",
			Priority: 2,
			Artists: []string{
				"涼宮ハルヒ", "千石撫子", "MAHO堂", "どうぶつビスケッツ",
				"放課後ティータイム", "高橋洋子", "LiSA",
			},
			Keywords: []string{"アニメ", "anime", "アニソン", "anisong"},
		},
		{
			Name:     "J-POP",
			Priority: 3,
			Artists: []string{
				"米津玄師", "YOASOBI", "あいみょん", "Mrs. GREEN APPLE",
				"Official髭男dism", "King Gnu", "SILENT SIREN", "スピッツ",
			},
			Keywords: []string{"j-pop", "jpop"},
		},
	}
}

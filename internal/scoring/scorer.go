package scoring

import (
	"log/slog"
	"regexp"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"setlist/internal/logging"
)

// maxAchievable normalizes the raw weighted sum to [0, 1]. Ten points
// represents a saturated set of signals for one video.
const maxAchievable = 10.0

var (
	strongTitlePattern = regexp.MustCompile(`[歌うたウタ]`)
	musicSymbolPattern = regexp.MustCompile(`[♪♫♬🎵🎶🎤🎼]`)
	timecodePattern    = regexp.MustCompile(`\d{1,2}:\d{2}`)
)

// Signals carries everything Score looks at for one video. Entry counts
// come from the extraction pass that already ran for the video; zero
// TotalEntries simply skips the entry-derived bonuses.
type Signals struct {
	Title       string
	Description string
	Comments    []string

	TotalEntries      int
	EntriesWithArtist int
}

// Scorer evaluates singing-stream signals against one rules table.
type Scorer struct {
	rules          Rules
	includeMatcher *ahocorasick.Matcher
	excludeMatcher *ahocorasick.Matcher
	bonusPatterns  []*regexp.Regexp
	logger         *slog.Logger
}

// New builds a scorer. Empty keyword lists fall back to the built-in
// table so a broken config degrades detection instead of disabling it.
func New(rules Rules, logger *slog.Logger) *Scorer {
	log := logging.NewComponentLogger(logger, "scoring")
	defaults := DefaultRules()
	if len(rules.IncludeKeywords) == 0 {
		log.Warn("no include keywords configured, using built-in defaults")
		rules.IncludeKeywords = defaults.IncludeKeywords
	}
	if len(rules.ExcludeKeywords) == 0 {
		rules.ExcludeKeywords = defaults.ExcludeKeywords
	}
	if rules.MinimumScore <= 0 {
		rules.MinimumScore = defaults.MinimumScore
	}
	if rules.MinimumScoreOverride <= 0 {
		rules.MinimumScoreOverride = defaults.MinimumScoreOverride
	}
	var bonuses []*regexp.Regexp
	for _, pattern := range rules.BonusPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Warn("skipping invalid bonus pattern",
				logging.String("pattern", pattern),
				logging.Error(err))
			continue
		}
		bonuses = append(bonuses, re)
	}
	return &Scorer{
		rules:          rules,
		includeMatcher: newKeywordMatcher(rules.IncludeKeywords),
		excludeMatcher: newKeywordMatcher(rules.ExcludeKeywords),
		bonusPatterns:  bonuses,
		logger:         log,
	}
}

func newKeywordMatcher(keywords []string) *ahocorasick.Matcher {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return ahocorasick.NewStringMatcher(lowered)
}

// Score returns the confidence in [0, 1] that the video is a singing
// stream. Each include keyword present counts once, regardless of how
// often it repeats.
func (s *Scorer) Score(sig Signals) float64 {
	singing, exclude := s.textScores(sig.Title, sig.Description, sig.Comments)
	singing += entryArtistBonus(sig.TotalEntries, sig.EntriesWithArtist)
	singing += entryCountBonus(sig.TotalEntries)

	raw := singing - exclude
	if raw < 0 {
		raw = 0
	}
	score := float64(raw) / maxAchievable
	if score > 1 {
		score = 1
	}
	return score
}

// IsSingingStream applies the hard accept rule used to pre-filter videos
// before extraction: the minimum score with exclude hits bounded by the
// score, or the override minimum unconditionally.
func (s *Scorer) IsSingingStream(title, description string, comments []string) bool {
	singing, exclude := s.textScores(title, description, comments)
	if singing >= s.rules.MinimumScore && exclude <= singing {
		return true
	}
	return singing >= s.rules.MinimumScoreOverride
}

func (s *Scorer) textScores(title, description string, comments []string) (singing, exclude int) {
	combined := []byte(strings.ToLower(title + " " + description))

	singing = len(s.includeMatcher.Match(combined))
	exclude = len(s.excludeMatcher.Match(combined))

	if strongTitlePattern.MatchString(title) {
		singing += 3
	}
	if musicSymbolPattern.Match(combined) {
		singing += 2
	}
	for _, re := range s.bonusPatterns {
		if re.MatchString(title) || re.MatchString(description) {
			singing += 2
		}
	}
	if len(timecodePattern.FindAllString(description, -1)) >= 3 {
		singing += 2
	}

	// Comments stuffed with timecodes are a strong setlist signal even
	// when the description carries none.
	dense := 0
	for _, comment := range comments {
		if len(timecodePattern.FindAllString(comment, -1)) >= 3 {
			dense++
		}
	}
	switch {
	case dense >= 2:
		singing += 4
	case dense >= 1:
		singing += 2
	}
	return singing, exclude
}

func entryArtistBonus(total, withArtist int) int {
	if total <= 0 {
		return 0
	}
	ratio := float64(withArtist) / float64(total)
	switch {
	case ratio >= 0.75:
		return 3
	case ratio >= 0.5:
		return 2
	case ratio >= 0.25:
		return 1
	}
	return 0
}

func entryCountBonus(total int) int {
	switch {
	case total >= 15:
		return 3
	case total >= 8:
		return 2
	case total >= 3:
		return 1
	}
	return 0
}

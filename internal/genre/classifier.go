package genre

import (
	"log/slog"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"setlist/internal/logging"
)

// Classifier maps (artist, title) to a genre label.
type Classifier struct {
	rules        []Rule
	keywordSets  []*ahocorasick.Matcher
	artistToRule map[string]string
	sentinel     string
	logger       *slog.Logger
}

// Options configures a Classifier.
type Options struct {
	Rules []Rule
	// ArtistMap seeds exact artist-to-genre mappings, highest priority.
	ArtistMap map[string]string
	// Sentinel is the label for unmatched input; DefaultSentinel when empty.
	Sentinel string
	Logger   *slog.Logger
}

// New builds a classifier. Empty or nil rules fall back to the built-in
// table; the fallback is logged, never fatal, so a broken rules file
// degrades classification without stopping extraction.
func New(opts Options) *Classifier {
	logger := logging.NewComponentLogger(opts.Logger, "genre")

	rules := opts.Rules
	if len(rules) == 0 {
		logger.Warn("no usable genre rules configured, using built-in defaults")
		rules = DefaultRules()
	}
	rules = SortRules(rules)

	sentinel := strings.TrimSpace(opts.Sentinel)
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	keywordSets := make([]*ahocorasick.Matcher, len(rules))
	for i, rule := range rules {
		if len(rule.Keywords) == 0 {
			continue
		}
		lowered := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				lowered = append(lowered, kw)
			}
		}
		if len(lowered) > 0 {
			keywordSets[i] = ahocorasick.NewStringMatcher(lowered)
		}
	}

	artistToRule := make(map[string]string, len(opts.ArtistMap))
	for artist, name := range opts.ArtistMap {
		artist = strings.TrimSpace(artist)
		if artist != "" && name != "" {
			artistToRule[artist] = name
		}
	}

	return &Classifier{
		rules:        rules,
		keywordSets:  keywordSets,
		artistToRule: artistToRule,
		sentinel:     sentinel,
		logger:       logger,
	}
}

// Classify returns the genre for an (artist, title) pair. Identical inputs
// against an unchanged classifier always return identical output.
func (c *Classifier) Classify(artist, title string) string {
	artist = strings.TrimSpace(artist)
	title = strings.TrimSpace(title)

	if artist != "" {
		if name, ok := c.artistToRule[artist]; ok {
			return name
		}
	}

	combined := []byte(strings.ToLower(artist + " " + title))
	for i, rule := range c.rules {
		matcher := c.keywordSets[i]
		if matcher == nil {
			continue
		}
		if hits := matcher.Match(combined); len(hits) > 0 {
			return rule.Name
		}
	}

	if artist != "" {
		loweredArtist := strings.ToLower(artist)
		for _, rule := range c.rules {
			for _, known := range rule.Artists {
				knownLower := strings.ToLower(strings.TrimSpace(known))
				if knownLower == "" {
					continue
				}
				if strings.Contains(loweredArtist, knownLower) || strings.Contains(knownLower, loweredArtist) {
					return rule.Name
				}
			}
		}
	}

	return c.sentinel
}

// Sentinel returns the label used for unmatched input.
func (c *Classifier) Sentinel() string {
	return c.sentinel
}

// UpdateArtistMapping records one learned artist-to-genre fact. This is the
// only sanctioned mutation path; it takes effect for subsequent Classify
// calls on this classifier.
func (c *Classifier) UpdateArtistMapping(artist, name string) {
	artist = strings.TrimSpace(artist)
	name = strings.TrimSpace(name)
	if artist == "" || name == "" {
		return
	}
	c.artistToRule[artist] = name
	c.logger.Info("learned artist mapping",
		logging.String("artist", artist),
		logging.String("genre", name))
}

// ArtistMappings returns a copy of the exact-match table, learned entries
// included, for persistence by the caller.
func (c *Classifier) ArtistMappings() map[string]string {
	out := make(map[string]string, len(c.artistToRule))
	for artist, name := range c.artistToRule {
		out[artist] = name
	}
	return out
}

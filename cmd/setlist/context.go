package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/genre"
	"setlist/internal/logging"
	"setlist/internal/musiclookup"
	"setlist/internal/scoring"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// newClassifier assembles the genre classifier from configured rules and
// the learned artist map. Map read failures degrade to an empty map so a
// corrupt file never blocks a scan.
func (c *commandContext) newClassifier(cfg *config.Config, logger *slog.Logger) *genre.Classifier {
	artistMap, err := genre.LoadArtistMap(cfg.Classification.ArtistMapPath)
	if err != nil {
		logger.Warn("artist map unreadable, continuing without it",
			logging.String("path", cfg.Classification.ArtistMapPath),
			logging.Error(err))
		artistMap = map[string]string{}
	}
	return genre.New(genre.Options{
		Rules:     genreRules(cfg),
		ArtistMap: artistMap,
		Sentinel:  cfg.Classification.DefaultGenre,
		Logger:    logger,
	})
}

func genreRules(cfg *config.Config) []genre.Rule {
	rules := make([]genre.Rule, 0, len(cfg.Classification.Rules))
	for name, rule := range cfg.Classification.Rules {
		rules = append(rules, genre.Rule{
			Name:     name,
			Priority: rule.Priority,
			Artists:  rule.Artists,
			Keywords: rule.Keywords,
		})
	}
	return genre.SortRules(rules)
}

func scoringRules(cfg *config.Config) scoring.Rules {
	rules := scoring.DefaultRules()
	if len(cfg.Scoring.IncludeKeywords) > 0 {
		rules.IncludeKeywords = cfg.Scoring.IncludeKeywords
	}
	if len(cfg.Scoring.ExcludeKeywords) > 0 {
		rules.ExcludeKeywords = cfg.Scoring.ExcludeKeywords
	}
	rules.BonusPatterns = cfg.Scoring.BonusPatterns
	rules.MinimumScore = cfg.Scoring.MinimumScore
	rules.MinimumScoreOverride = cfg.Scoring.MinimumScoreOverride
	return rules
}

// newLookup returns nil when artist backfill is disabled.
func newLookup(cfg *config.Config) musiclookup.Searcher {
	if !cfg.Lookup.Enabled {
		return nil
	}
	interval := time.Duration(cfg.Lookup.RequestIntervalSeconds) * time.Second
	return musiclookup.New(cfg.Lookup.BaseURL, musiclookup.WithRequestInterval(interval))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

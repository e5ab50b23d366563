package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeYouTube(); err != nil {
		return err
	}
	if err := c.normalizeClassification(); err != nil {
		return err
	}
	c.normalizeScoring()
	c.normalizeLookup()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeYouTube() error {
	c.YouTube.APIKey = strings.TrimSpace(c.YouTube.APIKey)
	if c.YouTube.APIKey == "" {
		if value, ok := os.LookupEnv("YOUTUBE_API_KEY"); ok {
			c.YouTube.APIKey = strings.TrimSpace(value)
		}
	}
	c.YouTube.BaseURL = strings.TrimSpace(c.YouTube.BaseURL)
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = defaultYouTubeBaseURL
	}
	c.YouTube.ChannelID = strings.TrimSpace(c.YouTube.ChannelID)
	if c.YouTube.ChannelID == "" {
		c.YouTube.ChannelID = defaultChannelID
	}
	if c.YouTube.MaxComments <= 0 {
		c.YouTube.MaxComments = defaultMaxComments
	}
	return nil
}

func (c *Config) normalizeClassification() error {
	c.Classification.DefaultGenre = strings.TrimSpace(c.Classification.DefaultGenre)
	if c.Classification.DefaultGenre == "" {
		c.Classification.DefaultGenre = defaultGenre
	}
	if strings.TrimSpace(c.Classification.ArtistMapPath) == "" {
		c.Classification.ArtistMapPath = defaultArtistMapPath
	}
	var err error
	if c.Classification.ArtistMapPath, err = expandPath(c.Classification.ArtistMapPath); err != nil {
		return fmt.Errorf("classification.artist_map_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeScoring() {
	if c.Scoring.MinimumScore <= 0 {
		c.Scoring.MinimumScore = defaultMinimumScore
	}
	if c.Scoring.MinimumScoreOverride <= 0 {
		c.Scoring.MinimumScoreOverride = defaultMinimumScoreOverride
	}
}

func (c *Config) normalizeLookup() {
	c.Lookup.BaseURL = strings.TrimSpace(c.Lookup.BaseURL)
	if c.Lookup.BaseURL == "" {
		c.Lookup.BaseURL = defaultLookupBaseURL
	}
	if c.Lookup.RequestIntervalSeconds < 0 {
		c.Lookup.RequestIntervalSeconds = defaultLookupInterval
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

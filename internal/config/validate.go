package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. The YouTube API key is
// checked at scan time rather than here so catalog and export commands
// work without one.
func (c *Config) Validate() error {
	if err := c.validateYouTube(); err != nil {
		return err
	}
	if err := c.validateClassification(); err != nil {
		return err
	}
	if err := c.validateScoring(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateYouTube() error {
	if !strings.HasPrefix(c.YouTube.ChannelID, "UC") {
		return fmt.Errorf("youtube.channel_id %q must be a UC channel identifier", c.YouTube.ChannelID)
	}
	return nil
}

func (c *Config) validateClassification() error {
	for name, rule := range c.Classification.Rules {
		if strings.TrimSpace(name) == "" {
			return errors.New("classification.rules contains an unnamed genre")
		}
		if len(rule.Artists) == 0 && len(rule.Keywords) == 0 {
			return fmt.Errorf("classification.rules.%s needs artists or keywords", name)
		}
	}
	return nil
}

func (c *Config) validateScoring() error {
	if c.Scoring.MinimumScoreOverride < c.Scoring.MinimumScore {
		return errors.New("scoring.minimum_score_override must not be below scoring.minimum_score")
	}
	return nil
}

// RequireAPIKey returns an error when the Data API key is missing, with
// guidance on where to set it.
func (c *Config) RequireAPIKey() error {
	if c.YouTube.APIKey != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/setlist/config.toml"
	}
	return fmt.Errorf("youtube.api_key is required. Set YOUTUBE_API_KEY env var or edit %s (create with 'setlist config init')", defaultPath)
}

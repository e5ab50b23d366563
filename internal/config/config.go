package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	LogDir    string `toml:"log_dir"`
	ExportDir string `toml:"export_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// YouTube contains Data API access settings.
type YouTube struct {
	APIKey      string `toml:"api_key"`
	BaseURL     string `toml:"base_url"`
	ChannelID   string `toml:"channel_id"`
	MaxComments int    `toml:"max_comments"`
}

// Extraction tunes candidate filtering.
type Extraction struct {
	// AllowTitleOnly accepts entries that parsed without an artist.
	AllowTitleOnly bool `toml:"allow_title_only"`
	// ChannelIDs are rejected as timestamp content (self links).
	ChannelIDs []string `toml:"channel_ids"`
	// Blacklist replaces the built-in non-song content terms when set.
	Blacklist []string `toml:"blacklist"`
}

// GenreRule is one genre's matching table in priority order.
type GenreRule struct {
	Priority int      `toml:"priority"`
	Artists  []string `toml:"artists"`
	Keywords []string `toml:"keywords"`
}

// Classification configures the genre classifier.
type Classification struct {
	DefaultGenre  string               `toml:"default_genre"`
	Rules         map[string]GenreRule `toml:"rules"`
	ArtistMapPath string               `toml:"artist_map_path"`
}

// Scoring configures singing-stream detection.
type Scoring struct {
	IncludeKeywords      []string `toml:"include_keywords"`
	ExcludeKeywords      []string `toml:"exclude_keywords"`
	BonusPatterns        []string `toml:"bonus_patterns"`
	MinimumScore         int      `toml:"minimum_score"`
	MinimumScoreOverride int      `toml:"minimum_score_override"`
}

// Lookup configures optional artist backfill via the iTunes Search API.
type Lookup struct {
	Enabled                bool   `toml:"enabled"`
	BaseURL                string `toml:"base_url"`
	RequestIntervalSeconds int    `toml:"request_interval_seconds"`
}

// Config encapsulates all configuration values for setlist.
//
// Configuration sections by subsystem:
//   - Paths: data, log, and export directories
//   - Logging: log format and level
//   - YouTube: Data API key, channel, and comment limits
//   - Extraction: candidate filtering and the title-only policy
//   - Classification: genre rules and the learned artist map location
//   - Scoring: singing-stream keyword tables and thresholds
//   - Lookup: optional iTunes artist backfill
type Config struct {
	Paths          Paths          `toml:"paths"`
	Logging        Logging        `toml:"logging"`
	YouTube        YouTube        `toml:"youtube"`
	Extraction     Extraction     `toml:"extraction"`
	Classification Classification `toml:"classification"`
	Scoring        Scoring        `toml:"scoring"`
	Lookup         Lookup         `toml:"lookup"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/setlist/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("setlist.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the directories scans and exports write into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir, c.Paths.ExportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CatalogPath returns the catalog database location.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.Paths.DataDir, "catalog.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

package config

const (
	defaultDataDir              = "~/.local/share/setlist"
	defaultLogDir               = "~/.local/share/setlist/logs"
	defaultExportDir            = "~/.local/share/setlist/exports"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultYouTubeBaseURL       = "https://www.googleapis.com/youtube/v3"
	defaultChannelID            = "UCY85ViSyTU5Wy_bwsUVjkdA"
	defaultMaxComments          = 100
	defaultGenre                = "その他"
	defaultArtistMapPath        = "~/.local/share/setlist/artist_map.json"
	defaultMinimumScore         = 2
	defaultMinimumScoreOverride = 4
	defaultLookupBaseURL        = "https://itunes.apple.com"
	defaultLookupInterval       = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		YouTube: YouTube{
			BaseURL:     defaultYouTubeBaseURL,
			ChannelID:   defaultChannelID,
			MaxComments: defaultMaxComments,
		},
		Classification: Classification{
			DefaultGenre:  defaultGenre,
			ArtistMapPath: defaultArtistMapPath,
		},
		Scoring: Scoring{
			MinimumScore:         defaultMinimumScore,
			MinimumScoreOverride: defaultMinimumScoreOverride,
		},
		Lookup: Lookup{
			BaseURL:                defaultLookupBaseURL,
			RequestIntervalSeconds: defaultLookupInterval,
		},
	}
}

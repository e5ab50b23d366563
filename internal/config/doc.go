// Package config loads, normalizes, and validates setlist configuration.
//
// Configuration comes from a TOML file (~/.config/setlist/config.toml or
// ./setlist.toml), layered over repository defaults. API keys may also
// arrive through environment variables so they stay out of config files.
package config

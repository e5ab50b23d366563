package genre

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadArtistMap reads learned artist-to-genre mappings from a JSON file.
// A missing file is not an error; it returns an empty map so first runs
// work without setup.
func LoadArtistMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read artist map: %w", err)
	}

	raw := map[string]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse artist map %s: %w", path, err)
	}

	out := make(map[string]string, len(raw))
	for artist, name := range raw {
		artist = strings.TrimSpace(artist)
		name = strings.TrimSpace(name)
		if artist != "" && name != "" {
			out[artist] = name
		}
	}
	return out, nil
}

// SaveArtistMap writes the mapping table as indented JSON. The write goes
// through a temp file and rename so a crash never truncates the map.
func SaveArtistMap(path string, mappings map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artist map directory: %w", err)
	}

	data, err := json.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artist map: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write artist map: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace artist map: %w", err)
	}
	return nil
}

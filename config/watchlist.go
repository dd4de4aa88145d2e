package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Watchlist is the scan universe loaded from a YAML file.
type Watchlist struct {
	Symbols []string `yaml:"symbols"`
}

// LoadWatchlist reads the scan universe from path. An empty symbol list is a
// configuration error: a scan over nothing is always a mistake.
func LoadWatchlist(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watchlist '%s': %w", path, err)
	}

	var wl Watchlist
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("failed to parse watchlist '%s': %w", path, err)
	}
	if len(wl.Symbols) == 0 {
		return nil, fmt.Errorf("watchlist '%s' contains no symbols", path)
	}
	return &wl, nil
}

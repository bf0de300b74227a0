package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	mapFile      = "map.txt"
	chromeFile   = "chrome.txt"
	entitiesFile = "entities.json"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadMap returns the map text from path, or the embedded map when path
// is empty.
func LoadMap(path string) (string, error) {
	if path == "" {
		content, err := dataFS.ReadFile(mapFile)
		if err != nil {
			return "", fmt.Errorf("failed to read embedded file %s: %w", mapFile, err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read map %s: %w", path, err)
	}
	return string(content), nil
}

// Chrome returns the embedded static UI layout.
// Panics if the asset is missing, which only happens on a broken build.
func Chrome() string {
	content, err := dataFS.ReadFile(chromeFile)
	if err != nil {
		panic(err)
	}
	return string(content)
}

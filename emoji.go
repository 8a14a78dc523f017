package fluentemoji

import (
	"encoding/json"
	"fmt"
	"os"
)

// EmojiEntry is one record of the final lookup map.
type EmojiEntry struct {
	Unicode      string   `json:"unicode"`
	Cldr         string   `json:"cldr"`
	Keywords     []string `json:"keywords"`
	HasSkinTones bool     `json:"hasSkinTones"`
	SkinTones    []string `json:"skinTones,omitempty"`
}

// EmojiMap maps a normalized Unicode key to its entry.
type EmojiMap map[string]EmojiEntry

// Merge unions the other map into m, overwriting colliding keys.
func (m EmojiMap) Merge(other EmojiMap) {
	for key, entry := range other {
		m[key] = entry
	}
}

// WriteFragment serializes the map to a per-batch fragment file.
func (m EmojiMap) WriteFragment(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("unable to serialize the fragment: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write the fragment file: %w", err)
	}
	return nil
}

// ReadFragment deserializes a fragment file written by a batch worker.
func ReadFragment(path string) (EmojiMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the fragment file: %w", err)
	}
	var m EmojiMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unable to parse the fragment file: %w", err)
	}
	return m, nil
}

// WriteMap persists the final map as pretty-printed, human-readable JSON.
func (m EmojiMap) WriteMap(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize the emoji map: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write the emoji map: %w", err)
	}
	return nil
}

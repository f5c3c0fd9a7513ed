package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

// SiteList is a JSON file of candidate installation sites, used by the
// ranking surfaces and maintained by cmd/geocode.
type SiteList struct {
	UpdatedAt string           `json:"updated_at"` // ISO 8601 timestamp
	Sites     []model.Location `json:"sites"`
}

// LoadSites loads a site list from a JSON file.
func LoadSites(path string) (*SiteList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}

	var list SiteList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}

	for i, s := range list.Sites {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("site %d (%s): %w", i, s.Name, err)
		}
	}
	return &list, nil
}

// SaveSites writes a site list to a JSON file, creating the directory if
// needed.
func SaveSites(list *SiteList, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sites: %w", err)
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write sites file: %w", err)
	}
	return nil
}

package site

import (
	"encoding/json"
	"fmt"
)

// ManifestEntry is one page record in the machine-readable build manifest.
type ManifestEntry struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// buildManifest serializes the page catalog. Pages arrive in discovery order,
// so the manifest is deterministic across runs.
func buildManifest(pages []page) ([]byte, error) {
	entries := make([]ManifestEntry, 0, len(pages))
	for _, pg := range pages {
		entries = append(entries, ManifestEntry{
			Path:        pg.OutputPath,
			Title:       pg.Title,
			Description: pg.Description,
			Summary:     pg.Summary,
		})
	}
	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return append(payload, '\n'), nil
}

package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame     int     `json:"frame"`
	Time      float64 `json:"time"`
	Image     string  `json:"image,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// WriteManifest writes a JSON list of frames to path, creating its
// directory. Image paths are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame:     r.Frame,
			Time:      r.Time,
			Image:     relTo(dir, r.Path),
			Thumbnail: relTo(dir, r.Thumbnail),
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func relTo(dir, path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

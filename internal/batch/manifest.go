package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Time  float32 `json:"time"`
	File  string  `json:"file"`
	OK    bool    `json:"ok"`
	Error string  `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every rendered frame to
// the given path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame: r.Frame,
			Time:  r.Time,
			File:  r.File,
			OK:    r.Success,
			Error: r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

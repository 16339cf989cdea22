package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRunSmallSequence(t *testing.T) {
	if testing.Short() {
		t.Skip("renders frames")
	}

	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		Format:      "webp",
		Width:       64,
		Height:      36,
		Supersample: 1,
		Frames:      2,
		TimeStep:    1,
		Stars:       50,
		Workers:     2,
	}

	results := Run(cfg)

	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", r.Frame, r.Error)
		}
		info, err := os.Stat(filepath.Join(dir, r.File))
		if err != nil {
			t.Fatalf("frame %d output: %v", r.Frame, err)
		}
		if info.Size() == 0 {
			t.Fatalf("frame %d output is empty", r.Frame)
		}
	}

	// Frame times advance by the configured step.
	if results[1].Time-results[0].Time != 1 {
		t.Fatalf("times %v, %v", results[0].Time, results[1].Time)
	}
}

func TestRunSupersampled(t *testing.T) {
	if testing.Short() {
		t.Skip("renders frames")
	}

	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		Format:      "tga",
		Width:       32,
		Height:      32,
		Supersample: 2,
		Frames:      1,
		TimeStep:    1,
		Stars:       10,
		Workers:     1,
	}

	results := Run(cfg)
	if !results[0].Success {
		t.Fatalf("frame failed: %s", results[0].Error)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Frame: 0, Time: 0, File: "frame_0000.webp", Success: true},
		{Frame: 1, Time: 0.5, Error: "encode failed"},
	}

	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if !entries[0].OK || entries[0].File != "frame_0000.webp" {
		t.Fatalf("entry 0: %+v", entries[0])
	}
	if entries[1].OK || entries[1].Error == "" {
		t.Fatalf("entry 1: %+v", entries[1])
	}
}

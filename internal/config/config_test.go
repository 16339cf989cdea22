package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"output_dir": "out",
		"width": 640,
		"height": 360,
		"frames": 10,
		"format": "tga"
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{})

	if cfg.OutputDir != "out" || cfg.Width != 640 || cfg.Height != 360 || cfg.Frames != 10 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Format != "tga" {
		t.Fatalf("format %q", cfg.Format)
	}
	// Unset fields pick up defaults.
	if cfg.TimeStep != 0.5 || cfg.Stars != 500 || cfg.Supersample != 1 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Fatalf("workers %d", cfg.Workers)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Config{Width: 640, Frames: 10, Format: "webp"}
	cfg.Resolve(Flags{Width: 1920, Frames: 5, Format: "tga", OutputDir: "elsewhere"})

	if cfg.Width != 1920 || cfg.Frames != 5 || cfg.Format != "tga" || cfg.OutputDir != "elsewhere" {
		t.Fatalf("flags did not win: %+v", cfg)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Fatalf("size defaults: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Format != "webp" || cfg.OutputDir != "frames" {
		t.Fatalf("output defaults: %q %q", cfg.Format, cfg.OutputDir)
	}
	if cfg.Frames != 120 || cfg.TimeStep != 0.5 {
		t.Fatalf("render defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"tga passes", func(c *Config) { c.Format = "tga" }, false},
		{"unknown format", func(c *Config) { c.Format = "png" }, true},
		{"supersample too large", func(c *Config) { c.Supersample = 8 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{})
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("want error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)
	if _, err := Load(path); err == nil {
		t.Fatal("want error for malformed JSON")
	}
}

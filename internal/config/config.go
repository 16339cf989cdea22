package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render and output settings.
type Config struct {
	// Output
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"` // "webp" or "tga"

	// Frame geometry
	Width       int `json:"width"`
	Height      int `json:"height"`
	Supersample int `json:"supersample"`

	// Animation
	Frames    int     `json:"frames"`
	TimeStep  float32 `json:"time_step"`
	StartTime float32 `json:"start_time"`

	// Scene
	Stars   int    `json:"stars"`
	ShipOBJ string `json:"ship_obj"`

	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.TimeStep > 0 {
		c.TimeStep = float32(flags.TimeStep)
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.ShipOBJ != "" {
		c.ShipOBJ = flags.ShipOBJ
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.TimeStep <= 0 {
		c.TimeStep = 0.5
	}
	if c.Stars <= 0 {
		c.Stars = 500
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects setting combinations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Format != "webp" && c.Format != "tga" {
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}
	if c.Supersample > 4 {
		return fmt.Errorf("config: supersample %d too large (max 4)", c.Supersample)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Width     int
	Height    int
	Frames    int
	TimeStep  float64
	Workers   int
	ShipOBJ   string
}

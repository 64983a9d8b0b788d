package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"solar-raster/internal/logging"
	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths. Relative paths are resolved against BaseDir.
	BaseDir     string `json:"base_dir"`
	OutputDir   string `json:"output_dir"`
	MeshOBJ     string `json:"mesh_obj"`     // replaces the sphere for planets
	Backdrop    string `json:"backdrop"`     // image path, or a name in BackdropDir
	BackdropDir string `json:"backdrop_dir"` // images the viewer can cycle through

	// Render settings
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Supersample  int        `json:"supersample"`
	Workers      int        `json:"workers"`
	FOV          float64    `json:"fov"`
	Detail       float64    `json:"detail"`
	ToneMap      string     `json:"tone_map"`
	Pattern      string     `json:"pattern"` // color pattern over the materials, empty for none
	Background   [3]float64 `json:"background"`
	SphereStacks int        `json:"sphere_stacks"`
	SphereSlices int        `json:"sphere_slices"`
	RingSegments int        `json:"ring_segments"`
	HUD          bool       `json:"hud"`
	LogLevel     string     `json:"log_level"`

	// Offline export
	Frames    int     `json:"frames"`
	FrameStep float64 `json:"frame_step"` // simulated seconds per frame
	Thumbnail int     `json:"thumbnail"`  // longest side of the thumbnail copies, 0 for none
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. An empty BaseDir
// becomes the directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file's setting alone.
type Flags struct {
	OutputDir   string
	MeshOBJ     string
	Backdrop    string
	Width       int
	Height      int
	Supersample int
	Workers     int
	FOV         float64
	Detail      float64
	ToneMap     string
	Pattern     string
	Frames      int
	LogLevel    string
	HUD         bool
}

// Resolve applies flag overrides, then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.MeshOBJ != "" {
		c.MeshOBJ = flags.MeshOBJ
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Detail > 0 {
		c.Detail = flags.Detail
	}
	if flags.ToneMap != "" {
		c.ToneMap = flags.ToneMap
	}
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.HUD {
		c.HUD = true
	}

	// Resolve relative paths against base dir
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	c.OutputDir = c.abs(c.OutputDir)
	c.MeshOBJ = c.abs(c.MeshOBJ)
	c.BackdropDir = c.abs(c.BackdropDir)
	if c.Backdrop != "" && filepath.Ext(c.Backdrop) != "" {
		c.Backdrop = c.abs(c.Backdrop)
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOV <= 0 {
		c.FOV = 45
	}
	if c.Detail <= 0 {
		c.Detail = noise.MaxDetail
	}
	if c.ToneMap == "" {
		c.ToneMap = shade.ToneClamp.String()
	}
	if c.SphereStacks <= 0 {
		c.SphereStacks = 32
	}
	if c.SphereSlices <= 0 {
		c.SphereSlices = 48
	}
	if c.RingSegments <= 0 {
		c.RingSegments = 96
	}
	if c.FrameStep <= 0 {
		c.FrameStep = 1.0 / 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	if _, err := shade.ParseToneMap(c.ToneMap); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := pipeline.ParsePattern(c.Pattern); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d is above 8", c.Supersample)
	}
	if c.FOV >= 180 {
		return fmt.Errorf("config: fov %.1f must be below 180", c.FOV)
	}
	if c.Detail < noise.MinDetail || c.Detail > noise.MaxDetail {
		return fmt.Errorf("config: detail %.2f outside [%.1f, %.1f]", c.Detail, noise.MinDetail, noise.MaxDetail)
	}
	return nil
}

// BackgroundColor is the configured clear color.
func (c *Config) BackgroundColor() shade.Color {
	return shade.RGB(c.Background[0], c.Background[1], c.Background[2])
}

// ColorPattern returns the parsed pattern, falling back to the materials.
func (c *Config) ColorPattern() pipeline.Pattern {
	p, _ := pipeline.ParsePattern(c.Pattern)
	return p
}

// Tone returns the parsed tone map, falling back to clamp.
func (c *Config) Tone() shade.ToneMap {
	m, _ := shade.ParseToneMap(c.ToneMap)
	return m
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-raster/internal/batch"
	"solar-raster/internal/camera"
	"solar-raster/internal/config"
	"solar-raster/internal/controls"
	"solar-raster/internal/engine"
	"solar-raster/internal/logging"
	"solar-raster/internal/scene"
	"solar-raster/internal/viewer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Render N frames to disk instead of opening a window")
	outputDir := flag.String("output", "", "Output directory for -frames (default: renders)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 600)")
	supersample := flag.Int("supersample", 0, "Supersampling factor 1-8 (default: 1)")
	detail := flag.Float64("detail", 0, "Noise detail 0.4-1.0 (default: 1.0)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 45)")
	tone := flag.String("tone", "", "Tone map: clamp or aces (default: clamp)")
	pattern := flag.String("pattern", "", "Color pattern over the materials: rainbow-rings, checker, grid, stripes, plasma, red-gradient")
	backdrop := flag.String("backdrop", "", "Backdrop image path or name in backdrop_dir")
	meshOBJ := flag.String("mesh", "", "OBJ mesh drawn in place of the planet sphere")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error (default: info)")
	hud := flag.Bool("hud", false, "Overlay frame information")
	spin := flag.Float64("spin", 0.5, "Camera yaw per exported frame, degrees")
	thumb := flag.Int("thumb", 0, "Also write thumbnails with this longest side")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		MeshOBJ:     *meshOBJ,
		Backdrop:    *backdrop,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
		FOV:         *fov,
		Detail:      *detail,
		ToneMap:     *tone,
		Pattern:     *pattern,
		Frames:      *frames,
		LogLevel:    *logLevel,
		HUD:         *hud,
	})
	if *thumb > 0 {
		cfg.Thumbnail = *thumb
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.SetLogger(log)

	sys := scene.DefaultSystem()
	eng, err := engine.New(cfg, sys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cam := camera.New(cfg.FOV)

	if cfg.Frames <= 0 {
		ctl := controls.New(eng, cam, cfg.Detail, cfg.HUD)
		ctl.State.Pattern = cfg.ColorPattern()
		if err := viewer.Run(ctl, "Solar System"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Solar system renderer → WebP\n")
	fmt.Printf("Frames: %d, Size: %dx%d (x%d), Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(eng, cam, batch.Config{
		OutputDir: cfg.OutputDir,
		Frames:    cfg.Frames,
		Step:      cfg.FrameStep,
		YawStep:   *spin,
		Thumbnail: cfg.Thumbnail,
		Workers:   cfg.Workers,
		HUD:       cfg.HUD,
		Pattern:   cfg.ColorPattern(),
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

package batch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"solar-raster/internal/camera"
	"solar-raster/internal/config"
	"solar-raster/internal/engine"
	"solar-raster/internal/mathutil"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/scene"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := config.Config{Width: 32, Height: 24, Workers: 2, SphereStacks: 8, SphereSlices: 12, RingSegments: 16}
	cfg.Resolve(config.Flags{})
	sys := &scene.System{Bodies: []scene.Body{{Name: "Sun", Kind: pipeline.Star, Parent: -1, Scale: 1}}}
	e, err := engine.New(cfg, sys)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func isWebP(t *testing.T, path string) bool {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("read %s: %v", path, err)
		return false
	}
	return len(data) > 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cam := camera.New(45)
	cam.Focus(mathutil.Vec3{}, 5)
	yaw := cam.Yaw

	results := Run(newEngine(t), cam, Config{
		OutputDir: dir,
		Frames:    3,
		Step:      0.5,
		YawStep:   10,
		Thumbnail: 16,
		Workers:   2,
		HUD:       true,
	})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if !r.Success {
			t.Errorf("frame %d failed: %s", i, r.Error)
			continue
		}
		if r.Frame != i || r.Time != float64(i)*0.5 {
			t.Errorf("frame %d: got frame %d time %v", i, r.Frame, r.Time)
		}
		if want := filepath.Join(dir, FrameName(i)); r.Path != want {
			t.Errorf("path = %q, want %q", r.Path, want)
		}
		if !isWebP(t, r.Path) || !isWebP(t, r.Thumbnail) {
			t.Errorf("frame %d: output is not WebP", i)
		}
	}
	if got := cam.Yaw - yaw; got != 30 {
		t.Errorf("camera yaw advanced %v, want 30", got)
	}
}

func TestRunNoFrames(t *testing.T) {
	if got := Run(newEngine(t), camera.New(45), Config{}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	results := Run(newEngine(t), camera.New(45), Config{OutputDir: file, Frames: 1, Workers: 1})
	if results[0].Success || results[0].Error == "" {
		t.Errorf("result = %+v, want failure", results[0])
	}
}

func TestThumbSize(t *testing.T) {
	tests := []struct {
		w, h, longest int
		wantW, wantH  int
	}{
		{800, 600, 200, 200, 150},
		{600, 800, 200, 150, 200},
		{100, 100, 10, 10, 10},
		{1000, 1, 10, 10, 1},
	}
	for _, tc := range tests {
		w, h := thumbSize(tc.w, tc.h, tc.longest)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("thumbSize(%d, %d, %d) = %d, %d; want %d, %d",
				tc.w, tc.h, tc.longest, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestWriteManifestCreatesDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "out", "run1", "manifest.json")
	if err := WriteManifest(path, []Result{{Frame: 0, Path: filepath.Join(root, "out", "run1", "frame_0000.webp"), Success: true}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("manifest missing: %v", err)
	}

	blocker := filepath.Join(root, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteManifest(filepath.Join(blocker, "manifest.json"), nil); err == nil {
		t.Error("expected error when the directory cannot be created")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Frame: 0, Time: 0, Path: filepath.Join(dir, "frame_0000.webp"), Thumbnail: filepath.Join(dir, "thumbs", "frame_0000.webp"), Success: true},
		{Frame: 1, Time: 0.5, Error: "batch: disk full"},
	}
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []ManifestEntry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := []ManifestEntry{
		{Frame: 0, Time: 0, Image: "frame_0000.webp", Thumbnail: "thumbs/frame_0000.webp"},
		{Frame: 1, Time: 0.5, Error: "batch: disk full"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Package batch renders a sequence of frames and writes them as WebP files.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"solar-raster/internal/camera"
	"solar-raster/internal/engine"
	"solar-raster/internal/logging"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/postprocess"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds the settings of one export run.
type Config struct {
	OutputDir string
	Frames    int
	Start     float64 // simulated time of the first frame
	Step      float64 // simulated seconds between frames
	YawStep   float64 // camera yaw change per frame, degrees
	Thumbnail int     // longest side of thumbnail copies, 0 for none
	Workers   int     // encoders
	HUD       bool
	Pattern   pipeline.Pattern
}

// Result holds the outcome of one frame.
type Result struct {
	Frame     int
	Time      float64
	Path      string
	Thumbnail string
	Success   bool
	Error     string
}

type job struct {
	frame int
	time  float64
	img   *image.NRGBA
}

// Run renders cfg.Frames frames on the calling goroutine and encodes them
// with a worker pool. The camera is advanced by YawStep after each frame.
func Run(eng *engine.Engine, cam *camera.Orbit, cfg Config) []Result {
	total := cfg.Frames
	if total <= 0 {
		return nil
	}
	results := make([]Result, total)
	var processed atomic.Int64
	log := logging.Logger()

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "fps", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	workers := max(cfg.Workers, 1)
	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.frame] = encodeFrame(cfg, j)
				processed.Add(1)
			}
		}()
	}

	// Render and send work
	for i := 0; i < total; i++ {
		t := cfg.Start + float64(i)*cfg.Step
		var hud []string
		if cfg.HUD {
			hud = []string{fmt.Sprintf("frame %d  t=%.2fs", i, t)}
		}
		img := eng.Frame(t, cam, engine.Options{HUD: hud, Pattern: cfg.Pattern})
		jobs <- job{frame: i, time: t, img: copyImage(img)}
		cam.Rotate(cfg.YawStep, 0)
	}
	close(jobs)

	wg.Wait()
	close(done)

	log.Info("export finished", "frames", total, "elapsed", time.Since(start))
	return results
}

func copyImage(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// FrameName is the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

func encodeFrame(cfg Config, j job) Result {
	res := Result{Frame: j.frame, Time: j.time}

	res.Path = filepath.Join(cfg.OutputDir, FrameName(j.frame))
	if err := writeWebP(res.Path, j.img); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Thumbnail > 0 {
		w, h := thumbSize(j.img.Rect.Dx(), j.img.Rect.Dy(), cfg.Thumbnail)
		res.Thumbnail = filepath.Join(cfg.OutputDir, "thumbs", FrameName(j.frame))
		if err := writeWebP(res.Thumbnail, postprocess.Resize(j.img, w, h)); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.Success = true
	return res
}

// thumbSize scales (w, h) so the longer side is longest, keeping the aspect.
func thumbSize(w, h, longest int) (int, int) {
	if w >= h {
		return longest, max(1, h*longest/w)
	}
	return max(1, w*longest/h), longest
}

func writeWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("batch: webp encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// Package engine draws one frame of the solar system: it clears the
// supersampled framebuffer, renders every body with the rasterizer,
// downsamples and overlays the HUD.
package engine

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"solar-raster/internal/camera"
	"solar-raster/internal/config"
	"solar-raster/internal/logging"
	"solar-raster/internal/mathutil"
	"solar-raster/internal/mesh"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/postprocess"
	"solar-raster/internal/raster"
	"solar-raster/internal/scene"
	"solar-raster/internal/shade"
	"solar-raster/internal/texture"
)

// Options are the per-frame toggles.
type Options struct {
	Wireframe bool
	WireColor shade.Color
	Detail    float64 // upper bound on per-body detail, 0 means full
	Pattern   pipeline.Pattern
	HUD       []string
}

// FrameStats summarizes the last frame.
type FrameStats struct {
	Bodies    int
	Triangles int
	Culled    int
	Written   int
	Elapsed   time.Duration
}

// Engine owns the framebuffer and meshes. It is not safe for concurrent use.
type Engine struct {
	width, height int
	supersample   int

	system   *scene.System
	renderer *raster.Renderer
	fb       *raster.FrameBuffer
	out      *image.NRGBA

	sphere []pipeline.Vertex
	ring   []pipeline.Vertex
	planet []pipeline.Vertex // OBJ override for non-star spheres, may be nil

	backdrops *texture.Cache

	last FrameStats
}

// New builds an engine from a resolved config. Resource failures (OBJ
// override, backdrop) are returned as errors.
func New(cfg config.Config, sys *scene.System) (*Engine, error) {
	if err := sys.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	ss := max(cfg.Supersample, 1)
	e := &Engine{
		width:       cfg.Width,
		height:      cfg.Height,
		supersample: ss,
		system:      sys,
		renderer:    raster.NewRenderer(cfg.Workers),
		fb:          raster.NewFrameBuffer(cfg.Width*ss, cfg.Height*ss),
		out:         image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		sphere:      mesh.UVSphere(1, cfg.SphereStacks, cfg.SphereSlices).Vertices(),
		ring:        mesh.Ring(scene.RingMeshInner, scene.RingMeshOuter, cfg.RingSegments).Vertices(),
		backdrops:   texture.NewCache(texture.BuildIndex(cfg.BackdropDir)),
	}
	e.fb.Background = cfg.BackgroundColor()
	e.fb.ToneMap = cfg.Tone()

	if cfg.MeshOBJ != "" {
		m, err := mesh.LoadOBJ(cfg.MeshOBJ)
		if err != nil {
			return nil, fmt.Errorf("engine: planet mesh: %w", err)
		}
		m.Normalize()
		e.planet = m.Vertices()
		logging.Logger().Info("planet mesh loaded", "path", cfg.MeshOBJ, "faces", len(m.Faces))
	}

	switch {
	case cfg.Backdrop == "":
	case texture.Supported(cfg.Backdrop):
		img, err := texture.Load(cfg.Backdrop)
		if err != nil {
			return nil, fmt.Errorf("engine: backdrop: %w", err)
		}
		e.SetBackdrop(img)
	default:
		if !e.SelectBackdrop(cfg.Backdrop) {
			return nil, fmt.Errorf("engine: backdrop %q not found in %q", cfg.Backdrop, cfg.BackdropDir)
		}
	}
	return e, nil
}

// Backdrops lists the names available to SelectBackdrop.
func (e *Engine) Backdrops() []string { return e.backdrops.Names() }

// SelectBackdrop switches to the named image from the backdrop directory.
// An empty name clears the backdrop.
func (e *Engine) SelectBackdrop(name string) bool {
	if name == "" {
		e.SetBackdrop(nil)
		return true
	}
	img := e.backdrops.Resolve(name)
	if img == nil {
		return false
	}
	e.SetBackdrop(img)
	return true
}

// SetBackdrop fits img to the framebuffer and uses it as the clear image.
// Nil restores the plain background color.
func (e *Engine) SetBackdrop(img *image.NRGBA) {
	if img == nil {
		e.fb.Backdrop = nil
		return
	}
	e.fb.Backdrop = postprocess.Fill(img, e.fb.Width, e.fb.Height)
}

// System returns the scene being drawn.
func (e *Engine) System() *scene.System { return e.system }

// Size is the output image size.
func (e *Engine) Size() (w, h int) { return e.width, e.height }

// Stats describes the most recent frame.
func (e *Engine) Stats() FrameStats { return e.last }

func (e *Engine) meshFor(b *scene.Body) []pipeline.Vertex {
	switch {
	case b.Shape == scene.ShapeRing:
		return e.ring
	case b.Kind != pipeline.Star && e.planet != nil:
		return e.planet
	}
	return e.sphere
}

// Frame renders the system at time t. The returned image is owned by the
// engine and overwritten by the next call.
func (e *Engine) Frame(t float64, cam *camera.Orbit, opts Options) *image.NRGBA {
	start := time.Now()
	e.fb.Clear()

	view := cam.View()
	proj := cam.Projection(float64(e.width) / float64(e.height))
	eye := cam.Eye()
	forward := cam.Target.Sub(eye).Normalize()
	light := e.system.LightPosition(t)

	maxDetail := opts.Detail
	if maxDetail <= 0 {
		maxDetail = 1
	}

	st := FrameStats{}
	for _, p := range e.system.Placements(t) {
		// Skip bodies entirely behind the camera.
		rel := p.Position.Sub(eye)
		if rel.Dot(forward) < -p.Radius {
			continue
		}
		u := &pipeline.Uniforms{
			Model:      p.Model,
			View:       view,
			Projection: proj,
			Time:       t,
			Body:       p.Body.Kind,
			LightPos:   light,
			CameraPos:  eye,
			Detail:     math.Min(maxDetail, scene.Detail(p.Radius, rel.Len())),
			Pattern:    opts.Pattern,
			Wireframe:  opts.Wireframe,
			WireColor:  opts.WireColor,
		}
		rs := e.renderer.Render(e.fb, u, e.meshFor(p.Body))
		st.Bodies++
		st.Triangles += rs.Triangles
		st.Culled += rs.Culled
		st.Written += rs.Written
	}

	if e.supersample > 1 {
		copy(e.out.Pix, postprocess.Downsample(e.fb.Color, e.fb.Width, e.fb.Height, e.width, e.height))
	} else {
		copy(e.out.Pix, e.fb.Color)
	}
	if len(opts.HUD) > 0 {
		postprocess.DrawHUD(e.out, opts.HUD)
	}

	st.Elapsed = time.Since(start)
	e.last = st
	logging.Logger().Debug("frame",
		"t", t, "bodies", st.Bodies, "triangles", st.Triangles,
		"culled", st.Culled, "written", st.Written, "elapsed", st.Elapsed)
	return e.out
}

// Focus points the camera at body i, at a distance that frames it.
func (e *Engine) Focus(cam *camera.Orbit, i int, t float64) bool {
	ps := e.system.Placements(t)
	if i < 0 || i >= len(ps) {
		return false
	}
	cam.Focus(ps[i].Position, ps[i].Radius*4+1)
	return true
}

// Follow keeps the camera target on body i as it moves.
func (e *Engine) Follow(cam *camera.Orbit, i int, t float64) {
	ps := e.system.Placements(t)
	if i >= 0 && i < len(ps) {
		cam.Target = ps[i].Position
	}
}

// Center returns the screen position, in output pixels, of a world point,
// and whether it lies in front of the camera.
func (e *Engine) Center(cam *camera.Orbit, p mathutil.Vec3) (x, y float64, ok bool) {
	u := &pipeline.Uniforms{
		Model:          mgl64.Ident4(),
		View:           cam.View(),
		Projection:     cam.Projection(float64(e.width) / float64(e.height)),
		ViewportWidth:  float64(e.width),
		ViewportHeight: float64(e.height),
	}
	v := pipeline.Transform(pipeline.Vertex{Position: p}, u)
	z := v.ScreenPos[2]
	return v.ScreenPos[0], v.ScreenPos[1], z >= -1 && z <= 1
}

// Package controls turns one tick of user input into camera moves and
// viewer state changes. It has no window dependency.
package controls

import (
	"fmt"
	"math"

	"solar-raster/internal/camera"
	"solar-raster/internal/engine"
	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
)

// Rates per second of held input.
const (
	OrbitRate = 90.0 // degrees
	ZoomRate  = 0.5  // distance factor
	PanRate   = 0.5  // fractions of the distance

	DragScale  = 0.3 // degrees per pixel
	WheelZoom  = 0.9 // distance factor per wheel notch
	DetailStep = 0.1
)

// NoFocus means the camera is not following a body.
const NoFocus = -1

// Input is one tick of polled input. Axis fields are held state in [-1, 1];
// the booleans fire once per key press.
type Input struct {
	OrbitX, OrbitY float64 // arrows
	Zoom           float64 // +1 in, -1 out
	PanX, PanY     float64

	DragX, DragY float64 // mouse movement in pixels while dragging
	Wheel        float64

	Wireframe    bool
	Pause        bool
	Reset        bool
	HUD          bool
	NextBackdrop bool
	DetailUp     bool
	DetailDown   bool
	NextPattern  bool
	Focus        int // body index, NoFocus for none
	Pattern      int // 1-7 selects pipeline.Pattern(Pattern % 7), 0 keeps the current one
}

// State is what the viewer draws with.
type State struct {
	Time      float64
	Paused    bool
	Wireframe bool
	HUD       bool
	Detail    float64
	Focus     int
	Backdrop  int // 0 is none, i is Backdrops()[i-1]
	Pattern   pipeline.Pattern
}

// Controller applies input to a camera and the engine.
type Controller struct {
	Engine *engine.Engine
	Camera *camera.Orbit
	State  State
}

// New returns a controller starting at full detail with no focus.
func New(eng *engine.Engine, cam *camera.Orbit, detail float64, hud bool) *Controller {
	if detail <= 0 {
		detail = noise.MaxDetail
	}
	return &Controller{
		Engine: eng,
		Camera: cam,
		State:  State{Detail: detail, HUD: hud, Focus: NoFocus},
	}
}

// Apply consumes one tick of input covering dt seconds.
func (c *Controller) Apply(in Input, dt float64) {
	s := &c.State
	cam := c.Camera

	if in.Reset {
		cam.Reset()
		s.Focus = NoFocus
	}
	if in.Pause {
		s.Paused = !s.Paused
	}
	if in.Wireframe {
		s.Wireframe = !s.Wireframe
	}
	if in.HUD {
		s.HUD = !s.HUD
	}
	if in.DetailUp {
		s.Detail = math.Min(noise.MaxDetail, s.Detail+DetailStep)
	}
	if in.DetailDown {
		s.Detail = math.Max(noise.MinDetail, s.Detail-DetailStep)
	}
	if in.NextBackdrop {
		c.cycleBackdrop()
	}
	if in.NextPattern {
		s.Pattern = (s.Pattern + 1) % pipeline.NumPatterns
	}
	if in.Pattern > 0 {
		s.Pattern = pipeline.Pattern(in.Pattern % pipeline.NumPatterns)
	}
	if in.Focus != NoFocus && c.Engine.Focus(cam, in.Focus, s.Time) {
		s.Focus = in.Focus
	}

	cam.Rotate(in.OrbitX*OrbitRate*dt-in.DragX*DragScale, in.OrbitY*OrbitRate*dt+in.DragY*DragScale)
	if in.Zoom != 0 {
		cam.Zoom(math.Pow(ZoomRate, in.Zoom*dt))
	}
	if in.Wheel != 0 {
		cam.Zoom(math.Pow(WheelZoom, in.Wheel))
	}
	if in.PanX != 0 || in.PanY != 0 {
		cam.Pan(in.PanX*PanRate*dt, in.PanY*PanRate*dt)
		s.Focus = NoFocus
	}

	if !s.Paused {
		s.Time += dt
	}
	if s.Focus != NoFocus {
		c.Engine.Follow(cam, s.Focus, s.Time)
	}
}

func (c *Controller) cycleBackdrop() {
	names := c.Engine.Backdrops()
	if len(names) == 0 {
		return
	}
	s := &c.State
	s.Backdrop = (s.Backdrop + 1) % (len(names) + 1)
	name := ""
	if s.Backdrop > 0 {
		name = names[s.Backdrop-1]
	}
	if !c.Engine.SelectBackdrop(name) {
		s.Backdrop = 0
		c.Engine.SelectBackdrop("")
	}
}

// Options is the engine options for the current state.
func (c *Controller) Options() engine.Options {
	opts := engine.Options{Wireframe: c.State.Wireframe, Detail: c.State.Detail, Pattern: c.State.Pattern}
	if c.State.HUD {
		opts.HUD = c.HUDLines()
	}
	return opts
}

// HUDLines describes the state and the last frame.
func (c *Controller) HUDLines() []string {
	s := c.State
	st := c.Engine.Stats()

	focus := "free"
	if bodies := c.Engine.System().Bodies; s.Focus >= 0 && s.Focus < len(bodies) {
		focus = bodies[s.Focus].Name
	}
	status := ""
	if s.Pattern != pipeline.PatternMaterial {
		status += "  " + s.Pattern.String()
	}
	if s.Paused {
		status += "  paused"
	}
	return []string{
		fmt.Sprintf("t=%.1fs  detail %.1f  %s%s", s.Time, s.Detail, focus, status),
		fmt.Sprintf("%d tris  %d px  %.1f ms", st.Triangles-st.Culled, st.Written, float64(st.Elapsed.Microseconds())/1000),
	}
}

package material

import (
	"math"

	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// Ring annulus in model space. The ring mesh may extend past these bounds;
// the shader discards everything outside.
const (
	RingInnerRadius   = 1.35
	RingOuterRadius   = 2.35
	RingHalfThickness = 0.05
)

// cassiniRadius is the reference radius of the gap bands.
const cassiniRadius = 2.5

var (
	ringBright = shade.RGB(0.95, 0.9, 0.75)
	ringMid    = shade.RGB(0.85, 0.8, 0.65)
	ringDim    = shade.RGB(0.75, 0.7, 0.6)
	ringGap    = shade.RGB(0.3, 0.28, 0.25)
	ringDust   = shade.RGB(0.9, 0.85, 0.7)
	ringGlow   = shade.RGB(1.0, 0.95, 0.85)
)

// InAnnulus reports whether an object-space point lies inside the ring body.
func InAnnulus(x, y, z float64) bool {
	r := math.Sqrt(x*x + z*z)
	return r >= RingInnerRadius && r <= RingOuterRadius && math.Abs(y) <= RingHalfThickness
}

// Ring shades a thin disk around the model origin. Fragments outside the
// annulus return shade.Transparent.
func Ring(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p, t := s.p, s.time
	if !InAnnulus(p[0], p[1], p[2]) {
		return shade.Transparent
	}
	r := math.Sqrt(p[0]*p[0] + p[2]*p[2])

	bandValue := (math.Sin(r*40) + 1) / 2
	var c shade.Color
	switch {
	case bandValue > 0.7:
		c = ringBright
	case bandValue > 0.4:
		c = ringMid
	default:
		c = ringDim
	}

	if gap := math.Cos(math.Abs(r-cassiniRadius) * 50); gap > 0.5 {
		c = shade.Mix(c, ringGap, 0.7)
	}

	particles := s.fbmAt(p[0]*40+t*0.05, p[1]*40, p[2]*40-t*0.03, 4)
	c = shade.Mix(c, ringDust, particles*0.25)

	density := math.Sin(r*15)*0.5 + 0.5
	c = c.Scale(0.7 + density*0.3)

	// The disk is seen from both sides.
	if s.n.Dot(s.view) < 0 {
		s.n = s.n.Neg()
	}
	c = s.phong(c, 0.3, 0.7, 0.25, 8)

	backlight := math.Max(0, -s.n.Dot(s.light))
	return shade.Mix(c, ringGlow, backlight*0.3)
}

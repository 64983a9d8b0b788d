// Package material holds the procedural surface shaders, one per body kind.
//
// Every shader is a pure function of the fragment, the triangle's first
// vertex and the draw uniforms, so fragments can be shaded on any goroutine.
// A shader paints a fixed sequence of layers: each layer computes a noise
// mask and mixes its color over the accumulator with shade.Mix. Later layers
// paint over earlier ones, so the order of the layers is significant.
package material

import (
	"math"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// Func is the signature shared by all material shaders.
type Func func(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color

// Lookup returns the shader for kind, or nil for an unknown kind.
func Lookup(kind pipeline.BodyKind) Func {
	switch kind {
	case pipeline.Star:
		return Star
	case pipeline.Rocky:
		return Rocky
	case pipeline.Desert:
		return Desert
	case pipeline.GasGiant:
		return GasGiant
	case pipeline.RingedGiant:
		return RingedGiant
	case pipeline.Ring:
		return Ring
	case pipeline.Moon:
		return Moon
	case pipeline.Lava:
		return Lava
	case pipeline.Ice:
		return Ice
	case pipeline.Alien:
		return Alien
	}
	return nil
}

// Shade evaluates the material selected by kind under u.Pattern. Unknown
// kinds fall back to the fragment's base color.
func Shade(kind pipeline.BodyKind, frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	return baseColor(WithPattern(Lookup(kind), u.Pattern), frag, v, u)
}

func baseColor(f Func, frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	if f != nil {
		return f(frag, v, u)
	}
	if frag != nil {
		return frag.Color
	}
	return v.Color
}

// surface gathers the per-fragment inputs every shader starts from.
type surface struct {
	p      mathutil.Vec3 // object-space procedural coordinate
	n      mathutil.Vec3 // unit world normal
	pos    mathutil.Vec3 // world position
	view   mathutil.Vec3 // unit vector toward the camera
	light  mathutil.Vec3 // unit vector toward the light
	time   float64
	detail float64
	u      *pipeline.Uniforms
}

func newSurface(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) surface {
	s := surface{
		p:      v.Position,
		n:      v.WorldNormal,
		pos:    v.WorldPos,
		time:   u.Time,
		detail: u.Detail,
		u:      u,
	}
	if frag != nil {
		s.p = frag.ObjectPos
		s.pos = frag.WorldPos
		if frag.Normal != (mathutil.Vec3{}) {
			s.n = frag.Normal
		}
	}
	s.n = s.n.Normalize()
	s.view = u.CameraPos.Sub(s.pos).Normalize()
	s.light = u.LightPos.Sub(s.pos).Normalize()
	return s
}

// oct scales a base octave count by the draw's detail level.
func (s *surface) oct(base int) int {
	return noise.ScaleOctaves(base, s.detail)
}

// fbm samples FBM at p×scale.
func (s *surface) fbm(scale float64, base int) float64 {
	return noise.FBM(s.p[0]*scale, s.p[1]*scale, s.p[2]*scale, s.oct(base))
}

// fbmAt samples FBM at an arbitrary (already scaled) coordinate.
func (s *surface) fbmAt(x, y, z float64, base int) float64 {
	return noise.FBM(x, y, z, s.oct(base))
}

func (s *surface) phong(base shade.Color, ambient, diffuse, specular, shininess float64) shade.Color {
	return shade.Phong(s.pos, s.n, s.u.LightPos, s.u.CameraPos, base, ambient, diffuse, specular, shininess)
}

// fresnel is the view-angle rim factor for this fragment.
func (s *surface) fresnel(power float64) float64 {
	return shade.Fresnel(s.n, s.view, power)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

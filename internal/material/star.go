package material

import (
	"math"

	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

var (
	starCore    = shade.RGB(1.0, 1.0, 0.95)
	starPlasma  = shade.RGB(1.0, 0.7, 0.0)
	starSunspot = shade.RGB(0.6, 0.2, 0.0)
	starFlare   = shade.RGB(1.0, 0.4, 0.0)
	starCorona  = shade.RGB(1.0, 0.9, 0.5)
)

// starBoost overdrives the emissive output; the framebuffer write saturates it.
const starBoost = 2.5

// Star is emissive and ignores the light source.
func Star(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p, t := s.p, s.time
	dist := p.Len()

	pulse := math.Sin(t*2)*0.15 + 1
	core := math.Pow(math.Max(0, 1-dist*1.8), 4) * pulse

	plasma := noise.Turbulence(
		p[0]*4+t*0.4,
		p[1]*4+math.Sin(t*0.3)*0.2,
		p[2]*4+t*0.35,
		s.oct(5),
	)

	sunspot := clamp(noise.WorleyF1(p[0]*3, p[1]*3, p[2]*3)-0.3, 0, 0.5)

	flare := noise.FBM(p[0]*6-t*0.5, p[1]*6, p[2]*6+t*0.4, s.oct(4))
	flareIntensity := math.Max(0, dist-0.75) * flare * 8

	corona := noise.FBM(p[0]*2.5+t*0.15, p[1]*2.5, p[2]*2.5-t*0.1, s.oct(3))
	coronaIntensity := math.Max(0, dist-0.85) * 6

	limb := 0.5 + 0.5*math.Pow(math.Abs(s.n.Dot(s.view)), 0.7)

	c := starCore.Scale(core)
	c = shade.Mix(c, starPlasma, plasma*1.6)
	c = shade.Mix(c, starSunspot, sunspot)
	c = shade.Mix(c, starFlare, math.Min(1, flareIntensity))
	c = shade.Mix(c, starCorona, corona*coronaIntensity)

	return c.Scale(limb * starBoost)
}

package material

import (
	"math"

	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

var (
	lavaCrustDark  = shade.RGB(0.15, 0.1, 0.08)
	lavaCrustLight = shade.RGB(0.25, 0.2, 0.15)
	lavaDark       = shade.RGB(0.8, 0.2, 0.0)
	lavaBright     = shade.RGB(1.0, 0.6, 0.1)
	lavaWhite      = shade.RGB(1.0, 0.9, 0.5)
	lavaSmoke      = shade.RGB(0.4, 0.25, 0.15)

	iceBase     = shade.RGB(0.7, 0.85, 0.95)
	iceDeep     = shade.RGB(0.5, 0.7, 0.9)
	iceFracture = shade.RGB(0.3, 0.5, 0.7)
	iceSparkle  = shade.RGB(0.9, 0.95, 1.0)
	iceAurora   = shade.RGB(0.3, 0.8, 0.9)
	iceSky      = shade.RGB(0.6, 0.85, 1.0)

	alienBase1   = shade.RGB(0.6, 0.2, 0.8)
	alienBase2   = shade.RGB(0.8, 0.3, 0.7)
	alienCrystal = shade.RGB(0.4, 0.8, 0.9)
	alienBio     = shade.RGB(0.0, 1.0, 0.8)
	alienVein    = shade.RGB(1.0, 0.4, 0.9)
	alienSkyA    = shade.RGB(0.8, 0.2, 1.0)
	alienSkyB    = shade.RGB(0.2, 1.0, 0.8)
)

// Lava is a dark crust split by glowing, animated cracks. Crack pixels are
// emissive and skip lighting.
func Lava(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p, t := s.p, s.time

	crust := s.fbm(4, 3)
	crack := noise.WorleyF1(p[0]*8, p[1]*8, p[2]*8) < 0.35
	flow := s.fbmAt(p[0]*6+t*0.3, p[1]*6, p[2]*6-t*0.25, 4)
	intensity := math.Min(1, flow*1.5)

	var c shade.Color
	if crack {
		switch {
		case intensity > 0.8:
			c = lavaWhite
		case intensity > 0.5:
			c = lavaBright
		default:
			c = lavaDark
		}
		c = c.Scale(1.5 + intensity*0.5)
	} else {
		c = shade.Mix(lavaCrustDark, lavaCrustLight, crust)
		c = s.phong(c, 0.2, 0.6, 0.1, 4)
	}

	return shade.Mix(c, lavaSmoke, s.fresnel(3)*0.4)
}

// Ice is a fractured, highly specular crystal world.
func Ice(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p := s.p

	c := shade.Mix(iceDeep, iceBase, s.fbm(3, 4))

	if noise.WorleyF1(p[0]*5, p[1]*5, p[2]*5) < 0.25 {
		c = shade.Mix(c, iceFracture, 0.6)
	}

	sparkle := math.Max(0, s.fbm(12, 2)-0.7) * 5
	c = shade.Mix(c, iceSparkle, math.Min(1, sparkle)*0.5)

	aurora := math.Sin(p[1]*8 + p[0]*2 + s.fbm(4, 2)*2)
	c = shade.Mix(c, iceAurora, (aurora+1)/2*0.3)

	c = s.phong(c, 0.4, 0.6, 0.9, 128)
	return shade.Mix(c, iceSky, s.fresnel(2)*0.6)
}

// Alien is a violet world with pulsing bioluminescence and energy veins.
func Alien(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p, t := s.p, s.time

	c := shade.Mix(alienBase1, alienBase2, s.fbm(3, 4))

	crystal := noise.WorleyF1(p[0]*6, p[1]*6, p[2]*6)
	c = shade.Mix(c, alienCrystal, clamp((crystal-0.6)*3, 0, 1))

	pulse := math.Sin(t*3)*0.3 + 0.7
	bio := s.fbmAt(p[0]*8+t*0.1, p[1]*8, p[2]*8-t*0.08, 3)
	c = shade.Mix(c, alienBio.Scale(pulse), math.Min(1, math.Max(0, bio-0.6)*4))

	vein := noise.Turbulence(p[0]*10, p[1]*10, p[2]*10, s.oct(3))
	c = shade.Mix(c, alienVein, math.Min(1, math.Max(0, vein-0.35)*10)*0.6)

	c = s.phong(c, 0.35, 0.7, 0.4, 16)

	sky := shade.Mix(alienSkyA, alienSkyB, math.Sin(t*0.5)*0.5+0.5)
	return shade.Mix(c, sky, s.fresnel(2.5)*0.5)
}

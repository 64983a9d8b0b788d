package material

import (
	"math"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// storm is an elliptical vortex: intensity falls off as a power of the
// stretched distance to its center.
type storm struct {
	center  mathutil.Vec3
	stretch float64 // y-axis compression
	radius  float64
	falloff float64
	color   shade.Color
	weight  float64
	swirl   float64 // turbulence frequency
}

func (st *storm) mask(p mathutil.Vec3) float64 {
	dx := p[0] - st.center[0]
	dy := (p[1] - st.center[1]) * st.stretch
	dz := p[2] - st.center[2]
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	return math.Pow(math.Max(0, 1-d/st.radius), st.falloff)
}

// giantStyle is the palette and tuning of a banded gas world.
type giantStyle struct {
	bands       [4]shade.Color
	vortex      shade.Color
	vortexMix   float64
	storms      []storm
	rim         shade.Color
	scatter     shade.Color
	backlight   shade.Color
	ambient     float64
	diffuse     float64
	specular    float64
	shininess   float64
	hexagonPole bool
	hexColor    shade.Color
}

var jupiterStyle = giantStyle{
	bands: [4]shade.Color{
		shade.RGB(0.9, 0.7, 0.5),
		shade.RGB(0.85, 0.65, 0.45),
		shade.RGB(0.7, 0.5, 0.3),
		shade.RGB(0.55, 0.38, 0.24),
	},
	vortex:    shade.RGB(0.75, 0.55, 0.35),
	vortexMix: 0.8,
	storms: []storm{
		{center: mathutil.Vec3{0.25, -0.15, 0.6}, stretch: 2, radius: 0.35, falloff: 1.5, color: shade.RGB(0.8, 0.2, 0.1), weight: 1, swirl: 12},
		{center: mathutil.Vec3{-0.3, 0.3, 0.5}, stretch: 1.6, radius: 0.18, falloff: 2, color: shade.RGB(0.9, 0.6, 0.4), weight: 0.6, swirl: 18},
	},
	rim:       shade.RGB(0.95, 0.75, 0.55),
	scatter:   shade.RGB(1.0, 0.85, 0.65),
	backlight: shade.RGB(0.9, 0.5, 0.25),
	ambient:   0.3,
	diffuse:   0.75,
	specular:  0.2,
	shininess: 8,
}

var saturnStyle = giantStyle{
	bands: [4]shade.Color{
		shade.RGB(0.95, 0.9, 0.7),
		shade.RGB(0.92, 0.87, 0.68),
		shade.RGB(0.88, 0.83, 0.65),
		shade.RGB(0.8, 0.74, 0.56),
	},
	vortex:    shade.RGB(0.9, 0.85, 0.67),
	vortexMix: 0.4,
	storms: []storm{
		{center: mathutil.Vec3{-0.4, 0.45, 0.55}, stretch: 2.5, radius: 0.2, falloff: 1.5, color: shade.RGB(0.98, 0.95, 0.85), weight: 0.5, swirl: 14},
	},
	rim:         shade.RGB(0.98, 0.93, 0.75),
	scatter:     shade.RGB(1.0, 0.95, 0.8),
	backlight:   shade.RGB(0.9, 0.75, 0.5),
	ambient:     0.35,
	diffuse:     0.7,
	specular:    0.15,
	shininess:   6,
	hexagonPole: true,
	hexColor:    shade.RGB(0.85, 0.8, 0.6),
}

// hexLatitude is where the polar hexagon starts on the ringed giant.
const hexLatitude = 0.7

// GasGiant is a banded world with vortices and long-lived storms.
func GasGiant(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	return shadeGiant(&s, &jupiterStyle)
}

// RingedGiant is a paler gas giant with a hexagonal standing wave at its
// north pole.
func RingedGiant(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	return shadeGiant(&s, &saturnStyle)
}

func shadeGiant(s *surface, st *giantStyle) shade.Color {
	p, t := s.p, s.time

	distortion := noise.Turbulence(p[0]*3, p[1]*2, p[2]*3, s.oct(3)) * 1.6
	wide := math.Sin((p[1]+distortion*0.5)*10 + t*0.05)
	narrow := math.Sin(p[1]*23 + distortion + t*0.11 + 1.3)
	slow := math.Sin(p[1]*5.5 - t*0.03 + 2.1)
	band := (wide*0.5+narrow*0.3+slow*0.2)*0.5 + 0.5

	var c shade.Color
	switch {
	case band > 0.75:
		c = st.bands[0]
	case band > 0.5:
		c = st.bands[1]
	case band > 0.25:
		c = st.bands[2]
	default:
		c = st.bands[3]
	}

	vortex := noise.Turbulence(p[0]*8+t*0.03, p[1]*4, p[2]*8-t*0.02, s.oct(5))
	c = shade.Mix(c, st.vortex, vortex*st.vortexMix)

	for i := range st.storms {
		sm := &st.storms[i]
		m := sm.mask(p)
		if m <= 0 {
			continue
		}
		swirl := noise.Turbulence(p[0]*sm.swirl+t*0.15, p[1]*sm.swirl, p[2]*sm.swirl-t*0.12, s.oct(4))
		c = shade.Mix(c, sm.color, m*(0.5+swirl)*sm.weight)
	}

	if st.hexagonPole && p[1] > hexLatitude {
		azimuth := math.Atan2(p[0], p[2])
		hex := math.Cos(6 * azimuth / 2)
		intensity := (p[1] - hexLatitude) * 5
		c = shade.Mix(c, st.hexColor, hex*intensity*0.3)
	}

	// Wrapped diffuse keeps the terminator soft; the backlight term lets
	// light bleed through the limb when the star is behind the planet.
	ndl := s.n.Dot(s.light)
	wrap := shade.HalfLambert(s.n, s.light)
	lit := c.Scale(st.ambient + st.diffuse*wrap*wrap)
	spec := s.phong(c, 0, 0, st.specular, st.shininess)
	subsurface := math.Max(0, -ndl) * math.Pow(math.Max(0, s.view.Dot(s.light.Neg())), 4)
	c = lit.Add(spec).Add(st.backlight.Scale(subsurface * 0.35))

	c = shade.Mix(c, st.rim, s.fresnel(2)*0.3)
	scatter := s.fresnel(4) * wrap
	return shade.Mix(c, st.scatter, scatter*0.25)
}

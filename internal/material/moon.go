package material

import (
	"math"

	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

var (
	moonGray   = shade.RGB(0.6, 0.6, 0.65)
	moonLight  = shade.RGB(0.7, 0.7, 0.72)
	moonCrater = shade.RGB(0.3, 0.3, 0.32)
	moonMaria  = shade.RGB(0.35, 0.35, 0.38)
	moonRay    = shade.RGB(0.8, 0.8, 0.82)
)

const (
	mariaThreshold     = 0.6
	rayCraterThreshold = 0.6
	rayNoiseThreshold  = 0.7
)

// ejectaRay reports whether a bright ray streak is drawn. Both the crater
// and the ray field must be high.
func ejectaRay(craterIntensity, rayNoise float64) bool {
	return craterIntensity > rayCraterThreshold && rayNoise > rayNoiseThreshold
}

// Moon is a grey cratered body with dark maria and ejecta rays.
func Moon(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p := s.p

	c := shade.Mix(moonGray, moonLight, s.fbm(5, 3))

	crater := noise.WorleyF1(p[0]*6, p[1]*6, p[2]*6)
	craterDetail := s.fbm(15, 2)
	craterIntensity := math.Min(1, math.Max(0, crater-0.3)*craterDetail)
	c = shade.Mix(c, moonCrater, craterIntensity*0.8)

	if s.fbm(2, 3) > mariaThreshold {
		c = shade.Mix(c, moonMaria, 0.7)
	}

	ray := s.fbmAt(p[0]*20+p[1]*5, p[1]*20, p[2]*20+p[0]*5, 2)
	if ejectaRay(craterIntensity, ray) {
		c = shade.Mix(c, moonRay, 0.4)
	}

	return s.phong(c, 0.2, 0.85, 0.03, 2)
}

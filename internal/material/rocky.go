package material

import (
	"math"

	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

var (
	deepOcean    = shade.RGB(0.02, 0.08, 0.25)
	shallowOcean = shade.RGB(0.1, 0.3, 0.5)
	forest       = shade.RGB(0.15, 0.4, 0.15)
	plains       = shade.RGB(0.4, 0.5, 0.2)
	sand         = shade.RGB(0.75, 0.65, 0.35)
	mountain     = shade.RGB(0.5, 0.5, 0.5)
	snow         = shade.RGB(0.9, 0.9, 0.95)
	earthSky     = shade.RGB(0.4, 0.6, 1.0)
)

const (
	// landThreshold sits above the mean of the continent field, so land
	// covers well under half the surface.
	landThreshold = 0.56
	polarLatitude = 0.82
)

// Rocky is an ocean world with continents, biomes, ice caps, clouds and an
// atmospheric rim.
func Rocky(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p, t := s.p, s.time
	lat := math.Abs(p[1])

	oceanDepth := s.fbm(4, 3)
	continent := noise.WorleyF1(p[0]*1.5, p[1]*1.5, p[2]*1.5)*0.55 + s.fbm(3, 4)*0.45
	isLand := continent > landThreshold

	biome := s.fbm(2.5, 3)
	altitude := s.fbm(5, 2)

	var c shade.Color
	if isLand {
		switch {
		case lat > polarLatitude:
			c = snow
		case altitude > 0.68 && (lat > 0.6 || altitude > 0.78):
			c = snow
		case altitude > 0.68:
			c = mountain
		case biome > 0.6:
			c = sand
		case biome > 0.45:
			c = plains
		default:
			c = forest
		}
	} else {
		c = shade.Mix(deepOcean, shallowOcean, oceanDepth)
	}

	pole := math.Max(0, lat-0.65) * 8
	ice := s.fbm(8, 2)
	c = shade.Mix(c, snow, math.Min(1, pole*ice))

	specular, shininess := 0.05, 4.0
	if !isLand {
		specular, shininess = 0.8, 64.0
	}
	c = s.phong(c, 0.25, 0.8, specular, shininess)

	cloud1 := noise.FBM(p[0]*5+t*0.08, p[1]*5, p[2]*5-t*0.05, s.oct(4))
	cloud2 := noise.FBM(p[0]*8-t*0.06, p[1]*8, p[2]*8, s.oct(3))
	cloudIntensity := math.Max(0, (cloud1*0.6+cloud2*0.4)-0.5) * 2.5
	cloudLight := math.Max(0, s.n.Dot(s.light))*0.7 + 0.3
	c = shade.Mix(c, shade.White.Scale(cloudLight), math.Min(cloudIntensity, 0.75))

	return shade.Mix(c, earthSky, s.fresnel(3.5)*0.5)
}

var (
	rust1     = shade.RGB(0.8, 0.3, 0.1)
	rust2     = shade.RGB(0.6, 0.25, 0.15)
	rust3     = shade.RGB(0.7, 0.35, 0.2)
	craterRed = shade.RGB(0.3, 0.15, 0.1)
	co2Ice    = shade.RGB(0.9, 0.95, 1.0)
	dustLight = shade.RGB(0.9, 0.6, 0.4)
	dustDark  = shade.RGB(0.8, 0.5, 0.3)
)

// Desert is an oxidised, cratered world with thin dusty air.
func Desert(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
	s := newSurface(frag, v, u)
	p, t := s.p, s.time

	base := s.fbm(3, 4)
	var c shade.Color
	switch {
	case base > 0.6:
		c = rust1
	case base > 0.4:
		c = rust3
	default:
		c = rust2
	}

	crater := noise.WorleyF1(p[0]*5, p[1]*5, p[2]*5)
	craterDepth := s.fbm(12, 2)
	craterIntensity := math.Min(1, math.Max(0, crater-0.4)*craterDepth)
	c = shade.Mix(c, craterRed, craterIntensity*0.6)

	pole := math.Max(0, math.Abs(p[1])-0.65) * 6
	ice := s.fbm(10, 3)
	c = shade.Mix(c, co2Ice, math.Min(1, pole*ice))

	c = s.phong(c, 0.3, 0.75, 0.08, 4)

	dust := noise.FBM(p[0]*4+t*0.1, p[1]*4, p[2]*4, s.oct(2))
	air := shade.Mix(dustLight, dustDark, dust)
	return shade.Mix(c, air, s.fresnel(4)*0.2)
}

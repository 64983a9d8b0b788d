package material

import (
	"math"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// patternFunc recolors one fragment from its object-space position, the
// draw time and the color the material produced.
type patternFunc func(p mathutil.Vec3, t float64, base shade.Color) shade.Color

// patterns is indexed by pipeline.Pattern; a nil entry keeps the material.
var patterns = [pipeline.NumPatterns]patternFunc{
	pipeline.PatternMaterial:     nil,
	pipeline.PatternRainbowRings: rainbowRings,
	pipeline.PatternChecker:      checker,
	pipeline.PatternGrid:         gridLines,
	pipeline.PatternStripes:      stripes,
	pipeline.PatternPlasma:       plasma,
	pipeline.PatternRedGradient:  redGradient,
}

// WithPattern wraps f so the fragments it keeps are recolored by pattern p.
// Discarded fragments stay discarded. A nil f recolors the fragment's base
// color.
func WithPattern(f Func, p pipeline.Pattern) Func {
	pat := patterns[p%pipeline.NumPatterns]
	if pat == nil {
		return f
	}
	return func(frag *pipeline.Fragment, v *pipeline.Vertex, u *pipeline.Uniforms) shade.Color {
		base := baseColor(f, frag, v, u)
		if base.IsTransparent() {
			return base
		}
		pos := v.Position
		if frag != nil {
			pos = frag.ObjectPos
		}
		return pat(pos, u.Time, base).Clamp()
	}
}

func rainbowRings(p mathutil.Vec3, t float64, base shade.Color) shade.Color {
	angle := math.Atan2(p[0], p[2]) + t*0.6
	bands := math.Abs(math.Sin(p.Len()*12 + t*2))
	rgb := shade.HSV(angle/(2*math.Pi), 1, 1)
	return base.Scale(1 - 0.7*bands).Add(rgb.Scale(0.7 * bands))
}

func checker(p mathutil.Vec3, t float64, _ shade.Color) shade.Color {
	const scale = 4
	xi := int(math.Floor(p[0]*scale + t*0.2))
	yi := int(math.Floor(p[1] * scale))
	zi := int(math.Floor(p[2] * scale))
	tone := shade.RGB(0.95, 0.95, 0.95)
	if (xi^yi^zi)&1 == 1 {
		tone = shade.RGB(0.15, 0.15, 0.15)
	}
	tint := shade.HSV(t*0.1, 0.8, 1)
	return tone.Scale(0.6).Add(tint.Scale(0.4))
}

func gridLines(p mathutil.Vec3, t float64, base shade.Color) shade.Color {
	const scale, width = 6, 0.04
	edge := func(x float64) float64 {
		f := math.Abs(x - math.Trunc(x))
		return math.Min(f, 1-f)
	}
	d := math.Min(edge(p[0]*scale+t*0.5), math.Min(edge(p[1]*scale), edge(p[2]*scale)))
	if d >= width {
		return base
	}
	return shade.HSV(p[1]*0.2+t*0.2, 1, 1)
}

func stripes(p mathutil.Vec3, t float64, base shade.Color) shade.Color {
	v := math.Pow(math.Abs(math.Sin(p[0]*8+p[1]*3+t*2)), 0.8)
	c := shade.HSV(p[2]*0.3+t*0.3, 0.9, v)
	return base.Scale(0.3).Add(c.Scale(0.7))
}

func plasma(p mathutil.Vec3, t float64, base shade.Color) shade.Color {
	s := math.Sin(p[0]*3+t) + math.Sin(p[1]*3-t*1.2) + math.Sin(p[2]*3+t*0.6)
	v := 0.5 + 0.5*math.Sin(s*0.5)
	c := shade.HSV(s*0.1+t*0.1, 0.9, v)
	return base.Scale(0.2).Add(c.Scale(0.8))
}

// redGradient brightens toward the body center with a slow pulse.
func redGradient(p mathutil.Vec3, t float64, _ shade.Color) shade.Color {
	d := p.Len()
	v := clamp(1/(1+d), 0, 1)
	pulse := math.Sin(t*2+d*2)*0.1 + 0.9
	return shade.RGB(clamp(v*pulse, 0, 1), 0.1*v, 0.1*v)
}

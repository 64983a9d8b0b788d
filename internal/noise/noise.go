// Package noise provides deterministic, stateless procedural noise: hashed
// value noise, smoothed lattice noise, fractal sums, cellular distance fields
// and turbulence. Every function is a pure function of its coordinates, so
// results are identical across frames, goroutines and process runs.
package noise

import "math"

// Noise hashes a 3D coordinate to a scalar in [0, 1).
func Noise(x, y, z float64) float64 {
	a := math.Sin(x*12.9898+y*78.233+z*45.164) * 43758.5453
	f := a - math.Floor(a)
	if f >= 1 {
		// a - floor(a) rounds up to 1 for tiny negative a
		return 0
	}
	return f
}

// smoothstep is the cubic Hermite fade 3t²-2t³.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Smoothed trilinearly blends Noise at the eight lattice corners around
// (x, y, z), fading each axis with a smoothstep of its fractional part.
func Smoothed(x, y, z float64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)
	tz := smoothstep(z - z0)

	c000 := Noise(x0, y0, z0)
	c100 := Noise(x0+1, y0, z0)
	c010 := Noise(x0, y0+1, z0)
	c110 := Noise(x0+1, y0+1, z0)
	c001 := Noise(x0, y0, z0+1)
	c101 := Noise(x0+1, y0, z0+1)
	c011 := Noise(x0, y0+1, z0+1)
	c111 := Noise(x0+1, y0+1, z0+1)

	x00 := lerp(c000, c100, tx)
	x10 := lerp(c010, c110, tx)
	x01 := lerp(c001, c101, tx)
	x11 := lerp(c011, c111, tx)

	return lerp(lerp(x00, x10, ty), lerp(x01, x11, ty), tz)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FBM sums Smoothed over octaves at doubling frequency and halving amplitude.
// The sum is divided by the total amplitude, so the result stays in [0, 1]
// for any octave count. Octave counts below 1 are treated as 1.
func FBM(x, y, z float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var value, total float64
	amplitude := 0.5
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		value += Smoothed(x*frequency, y*frequency, z*frequency) * amplitude
		total += amplitude
		frequency *= 2
		amplitude *= 0.5
	}
	return clamp01(value / total)
}

// Turbulence sums the rectified deviation |Smoothed-0.5| over octaves,
// normalized like FBM, so the result lies in [0, 0.5]. Ridges are sharper
// than FBM's because of the absolute value.
func Turbulence(x, y, z float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var value, total float64
	amplitude := 0.5
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		value += math.Abs(Smoothed(x*frequency, y*frequency, z*frequency)-0.5) * amplitude
		total += amplitude
		frequency *= 2
		amplitude *= 0.5
	}
	return clamp01(value / total)
}

// Detail level bounds for ScaleOctaves.
const (
	MinDetail = 0.4
	MaxDetail = 1.0
)

// ScaleOctaves maps a detail level to an octave count in [1, base]:
// floor(base × clamp(detail, 0.4, 1.0)).
func ScaleOctaves(base int, detail float64) int {
	if base < 1 {
		return 1
	}
	if math.IsNaN(detail) || detail < MinDetail {
		detail = MinDetail
	} else if detail > MaxDetail {
		detail = MaxDetail
	}
	n := int(math.Floor(float64(base) * detail))
	if n < 1 {
		return 1
	}
	if n > base {
		return base
	}
	return n
}

// FBMDetail is FBM with its octave count scaled by the detail level.
func FBMDetail(x, y, z float64, base int, detail float64) float64 {
	return FBM(x, y, z, ScaleOctaves(base, detail))
}

// TurbulenceDetail is Turbulence with its octave count scaled by the detail level.
func TurbulenceDetail(x, y, z float64, base int, detail float64) float64 {
	return Turbulence(x, y, z, ScaleOctaves(base, detail))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

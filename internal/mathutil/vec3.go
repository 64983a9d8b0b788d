package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// It shares its underlying type with mgl64.Vec3, so the two convert freely.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns the unit vector, or the zero vector when v is (near) zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Reflect mirrors the incident vector i about the normal n: i - 2(i·n)n.
func Reflect(i, n Vec3) Vec3 {
	return i.Sub(n.Scale(2 * i.Dot(n)))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Bary combines three vectors with barycentric weights.
func Bary(a, b, c Vec3, w0, w1, w2 float64) Vec3 {
	return Vec3{
		a[0]*w0 + b[0]*w1 + c[0]*w2,
		a[1]*w0 + b[1]*w1 + c[1]*w2,
		a[2]*w0 + b[2]*w1 + c[2]*w2,
	}
}

package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrices are mgl64 (column-major). Vec3 converts to and from mgl64.Vec3.

// Inverse3 returns m⁻¹, or the identity when m is singular.
func Inverse3(m mgl64.Mat3) mgl64.Mat3 {
	if math.Abs(m.Det()) < 1e-12 {
		return mgl64.Ident3()
	}
	return m.Inv()
}

// NormalMatrix returns the inverse-transpose of m's upper 3×3 block.
// A singular block yields the identity.
func NormalMatrix(m mgl64.Mat4) mgl64.Mat3 {
	return Inverse3(m.Mat3()).Transpose()
}

// MulDir applies a 3×3 matrix to a direction.
func MulDir(m mgl64.Mat3, v Vec3) Vec3 {
	return Vec3(m.Mul3x1(mgl64.Vec3(v)))
}

// MulPoint transforms a point (w=1) and drops the homogeneous coordinate.
func MulPoint(m mgl64.Mat4, v Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{v[0], v[1], v[2], 1})
	return Vec3{r[0], r[1], r[2]}
}

// Translation returns the translation column of an affine matrix.
func Translation(m mgl64.Mat4) Vec3 {
	return Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
}

// Spherical returns the point at distance r in direction (yaw, pitch), in
// radians: yaw turns about +Y starting from +Z, pitch lifts toward +Y.
func Spherical(yaw, pitch, r float64) Vec3 {
	rot := mgl64.Rotate3DY(yaw).Mul3(mgl64.Rotate3DX(-pitch))
	return MulDir(rot, Vec3{0, 0, r})
}

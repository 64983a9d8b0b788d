package pipeline

import (
	"github.com/go-gl/mathgl/mgl64"

	"solar-raster/internal/mathutil"
)

// minW keeps the perspective divide finite for points on the camera plane.
const minW = 1e-9

// Stage caches the matrices derived from one set of uniforms so that every
// vertex of a draw shares them.
type Stage struct {
	mvp          mgl64.Mat4
	model        mgl64.Mat4
	normalMatrix mgl64.Mat3
	halfW, halfH float64
}

// NewStage precomputes mvp = P × V × M and the normal matrix.
func NewStage(u *Uniforms) Stage {
	return Stage{
		mvp:          u.Projection.Mul4(u.View).Mul4(u.Model),
		model:        u.Model,
		normalMatrix: mathutil.NormalMatrix(u.Model),
		halfW:        u.ViewportWidth / 2,
		halfH:        u.ViewportHeight / 2,
	}
}

// Transform runs the vertex stage for a single vertex. The input is not
// modified; the result keeps the object-space attributes and adds the
// screen position, world position and world normal.
func Transform(v Vertex, u *Uniforms) Vertex {
	s := NewStage(u)
	return s.Transform(v)
}

// Transform applies the cached matrices to v.
func (s *Stage) Transform(v Vertex) Vertex {
	p := v.Position
	clip := s.mvp.Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})

	w := clip[3]
	if w > -minW && w < minW {
		if w < 0 {
			w = -minW
		} else {
			w = minW
		}
	}
	ndcX, ndcY, ndcZ := clip[0]/w, clip[1]/w, clip[2]/w

	out := v
	out.ScreenPos = mathutil.Vec3{
		(ndcX + 1) * s.halfW,
		(1 - ndcY) * s.halfH,
		ndcZ,
	}
	out.WorldPos = mathutil.MulPoint(s.model, p)
	out.WorldNormal = mathutil.MulDir(s.normalMatrix, v.Normal).Normalize()
	return out
}

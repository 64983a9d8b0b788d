// Package mesh builds triangle meshes: Wavefront OBJ files and the
// procedural sphere and ring used by the solar system.
//
// Winding: every face is stored so that its geometric cross product
// (v1-v0)×(v2-v0) points into the surface. After projection to a y-down
// screen this makes faces seen from outside wind clockwise, which the
// rasterizer treats as front-facing.
package mesh

import (
	"math"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// Face holds index triples into the position, texcoord and normal arrays.
// Absent texcoord or normal indices are -1.
type Face struct {
	V, T, N  [3]int
	Material string
}

// Mesh is indexed triangle geometry.
type Mesh struct {
	Name      string
	Positions []mathutil.Vec3
	Normals   []mathutil.Vec3
	TexCoords [][2]float64
	Faces     []Face

	// Materials maps usemtl names to diffuse colors.
	Materials map[string]shade.Color
}

// Vertices expands the faces into a flat buffer, three vertices per
// triangle. Faces without normals get their flat face normal.
func (m *Mesh) Vertices() []pipeline.Vertex {
	out := make([]pipeline.Vertex, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		p0, p1, p2 := m.Positions[f.V[0]], m.Positions[f.V[1]], m.Positions[f.V[2]]
		// Faces are stored inward-wound, so the outward normal is the negated cross.
		flat := p1.Sub(p0).Cross(p2.Sub(p0)).Neg().Normalize()
		base := m.Materials[f.Material]

		for k := 0; k < 3; k++ {
			v := pipeline.Vertex{
				Position: m.Positions[f.V[k]],
				Normal:   flat,
				Color:    base,
			}
			if n := f.N[k]; n >= 0 && n < len(m.Normals) {
				v.Normal = m.Normals[n]
			}
			if t := f.T[k]; t >= 0 && t < len(m.TexCoords) {
				v.TexCoord = m.TexCoords[t]
			}
			out = append(out, v)
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (lo, hi mathutil.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range m.Positions {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// Normalize centers the mesh on its bounding box and scales it so the
// farthest position lies at radius 1. Empty or point meshes are unchanged.
func (m *Mesh) Normalize() {
	lo, hi := m.Bounds()
	center := lo.Add(hi).Scale(0.5)
	var r float64
	for _, p := range m.Positions {
		r = math.Max(r, p.Sub(center).Len())
	}
	if r < 1e-12 {
		return
	}
	for i, p := range m.Positions {
		m.Positions[i] = p.Sub(center).Scale(1 / r)
	}
}

// outwardWound reports whether (a, b, c) winds against the stored
// convention for a face whose outside points along out.
func outwardWound(a, b, c, out mathutil.Vec3) bool {
	return b.Sub(a).Cross(c.Sub(a)).Dot(out) > 0
}

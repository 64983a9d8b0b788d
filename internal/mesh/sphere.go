package mesh

import (
	"math"

	"solar-raster/internal/mathutil"
)

// minTriangleArea drops the zero-area triangles that collapse at the poles.
const minTriangleArea = 1e-12

// UVSphere builds a latitude/longitude sphere centered on the origin.
// stacks is clamped to at least 2 and slices to at least 3.
func UVSphere(radius float64, stacks, slices int) *Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)
	m := &Mesh{Name: "sphere"}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mathutil.Vec3{
				math.Sin(phi) * math.Cos(theta),
				math.Cos(phi),
				math.Sin(phi) * math.Sin(theta),
			}
			m.Positions = append(m.Positions, n.Scale(radius))
			m.Normals = append(m.Normals, n)
			m.TexCoords = append(m.TexCoords, [2]float64{
				float64(j) / float64(slices),
				float64(i) / float64(stacks),
			})
		}
	}

	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*row + j
			b := (i+1)*row + j
			c := (i+1)*row + j + 1
			d := i*row + j + 1
			m.addSphereTri(a, b, c)
			m.addSphereTri(a, c, d)
		}
	}
	return m
}

func (m *Mesh) addSphereTri(i0, i1, i2 int) {
	p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
	if p1.Sub(p0).Cross(p2.Sub(p0)).Len() < minTriangleArea {
		return
	}
	centroid := p0.Add(p1).Add(p2)
	if outwardWound(p0, p1, p2, centroid) {
		i1, i2 = i2, i1
	}
	idx := [3]int{i0, i1, i2}
	m.Faces = append(m.Faces, Face{V: idx, T: idx, N: idx})
}

package mesh

import (
	"math"

	"solar-raster/internal/mathutil"
)

// Ring builds a flat annulus in the XZ plane. Every quad is emitted twice,
// once facing +Y and once facing -Y, so the disk is visible from both sides.
func Ring(inner, outer float64, segments int) *Mesh {
	segments = max(segments, 3)
	m := &Mesh{Name: "ring"}
	up := mathutil.Vec3{0, 1, 0}
	m.Normals = []mathutil.Vec3{up, up.Neg()}

	for j := 0; j <= segments; j++ {
		theta := 2 * math.Pi * float64(j) / float64(segments)
		c, s := math.Cos(theta), math.Sin(theta)
		u := float64(j) / float64(segments)
		m.Positions = append(m.Positions,
			mathutil.Vec3{inner * c, 0, inner * s},
			mathutil.Vec3{outer * c, 0, outer * s},
		)
		m.TexCoords = append(m.TexCoords, [2]float64{u, 0}, [2]float64{u, 1})
	}

	for j := 0; j < segments; j++ {
		a, b := 2*j, 2*j+1
		c, d := 2*j+3, 2*j+2
		for side, out := range m.Normals {
			m.addRingTri(a, b, c, side, out)
			m.addRingTri(a, c, d, side, out)
		}
	}
	return m
}

func (m *Mesh) addRingTri(i0, i1, i2, normal int, out mathutil.Vec3) {
	p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
	if outwardWound(p0, p1, p2, out) {
		i1, i2 = i2, i1
	}
	m.Faces = append(m.Faces, Face{
		V: [3]int{i0, i1, i2},
		T: [3]int{i0, i1, i2},
		N: [3]int{normal, normal, normal},
	})
}

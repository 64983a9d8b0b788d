package noise

import "math"

// featurePoint returns the pseudo-random feature point of lattice cell (cx, cy, cz).
func featurePoint(cx, cy, cz float64) (float64, float64, float64) {
	return cx + Noise(cx, cy, cz),
		cy + Noise(cx+1, cy, cz),
		cz + Noise(cx, cy+1, cz)
}

// worley returns the two smallest feature-point distances around (x, y, z),
// searching the containing cell and its 26 neighbours.
func worley(x, y, z float64) (f1, f2 float64) {
	xi, yi, zi := math.Floor(x), math.Floor(y), math.Floor(z)
	f1, f2 = math.Inf(1), math.Inf(1)

	for i := -1.0; i <= 1; i++ {
		for j := -1.0; j <= 1; j++ {
			for k := -1.0; k <= 1; k++ {
				px, py, pz := featurePoint(xi+i, yi+j, zi+k)
				dx, dy, dz := px-x, py-y, pz-z
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if d < f1 {
					f2 = f1
					f1 = d
				} else if d < f2 {
					f2 = d
				}
			}
		}
	}
	return f1, f2
}

// WorleyF1 is the distance from (x, y, z) to the nearest feature point.
func WorleyF1(x, y, z float64) float64 {
	f1, _ := worley(x, y, z)
	return f1
}

// WorleyEdge is F2-F1, which is near zero on the borders between cells.
func WorleyEdge(x, y, z float64) float64 {
	f1, f2 := worley(x, y, z)
	return f2 - f1
}

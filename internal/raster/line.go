package raster

import (
	"math"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/shade"
)

// DrawLine plots a Bresenham line between two screen positions. The segment
// is clipped to the buffer first, so endpoints far off screen still draw
// their visible part. Depth is neither tested nor written.
func DrawLine(fb *FrameBuffer, a, b mathutil.Vec3, c shade.Color) {
	p0, p1, ok := clipSegment(a, b, -1, -1, float64(fb.Width), float64(fb.Height))
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(p0[0])), int(math.Floor(p0[1]))
	x1, y1 := int(math.Floor(p1[0])), int(math.Floor(p1[1]))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTriangleEdges outlines a triangle.
func DrawTriangleEdges(fb *FrameBuffer, p0, p1, p2 mathutil.Vec3, c shade.Color) {
	DrawLine(fb, p0, p1, c)
	DrawLine(fb, p1, p2, c)
	DrawLine(fb, p2, p0, c)
}

// clipSegment clips a→b to the box [xmin,xmax]×[ymin,ymax] with the
// Liang–Barsky parameterization. Non-finite input is rejected.
func clipSegment(a, b mathutil.Vec3, xmin, ymin, xmax, ymax float64) (p0, p1 [2]float64, ok bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	if !finite(dx) || !finite(dy) || !finite(a[0]) || !finite(a[1]) {
		return p0, p1, false
	}
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a[0] - xmin, xmax - a[0], a[1] - ymin, ymax - a[1]}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return p0, p1, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return p0, p1, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p0, p1, false
			}
			t1 = math.Min(t1, r)
		}
	}
	p0 = [2]float64{a[0] + t0*dx, a[1] + t0*dy}
	p1 = [2]float64{a[0] + t1*dx, a[1] + t1*dy}
	return p0, p1, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package raster

import (
	"math"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// degenerateArea is the smallest signed area, in square pixels, that is
// still rasterized.
const degenerateArea = 1e-5

// edge is the 2D edge function of c against the directed edge a→b.
// Its value for the triangle's third vertex is twice the signed area.
func edge(a, b, c mathutil.Vec3) float64 {
	return (c[0]-a[0])*(b[1]-a[1]) - (c[1]-a[1])*(b[0]-a[0])
}

// Facing classifies a screen-space triangle.
type Facing int

const (
	FrontFacing Facing = iota
	BackFacing
	Degenerate
)

// Classify reports the facing of a triangle from its screen positions.
// Front faces wind clockwise on screen, which gives a negative area.
func Classify(p0, p1, p2 mathutil.Vec3) Facing {
	area := edge(p0, p1, p2)
	switch {
	case math.Abs(area) < degenerateArea || math.IsNaN(area):
		return Degenerate
	case area > 0:
		return BackFacing
	}
	return FrontFacing
}

// inDepthRange rejects whole triangles that cross the near or far plane.
func inDepthRange(v *pipeline.Vertex) bool {
	z := v.ScreenPos[2]
	return z >= -1 && z <= 1
}

// Rasterize appends one fragment per covered pixel center of a front-facing
// triangle to dst. Pixels outside w×h are never produced. When zbuf is not
// nil, fragments that cannot pass the depth test against it are skipped.
//
// Back-facing and degenerate triangles produce nothing.
func Rasterize(dst []pipeline.Fragment, v0, v1, v2 *pipeline.Vertex, w, h int, zbuf []float64) []pipeline.Fragment {
	p0, p1, p2 := v0.ScreenPos, v1.ScreenPos, v2.ScreenPos
	if Classify(p0, p1, p2) != FrontFacing {
		return dst
	}
	area := edge(p0, p1, p2)
	invArea := 1 / area

	minX := int(math.Floor(math.Min(math.Min(p0[0], p1[0]), p2[0])))
	maxX := int(math.Ceil(math.Max(math.Max(p0[0], p1[0]), p2[0])))
	minY := int(math.Floor(math.Min(math.Min(p0[1], p1[1]), p2[1])))
	maxY := int(math.Ceil(math.Max(math.Max(p0[1], p1[1]), p2[1])))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := mathutil.Vec3{float64(x) + 0.5, float64(y) + 0.5, 0}
			w0 := edge(p1, p2, p)
			w1 := edge(p2, p0, p)
			w2 := edge(p0, p1, p)
			// Front faces have negative area; zero lies on an edge and counts.
			if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}
			b0, b1, b2 := w0*invArea, w1*invArea, w2*invArea

			depth := b0*p0[2] + b1*p1[2] + b2*p2[2]
			if zbuf != nil && !(depth < zbuf[y*w+x]) {
				continue
			}

			dst = append(dst, pipeline.Fragment{
				X:         x,
				Y:         y,
				Depth:     depth,
				WorldPos:  mathutil.Bary(v0.WorldPos, v1.WorldPos, v2.WorldPos, b0, b1, b2),
				ObjectPos: mathutil.Bary(v0.Position, v1.Position, v2.Position, b0, b1, b2),
				Normal:    mathutil.Bary(v0.WorldNormal, v1.WorldNormal, v2.WorldNormal, b0, b1, b2).Normalize(),
				Color:     baryColor(v0.Color, v1.Color, v2.Color, b0, b1, b2),
			})
		}
	}
	return dst
}

func baryColor(a, b, c shade.Color, w0, w1, w2 float64) shade.Color {
	if a == b && b == c {
		return a
	}
	return a.Scale(w0).Add(b.Scale(w1)).Add(c.Scale(w2))
}

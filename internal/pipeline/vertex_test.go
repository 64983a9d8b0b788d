package pipeline

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"solar-raster/internal/mathutil"
)

func identityUniforms(w, h float64) *Uniforms {
	return &Uniforms{
		Model:          mgl64.Ident4(),
		View:           mgl64.Ident4(),
		Projection:     mgl64.Ident4(),
		ViewportWidth:  w,
		ViewportHeight: h,
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTransformNDCToScreen(t *testing.T) {
	u := identityUniforms(1200, 800)
	tests := []struct {
		in   mathutil.Vec3
		want mathutil.Vec3
	}{
		{mathutil.Vec3{0, 0, 0.5}, mathutil.Vec3{600, 400, 0.5}},
		{mathutil.Vec3{-1, 1, 0}, mathutil.Vec3{0, 0, 0}},
		{mathutil.Vec3{1, -1, -0.25}, mathutil.Vec3{1200, 800, -0.25}},
	}
	for _, tc := range tests {
		got := Transform(Vertex{Position: tc.in}, u).ScreenPos
		for i := 0; i < 3; i++ {
			if !near(got[i], tc.want[i]) {
				t.Errorf("Transform(%v).ScreenPos = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}

func TestTransformPreservesObjectSpace(t *testing.T) {
	u := identityUniforms(100, 100)
	u.Model = mgl64.Translate3D(5, 0, 0).Mul4(mgl64.Scale3D(2, 2, 2))
	in := Vertex{Position: mathutil.Vec3{1, 2, 3}, Normal: mathutil.Vec3{0, 1, 0}}

	out := Transform(in, u)
	if out.Position != in.Position || out.Normal != in.Normal {
		t.Errorf("object-space attributes changed: %+v", out)
	}
	if want := (mathutil.Vec3{7, 4, 6}); out.WorldPos != want {
		t.Errorf("WorldPos = %v, want %v", out.WorldPos, want)
	}
	if !near(out.WorldNormal[1], 1) {
		t.Errorf("WorldNormal = %v, want unit +Y", out.WorldNormal)
	}
}

func TestTransformPerspectiveDivide(t *testing.T) {
	u := identityUniforms(200, 200)
	u.Projection = mgl64.Perspective(mgl64.DegToRad(90), 1, 0.1, 100)
	u.View = mgl64.LookAtV(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})

	center := Transform(Vertex{Position: mathutil.Vec3{0, 0, 0}}, u).ScreenPos
	if !near(center[0], 100) || !near(center[1], 100) {
		t.Errorf("origin projects to %v, want screen center", center)
	}
	nearPt := Transform(Vertex{Position: mathutil.Vec3{0, 0, 1}}, u).ScreenPos
	farPt := Transform(Vertex{Position: mathutil.Vec3{0, 0, -1}}, u).ScreenPos
	if !(nearPt[2] < center[2] && center[2] < farPt[2]) {
		t.Errorf("depth not increasing with distance: %v %v %v", nearPt[2], center[2], farPt[2])
	}
	right := Transform(Vertex{Position: mathutil.Vec3{1, 1, 0}}, u).ScreenPos
	if right[0] <= 100 || right[1] >= 100 {
		t.Errorf("(+x,+y) should map right and up on screen, got %v", right)
	}
}

func TestTransformSingularModelKeepsNormalFinite(t *testing.T) {
	u := identityUniforms(10, 10)
	u.Model = mgl64.Scale3D(0, 0, 0)
	out := Transform(Vertex{Normal: mathutil.Vec3{0, 0, 1}}, u)
	if !near(out.WorldNormal[2], 1) {
		t.Errorf("singular model normal = %v, want identity fallback", out.WorldNormal)
	}
}

func TestTransformZeroWStaysFinite(t *testing.T) {
	u := identityUniforms(10, 10)
	u.Projection = mgl64.Mat4{} // w is always zero
	out := Transform(Vertex{Position: mathutil.Vec3{1, 1, 1}}, u)
	for _, v := range out.ScreenPos {
		if math.IsNaN(v) {
			t.Fatalf("ScreenPos contains NaN: %v", out.ScreenPos)
		}
	}
}

func TestBodyKindNames(t *testing.T) {
	for k := Star; k <= Alien; k++ {
		got, ok := ParseBodyKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseBodyKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseBodyKind("comet"); ok {
		t.Error("unknown kind should not parse")
	}
}

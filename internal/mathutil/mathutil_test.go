package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNormalizeZeroVector(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero vector", got)
	}
	n := Vec3{3, 0, 4}.Normalize()
	if !approx(n.Len(), 1) || !approx(n[0], 0.6) || !approx(n[2], 0.8) {
		t.Errorf("Normalize(3,0,4) = %v", n)
	}
}

func TestReflect(t *testing.T) {
	i := Vec3{1, -1, 0}
	n := Vec3{0, 1, 0}
	got := Reflect(i, n)
	want := Vec3{1, 1, 0}
	if got != want {
		t.Errorf("Reflect = %v, want %v", got, want)
	}
}

func TestInverse3SingularFallsBackToIdentity(t *testing.T) {
	singular := mgl64.Mat3{1, 2, 0, 2, 4, 0, 3, 6, 1}
	if got := Inverse3(singular); got != mgl64.Ident3() {
		t.Errorf("Inverse3(singular) = %v, want identity", got)
	}
	m := mgl64.Rotate3DZ(0.7)
	if got := Inverse3(m).Mul3(m); !got.ApproxEqualThreshold(mgl64.Ident3(), 1e-12) {
		t.Errorf("Inverse3(m)·m = %v, want identity", got)
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	nm := NormalMatrix(mgl64.Scale3D(2, 1, 1))
	got := MulDir(nm, Vec3{1, 1, 0})
	if !approx(got[0], 0.5) || !approx(got[1], 1) {
		t.Errorf("normal matrix * (1,1,0) = %v, want (0.5,1,0)", got)
	}
	if NormalMatrix(mgl64.Scale3D(0, 1, 1)) != mgl64.Ident3() {
		t.Error("singular model should give the identity normal matrix")
	}
}

func TestMulPointAndTranslation(t *testing.T) {
	p := MulPoint(mgl64.Translate3D(1, 2, 3), Vec3{1, 1, 1})
	if p != (Vec3{2, 3, 4}) {
		t.Errorf("MulPoint = %v", p)
	}
	if tr := Translation(mgl64.Translate3D(1, 2, 3)); tr != (Vec3{1, 2, 3}) {
		t.Errorf("Translation = %v", tr)
	}
	got := MulDir(mgl64.Rotate3DZ(math.Pi/2), Vec3{1, 0, 0})
	if !approx(got[0], 0) || !approx(got[1], 1) {
		t.Errorf("rotZ(90) * x = %v, want y", got)
	}
}

func TestSpherical(t *testing.T) {
	tests := []struct {
		yaw, pitch float64
		want       Vec3
	}{
		{0, 0, Vec3{0, 0, 5}},
		{0, math.Pi / 2, Vec3{0, 5, 0}},
		{math.Pi / 2, 0, Vec3{5, 0, 0}},
		{math.Pi, 0, Vec3{0, 0, -5}},
	}
	for _, tc := range tests {
		got := Spherical(tc.yaw, tc.pitch, 5)
		for i := range got {
			if !approx(got[i], tc.want[i]) {
				t.Errorf("Spherical(%v, %v, 5) = %v, want %v", tc.yaw, tc.pitch, got, tc.want)
				break
			}
		}
	}
}

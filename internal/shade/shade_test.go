package shade

import (
	"math"
	"testing"

	"solar-raster/internal/mathutil"
)

func TestMixBoundaries(t *testing.T) {
	pairs := [][2]Color{
		{RGB(0.1, 0.2, 0.3), RGB(0.7, 0.9, 0.05)},
		{RGB(1.7, 0, 0.33), RGB(0.02, 0.08, 0.25)},
		{Black, White},
	}
	for _, p := range pairs {
		if got := Mix(p[0], p[1], 0); got != p[0] {
			t.Errorf("Mix(%v, %v, 0) = %v", p[0], p[1], got)
		}
		if got := Mix(p[0], p[1], 1); got != p[1] {
			t.Errorf("Mix(%v, %v, 1) = %v", p[0], p[1], got)
		}
		if got := Mix(p[0], p[1], -3); got != p[0] {
			t.Errorf("Mix with t<0 should clamp to c1, got %v", got)
		}
		if got := Mix(p[0], p[1], 7); got != p[1] {
			t.Errorf("Mix with t>1 should clamp to c2, got %v", got)
		}
	}
}

func TestMixIdempotent(t *testing.T) {
	c := RGB(0.1, 0.7, 0.33)
	for _, tt := range []float64{0, 0.13, 0.5, 0.77, 1} {
		if got := Mix(c, c, tt); got != c {
			t.Errorf("Mix(c, c, %v) = %v, want %v", tt, got, c)
		}
	}
}

func TestMixUsesSmoothstep(t *testing.T) {
	got := Mix(Black, White, 0.25)
	want := 0.25 * 0.25 * (3 - 0.5) // 0.15625, not the linear 0.25
	if math.Abs(got.R-want) > 1e-12 {
		t.Errorf("Mix(black, white, 0.25).R = %v, want %v", got.R, want)
	}
}

func TestWeightedMix(t *testing.T) {
	red, blue := RGB(1, 0, 0), RGB(0, 0, 1)

	got := WeightedMix([]Color{red, blue}, []float64{1, 3})
	if math.Abs(got.R-0.25) > 1e-12 || math.Abs(got.B-0.75) > 1e-12 {
		t.Errorf("WeightedMix = %v", got)
	}
	if got := WeightedMix([]Color{red, blue}, []float64{0, 0}); got != red {
		t.Errorf("zero weight sum should return first color, got %v", got)
	}
	if got := WeightedMix(nil, nil); got != Black {
		t.Errorf("empty WeightedMix = %v, want black", got)
	}
}

func TestPhongComponents(t *testing.T) {
	base := RGB(0.5, 0.5, 0.5)
	frag := mathutil.Vec3{0, 0, 0}
	n := mathutil.Vec3{0, 0, 1}
	light := mathutil.Vec3{0, 0, 10}
	cam := mathutil.Vec3{0, 0, 5}

	got := Phong(frag, n, light, cam, base, 0.1, 0.8, 0.8, 16)
	// ambient 0.05 + diffuse 0.4 + specular 0.8 (reflection points at the camera)
	want := 0.05 + 0.4 + 0.8
	if math.Abs(got.R-want) > 1e-9 {
		t.Errorf("Phong head-on = %v, want %v", got.R, want)
	}
	if got.R <= 1 {
		t.Error("Phong must not clamp its output")
	}

	behind := Phong(frag, n, mathutil.Vec3{0, 0, -10}, cam, base, 0.1, 0.8, 0.5, 16)
	if math.Abs(behind.R-0.05) > 1e-9 {
		t.Errorf("Phong with light behind = %v, want ambient only", behind.R)
	}
}

func TestPhongDegenerateInputsStayFinite(t *testing.T) {
	p := mathutil.Vec3{1, 1, 1}
	got := Phong(p, mathutil.Vec3{}, p, p, White, 0.2, 0.7, 0.3, 8)
	for _, v := range []float64{got.R, got.G, got.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Phong produced non-finite channel: %v", got)
		}
	}
}

func TestRGBA8RoundsAndClamps(t *testing.T) {
	tests := []struct {
		in      Color
		r, g, b uint8
	}{
		{RGB(0, 0.5, 1), 0, 128, 255},
		{RGB(-2, 3, 0.2), 0, 255, 51},
		{Transparent, 0, 0, 0},
	}
	for _, tc := range tests {
		r, g, b := tc.in.RGBA8()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("%v.RGBA8() = %d,%d,%d want %d,%d,%d", tc.in, r, g, b, tc.r, tc.g, tc.b)
		}
	}
	c := FromRGBA8(255, 0, 51)
	if r, g, b := c.RGBA8(); r != 255 || g != 0 || b != 51 {
		t.Errorf("8-bit round trip = %d,%d,%d", r, g, b)
	}
}

func TestToneMap(t *testing.T) {
	m, err := ParseToneMap("aces")
	if err != nil || m != ToneACES {
		t.Fatalf("ParseToneMap(aces) = %v, %v", m, err)
	}
	if _, err := ParseToneMap("filmic"); err == nil {
		t.Error("expected error for unknown tone map")
	}
	r, _, _ := ToneACES.Apply(RGB(4, 0, 0))
	if r == 0 || r == 255 {
		t.Errorf("ACES apply = %d", r)
	}
	if ACESTonemap(-1) != 0 {
		t.Error("ACES of negative input should be 0")
	}
}

func TestFresnel(t *testing.T) {
	n := mathutil.Vec3{0, 0, 1}
	if got := Fresnel(n, n, 3); got != 0 {
		t.Errorf("head-on Fresnel = %v, want 0", got)
	}
	if got := Fresnel(n, mathutil.Vec3{1, 0, 0}, 3); got != 1 {
		t.Errorf("grazing Fresnel = %v, want 1", got)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    Color
	}{
		{0, 1, 1, Color{1, 0, 0}},
		{1.0 / 3, 1, 1, Color{0, 1, 0}},
		{2.0 / 3, 1, 1, Color{0, 0, 1}},
		{-1.0 / 3, 1, 1, Color{0, 0, 1}},
		{1.5, 0, 0.5, Color{0.5, 0.5, 0.5}},
	}
	for _, tt := range tests {
		got := HSV(tt.h, tt.s, tt.v)
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
			t.Errorf("HSV(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c [4]uint8) []uint8 {
	buf := make([]uint8, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		copy(buf[i:i+4], c[:])
	}
	return buf
}

func TestDownsampleExactBlocks(t *testing.T) {
	// 4×2 source, 2×1 target: two 2×2 blocks.
	src := []uint8{
		0, 0, 0, 255, 100, 0, 0, 255, 200, 0, 0, 255, 200, 0, 0, 255,
		100, 0, 0, 255, 200, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0, 255,
	}
	got := Downsample(src, 4, 2, 2, 1)
	want := []uint8{100, 0, 0, 255, 100, 0, 0, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Downsample = %v, want %v", got, want)
		}
	}
}

func TestDownsampleClampsEdges(t *testing.T) {
	// 5×5 to 2×2: block size 3, the second block reads columns 3, 4, 4.
	src := make([]uint8, 5*5*4)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			src[(y*5+x)*4] = uint8(x * 10)
			src[(y*5+x)*4+3] = 255
		}
	}
	got := Downsample(src, 5, 5, 2, 2)
	if len(got) != 2*2*4 {
		t.Fatalf("len = %d", len(got))
	}
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 10},
		{1, 0, 37},
		{1, 1, 37},
		{0, 1, 10},
	}
	for _, tc := range tests {
		if r := got[(tc.y*2+tc.x)*4]; r != tc.want {
			t.Errorf("pixel (%d,%d) R = %d, want %d", tc.x, tc.y, r, tc.want)
		}
	}
}

func TestDownsampleIdentityAndConstant(t *testing.T) {
	c := [4]uint8{12, 34, 56, 255}
	for _, sz := range [][4]int{{3, 3, 3, 3}, {8, 6, 4, 3}, {7, 7, 2, 2}, {2, 2, 4, 4}} {
		got := Downsample(solid(sz[0], sz[1], c), sz[0], sz[1], sz[2], sz[3])
		if len(got) != sz[2]*sz[3]*4 {
			t.Fatalf("%v: len = %d", sz, len(got))
		}
		for i := 0; i < len(got); i += 4 {
			if [4]uint8(got[i:i+4]) != c {
				t.Fatalf("%v: pixel %d = %v", sz, i/4, got[i:i+4])
			}
		}
	}
}

func TestDownsampleDegenerate(t *testing.T) {
	if got := Downsample(nil, 0, 0, 0, 4); got != nil {
		t.Errorf("zero target = %v, want nil", got)
	}
	if got := Downsample([]uint8{1, 2}, 4, 4, 2, 2); len(got) != 16 {
		t.Errorf("short source len = %d, want 16", len(got))
	}
}

func TestDownsampleImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	out := DownsampleImage(sub, 1, 1)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{200, 200, 200, 200}) {
		t.Errorf("DownsampleImage(sub) = %v", got)
	}
}

func TestResizeAndFill(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 90, 255
	}
	if Resize(img, 8, 4) != img {
		t.Error("same-size Resize should return its input")
	}
	r := Resize(img, 4, 2)
	if r.Bounds().Dx() != 4 || r.Bounds().Dy() != 2 {
		t.Fatalf("Resize bounds = %v", r.Bounds())
	}
	if got := r.NRGBAAt(1, 1); got.R < 88 || got.R > 92 || got.A != 255 {
		t.Errorf("Resize pixel = %v", got)
	}

	f := Fill(img, 3, 3)
	if f.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Errorf("Fill bounds = %v", f.Bounds())
	}
}

func TestDrawHUD(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 120, 40))
	DrawHUD(img, []string{"fps 60", "detail 1.0"})
	var lit int
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 230 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("DrawHUD drew nothing")
	}
	if w := TextWidth("abc"); w != 21 {
		t.Errorf("TextWidth = %d, want 21", w)
	}
}

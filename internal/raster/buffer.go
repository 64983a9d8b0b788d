package raster

import (
	"image"
	"math"

	"solar-raster/internal/shade"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Both slices are indexed by y*Width+x.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // NDC depth per pixel, len = W*H, cleared to +inf

	// Background fills the color buffer on Clear unless a Backdrop of the
	// same size is set.
	Background shade.Color
	Backdrop   *image.NRGBA

	// ToneMap converts shaded colors to 8 bits on every write.
	ToneMap shade.ToneMap
}

// NewFrameBuffer allocates a black, cleared buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.Clear()
	return fb
}

// Clear resets depth to +inf and color to the backdrop or background.
func (fb *FrameBuffer) Clear() {
	inf := math.Inf(1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}

	if bd := fb.Backdrop; bd != nil && bd.Rect.Dx() == fb.Width && bd.Rect.Dy() == fb.Height {
		row := fb.Width * 4
		for y := 0; y < fb.Height; y++ {
			copy(fb.Color[y*row:(y+1)*row], bd.Pix[y*bd.Stride:y*bd.Stride+row])
		}
		for i := 3; i < len(fb.Color); i += 4 {
			fb.Color[i] = 255
		}
		return
	}

	r, g, b := fb.ToneMap.Apply(fb.Background)
	for i := 0; i+3 < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = 255
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// SetPixel tone maps c and stores it. Out-of-range coordinates are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, c shade.Color) {
	if !fb.InBounds(x, y) {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i], fb.Color[i+1], fb.Color[i+2] = fb.ToneMap.Apply(c)
	fb.Color[i+3] = 255
}

// Depth returns the stored depth, or -inf outside the buffer so that nothing
// passes a test against it.
func (fb *FrameBuffer) Depth(x, y int) float64 {
	if !fb.InBounds(x, y) {
		return math.Inf(-1)
	}
	return fb.ZBuf[y*fb.Width+x]
}

// TestAndSetDepth stores d and returns true when d is strictly closer than
// the stored depth.
func (fb *FrameBuffer) TestAndSetDepth(x, y int, d float64) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	i := y*fb.Width + x
	if !(d < fb.ZBuf[i]) {
		return false
	}
	fb.ZBuf[i] = d
	return true
}

// Image wraps the color buffer without copying. The image aliases the
// buffer and changes with every draw.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Snapshot copies the color buffer into a new image.
func (fb *FrameBuffer) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

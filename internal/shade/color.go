// Package shade is the color algebra shared by every material: a float color
// type, smoothstep mixing, weighted blends, Phong lighting and the tone
// mapping applied at the framebuffer boundary.
package shade

import "math"

// Color holds linear channel intensities. Values above 1 are legal until the
// framebuffer write clamps them; emissive materials rely on that headroom.
type Color struct {
	R, G, B float64
}

// Transparent is the sentinel a material returns to discard a fragment.
// It packs to black if it ever reaches the framebuffer.
var Transparent = Color{-1, -1, -1}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// RGB builds a Color from three floats.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// FromRGBA8 converts packed 8-bit channels to normalized floats.
func FromRGBA8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// IsTransparent reports whether c is the discard sentinel.
func (c Color) IsTransparent() bool {
	return c == Transparent
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul multiplies channel-wise.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA8 packs the color into 8-bit channels, clamping and rounding half up.
func (c Color) RGBA8() (r, g, b uint8) {
	return clamp255(c.R * 255), clamp255(c.G * 255), clamp255(c.B * 255)
}

// HSV converts hue (in turns, wrapped to [0, 1)), saturation and value to
// a Color.
func HSV(h, s, v float64) Color {
	h -= math.Floor(h)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return Color{v, t, p}
	case 1:
		return Color{q, v, p}
	case 2:
		return Color{p, v, t}
	case 3:
		return Color{p, q, v}
	case 4:
		return Color{t, p, v}
	}
	return Color{v, p, q}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) uint8 {
	if v != v || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

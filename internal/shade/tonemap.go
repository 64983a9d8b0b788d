package shade

import "fmt"

// ToneMap selects how over-range colors are brought into [0, 1] when they are
// written to the framebuffer.
type ToneMap int

const (
	// ToneClamp saturates each channel at 1.
	ToneClamp ToneMap = iota
	// ToneACES compresses highlights with the ACES filmic curve.
	ToneACES
)

func (m ToneMap) String() string {
	switch m {
	case ToneACES:
		return "aces"
	default:
		return "clamp"
	}
}

// ParseToneMap maps a config string to a ToneMap.
func ParseToneMap(s string) (ToneMap, error) {
	switch s {
	case "", "clamp":
		return ToneClamp, nil
	case "aces":
		return ToneACES, nil
	}
	return ToneClamp, fmt.Errorf("shade: unknown tone map %q", s)
}

// ACESTonemap applies ACES filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// Apply maps c into displayable range and packs it to 8-bit channels.
func (m ToneMap) Apply(c Color) (r, g, b uint8) {
	if m == ToneACES {
		c = Color{ACESTonemap(c.R), ACESTonemap(c.G), ACESTonemap(c.B)}
	}
	return c.RGBA8()
}

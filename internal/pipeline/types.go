// Package pipeline defines the data flowing through the renderer (vertices,
// fragments and per-draw uniforms) and the vertex transform stage.
package pipeline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/shade"
)

// BodyKind selects the material used for a draw call.
type BodyKind uint8

const (
	Star BodyKind = iota
	Rocky
	Desert
	GasGiant
	RingedGiant
	Ring
	Moon
	Lava
	Ice
	Alien
)

var kindNames = [...]string{
	Star:        "star",
	Rocky:       "rocky",
	Desert:      "desert",
	GasGiant:    "gas-giant",
	RingedGiant: "ringed-giant",
	Ring:        "ring",
	Moon:        "moon",
	Lava:        "lava",
	Ice:         "ice",
	Alien:       "alien",
}

func (k BodyKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseBodyKind is the inverse of BodyKind.String.
func ParseBodyKind(s string) (BodyKind, bool) {
	for i, name := range kindNames {
		if name == s {
			return BodyKind(i), true
		}
	}
	return 0, false
}

// Pattern selects a color pattern drawn over the body materials. The zero
// value keeps the materials; values wrap modulo NumPatterns.
type Pattern uint8

const (
	PatternMaterial Pattern = iota
	PatternRainbowRings
	PatternChecker
	PatternGrid
	PatternStripes
	PatternPlasma
	PatternRedGradient

	NumPatterns = 7
)

var patternNames = [...]string{
	PatternMaterial:     "material",
	PatternRainbowRings: "rainbow-rings",
	PatternChecker:      "checker",
	PatternGrid:         "grid",
	PatternStripes:      "stripes",
	PatternPlasma:       "plasma",
	PatternRedGradient:  "red-gradient",
}

func (p Pattern) String() string {
	return patternNames[p%NumPatterns]
}

// ParsePattern is the inverse of Pattern.String. The empty string is
// PatternMaterial.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return PatternMaterial, nil
	}
	for i, name := range patternNames {
		if name == s {
			return Pattern(i), nil
		}
	}
	return PatternMaterial, fmt.Errorf("unknown pattern %q", s)
}

// Vertex carries mesh attributes plus the fields filled in by Transform.
type Vertex struct {
	Position mathutil.Vec3 // object space
	Normal   mathutil.Vec3 // object space
	TexCoord [2]float64
	Color    shade.Color // optional base color, zero means material default

	ScreenPos   mathutil.Vec3 // pixels in x/y, NDC depth in z
	WorldPos    mathutil.Vec3
	WorldNormal mathutil.Vec3
}

// Fragment is one covered pixel of one triangle. It exists only inside a
// single rasterization call.
type Fragment struct {
	X, Y      int
	Depth     float64
	WorldPos  mathutil.Vec3
	ObjectPos mathutil.Vec3
	Normal    mathutil.Vec3 // interpolated world-space normal
	Color     shade.Color
}

// Uniforms are the read-only parameters of one draw call.
type Uniforms struct {
	Model      mgl64.Mat4
	View       mgl64.Mat4
	Projection mgl64.Mat4

	// Viewport size in pixels; the renderer fills it from the framebuffer
	// when left at zero.
	ViewportWidth  float64
	ViewportHeight float64

	Time      float64
	Body      BodyKind
	LightPos  mathutil.Vec3
	CameraPos mathutil.Vec3

	// Detail in [0.4, 1.0] scales noise octave counts.
	Detail float64

	// Pattern overrides the body material with a debug color pattern.
	Pattern Pattern

	Wireframe bool
	WireColor shade.Color
}

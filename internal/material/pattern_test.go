package material

import (
	"testing"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

func TestWithPatternMaterialKeepsShader(t *testing.T) {
	for _, p := range []pipeline.Pattern{pipeline.PatternMaterial, pipeline.NumPatterns, 2 * pipeline.NumPatterns} {
		u := testUniforms(pipeline.Rocky, 1.5)
		u.Pattern = p
		frag := fragAt(mathutil.Vec3{0.6, 0.0, 0.8})
		got := Shade(pipeline.Rocky, frag, &pipeline.Vertex{}, u)
		want := Rocky(frag, &pipeline.Vertex{}, u)
		if got != want {
			t.Errorf("pattern %d: got %v, want %v", p, got, want)
		}
	}
}

func TestPatternsOverrideAndClamp(t *testing.T) {
	tests := []struct {
		pattern pipeline.Pattern
		name    string
	}{
		{pipeline.PatternRainbowRings, "rainbow-rings"},
		{pipeline.PatternChecker, "checker"},
		{pipeline.PatternGrid, "grid"},
		{pipeline.PatternStripes, "stripes"},
		{pipeline.PatternPlasma, "plasma"},
		{pipeline.PatternRedGradient, "red-gradient"},
	}
	for _, tt := range tests {
		if got := tt.pattern.String(); got != tt.name {
			t.Errorf("Pattern(%d).String() = %q, want %q", tt.pattern, got, tt.name)
		}
		u := testUniforms(pipeline.Star, 0.7)
		u.Pattern = tt.pattern
		for _, p := range sampleSphere() {
			c := Shade(pipeline.Star, fragAt(p), &pipeline.Vertex{}, u)
			if !finite(c) || c != c.Clamp() {
				t.Fatalf("%s at %v: got %v, want finite color in [0, 1]", tt.name, p, c)
			}
		}
	}
}

func TestPatternKeepsDiscards(t *testing.T) {
	u := testUniforms(pipeline.Ring, 0)
	u.Pattern = pipeline.PatternPlasma
	frag := fragAt(mathutil.Vec3{0.1, 0, 0.1})
	if got := Shade(pipeline.Ring, frag, &pipeline.Vertex{}, u); !got.IsTransparent() {
		t.Errorf("ring hole under plasma = %v, want transparent", got)
	}
}

func TestCheckerAlternates(t *testing.T) {
	first := checker(mathutil.Vec3{0.1, 0.1, 0.1}, 0, shade.Black)
	next := checker(mathutil.Vec3{0.3, 0.1, 0.1}, 0, shade.Black)
	if first == next {
		t.Fatalf("adjacent cells share color %v", first)
	}
	if got := checker(mathutil.Vec3{0.55, 0.1, 0.1}, 0, shade.Black); got != first {
		t.Errorf("cell two steps over = %v, want %v", got, first)
	}
}

func TestRedGradientFadesOutward(t *testing.T) {
	tests := []struct {
		p    mathutil.Vec3
		want float64 // blue channel, 0.1/(1+d) with d = |p|
	}{
		{mathutil.Vec3{0, 0, 0}, 0.1},
		{mathutil.Vec3{1, 0, 0}, 0.05},
		{mathutil.Vec3{0, 3, 0}, 0.025},
	}
	for _, tt := range tests {
		c := redGradient(tt.p, 0, shade.White)
		if got := c.B; got < tt.want-1e-12 || got > tt.want+1e-12 {
			t.Errorf("redGradient(%v).B = %v, want %v", tt.p, got, tt.want)
		}
		if c.R <= c.G {
			t.Errorf("redGradient(%v) = %v, want red dominant", tt.p, c)
		}
	}
}

func TestGridLinesOnlyOnEdges(t *testing.T) {
	base := shade.RGB(0.2, 0.4, 0.6)
	if got := gridLines(mathutil.Vec3{0.25 / 6, 0.25 / 6, 0.25 / 6}, 0, base); got != base {
		t.Errorf("cell interior = %v, want base %v", got, base)
	}
	if got := gridLines(mathutil.Vec3{0, 0.25 / 6, 0.25 / 6}, 0, base); got == base {
		t.Errorf("cell edge kept base color %v", got)
	}
}

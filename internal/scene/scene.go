// Package scene holds the bodies of the solar system and computes where each
// one is at a given time.
package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"solar-raster/internal/mathutil"
	"solar-raster/internal/noise"
	"solar-raster/internal/pipeline"
)

// Shape selects the mesh a body is drawn with.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeRing
)

// Body is one drawable object. Orbits are circles in the parent's XZ plane.
type Body struct {
	Name   string
	Kind   pipeline.BodyKind
	Shape  Shape
	Parent int // index of the body orbited, -1 for none; must precede this body

	OrbitRadius float64
	OrbitSpeed  float64 // radians per second
	OrbitPhase  float64 // radians

	Scale     float64
	SpinSpeed float64 // radians per second about the body's own Y axis
	Tilt      float64 // axial tilt in degrees about X
}

// Placement is a body's pose at one instant.
type Placement struct {
	Index    int
	Body     *Body
	Model    mgl64.Mat4
	Position mathutil.Vec3
	Radius   float64 // bounding radius in world units
}

// System is an ordered body table. The first Star is the light source.
type System struct {
	Bodies []Body
}

// Validate checks that every parent precedes its child.
func (s *System) Validate() error {
	for i, b := range s.Bodies {
		if b.Parent >= i {
			return fmt.Errorf("scene: body %q: parent %d must precede it", b.Name, b.Parent)
		}
		if b.Scale <= 0 {
			return fmt.Errorf("scene: body %q: scale must be positive", b.Name)
		}
	}
	return nil
}

// Placements computes every body's world transform at time t, parents
// first. A child inherits its parent's position but not its rotation.
func (s *System) Placements(t float64) []Placement {
	out := make([]Placement, len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]

		angle := b.OrbitPhase + b.OrbitSpeed*t
		pos := mathutil.Vec3{b.OrbitRadius * math.Cos(angle), 0, b.OrbitRadius * math.Sin(angle)}
		if b.Parent >= 0 && b.Parent < i {
			pos = pos.Add(out[b.Parent].Position)
		}

		model := mgl64.Translate3D(pos[0], pos[1], pos[2]).
			Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(b.Tilt))).
			Mul4(mgl64.HomogRotate3DY(b.SpinSpeed * t)).
			Mul4(mgl64.Scale3D(b.Scale, b.Scale, b.Scale))

		radius := b.Scale
		if b.Shape == ShapeRing {
			radius *= RingMeshOuter
		}
		out[i] = Placement{Index: i, Body: b, Model: model, Position: pos, Radius: radius}
	}
	return out
}

// LightPosition returns the position of the first star at time t, or the
// origin when there is none.
func (s *System) LightPosition(t float64) mathutil.Vec3 {
	for _, p := range s.Placements(t) {
		if p.Body.Kind == pipeline.Star {
			return p.Position
		}
	}
	return mathutil.Vec3{}
}

// Find returns the index of the named body or -1.
func (s *System) Find(name string) int {
	for i := range s.Bodies {
		if s.Bodies[i].Name == name {
			return i
		}
	}
	return -1
}

// Detail picks a noise detail level from how large a body of the given
// radius appears at distance: full detail when it fills a large part of the
// view, falling to the minimum for distant specks.
func Detail(radius, distance float64) float64 {
	if distance <= radius || distance <= 0 {
		return noise.MaxDetail
	}
	d := noise.MinDetail + (radius/distance)*6
	return math.Max(noise.MinDetail, math.Min(noise.MaxDetail, d))
}

// Package camera implements the orbit camera: a target point, a distance and
// yaw/pitch angles around it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"solar-raster/internal/mathutil"
)

// Limits and defaults.
const (
	MaxPitch    = 89.0 // degrees
	MinDistance = 1.5
	MaxDistance = 120.0

	DefaultYaw      = 35.0
	DefaultPitch    = 28.0
	DefaultDistance = 38.0

	Near = 0.1
	Far  = 500.0
)

// Orbit is the camera pose. Angles are in degrees.
type Orbit struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	Target   mathutil.Vec3
	FOV      float64
}

// New returns the default pose looking at the origin.
func New(fov float64) *Orbit {
	o := &Orbit{FOV: fov}
	o.Reset()
	return o
}

// Reset restores the default pose, keeping the field of view.
func (o *Orbit) Reset() {
	o.Yaw = DefaultYaw
	o.Pitch = DefaultPitch
	o.Distance = DefaultDistance
	o.Target = mathutil.Vec3{}
}

// Rotate turns the camera around the target. Pitch stays within ±MaxPitch
// so the view never flips over the pole.
func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.Yaw = math.Mod(o.Yaw+dYaw, 360)
	o.Pitch = clamp(o.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// Zoom multiplies the distance by factor within [MinDistance, MaxDistance].
// Non-positive factors are ignored.
func (o *Orbit) Zoom(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	o.Distance = clamp(o.Distance*factor, MinDistance, MaxDistance)
}

// Pan slides the target in the view plane. dx and dy are fractions of the
// current distance along the camera's right and up axes.
func (o *Orbit) Pan(dx, dy float64) {
	forward := o.Target.Sub(o.Eye()).Normalize()
	right := forward.Cross(mathutil.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)
	o.Target = o.Target.Add(right.Scale(dx * o.Distance)).Add(up.Scale(dy * o.Distance))
}

// Focus centers the camera on target at the given distance.
func (o *Orbit) Focus(target mathutil.Vec3, distance float64) {
	o.Target = target
	o.Distance = clamp(distance, MinDistance, MaxDistance)
}

// Eye is the camera position in world space.
func (o *Orbit) Eye() mathutil.Vec3 {
	return o.Target.Add(mathutil.Spherical(mgl64.DegToRad(o.Yaw), mgl64.DegToRad(o.Pitch), o.Distance))
}

// View is the world-to-camera matrix.
func (o *Orbit) View() mgl64.Mat4 {
	eye, target := o.Eye(), o.Target
	return mgl64.LookAtV(
		mgl64.Vec3{eye[0], eye[1], eye[2]},
		mgl64.Vec3{target[0], target[1], target[2]},
		mgl64.Vec3{0, 1, 0},
	)
}

// Projection is the perspective matrix for a viewport of the given aspect
// ratio (width / height).
func (o *Orbit) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 || math.IsNaN(aspect) {
		aspect = 1
	}
	fov := o.FOV
	if fov <= 0 || fov >= 180 {
		fov = 45
	}
	return mgl64.Perspective(mgl64.DegToRad(fov), aspect, Near, Far)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

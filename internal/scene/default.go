package scene

import "solar-raster/internal/pipeline"

// Ring mesh extent in units of the parent planet's radius. The mesh reaches
// slightly past the shaded annulus on both sides; the ring material discards
// the overhang.
const (
	RingMeshInner = 1.2
	RingMeshOuter = 2.5
)

// DefaultSystem is the star with eight orbiting bodies.
func DefaultSystem() *System {
	return &System{Bodies: []Body{
		{Name: "Sun", Kind: pipeline.Star, Parent: -1, Scale: 2.2, SpinSpeed: 0.05},
		{Name: "Vulcan", Kind: pipeline.Lava, Parent: 0, OrbitRadius: 3.6, OrbitSpeed: 0.9, OrbitPhase: 1.2, Scale: 0.35, SpinSpeed: 0.4},
		{Name: "Earth", Kind: pipeline.Rocky, Parent: 0, OrbitRadius: 5.5, OrbitSpeed: 0.5, OrbitPhase: 0.3, Scale: 0.6, SpinSpeed: 0.6, Tilt: 23.4},
		{Name: "Moon", Kind: pipeline.Moon, Parent: 2, OrbitRadius: 1.1, OrbitSpeed: 1.8, Scale: 0.16, SpinSpeed: 1.8},
		{Name: "Mars", Kind: pipeline.Desert, Parent: 0, OrbitRadius: 7.5, OrbitSpeed: 0.38, OrbitPhase: 2.4, Scale: 0.45, SpinSpeed: 0.55, Tilt: 25},
		{Name: "Jupiter", Kind: pipeline.GasGiant, Parent: 0, OrbitRadius: 10.5, OrbitSpeed: 0.22, OrbitPhase: 4.1, Scale: 1.3, SpinSpeed: 0.9, Tilt: 3},
		{Name: "Saturn", Kind: pipeline.RingedGiant, Parent: 0, OrbitRadius: 14, OrbitSpeed: 0.16, OrbitPhase: 5.3, Scale: 1.1, SpinSpeed: 0.8, Tilt: 26.7},
		{Name: "Saturn rings", Kind: pipeline.Ring, Shape: ShapeRing, Parent: 6, Scale: 1.1, Tilt: 26.7},
		{Name: "Hoth", Kind: pipeline.Ice, Parent: 0, OrbitRadius: 17.5, OrbitSpeed: 0.11, OrbitPhase: 0.8, Scale: 0.7, SpinSpeed: 0.3, Tilt: 12},
		{Name: "Xenon", Kind: pipeline.Alien, Parent: 0, OrbitRadius: 20.5, OrbitSpeed: 0.08, OrbitPhase: 3.3, Scale: 0.8, SpinSpeed: 0.45, Tilt: 8},
	}}
}

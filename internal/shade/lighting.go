package shade

import (
	"math"

	"solar-raster/internal/mathutil"
)

// Phong evaluates ambient + diffuse + specular for one fragment.
//
//	ambient  = base × ambientStrength
//	diffuse  = base × max(0, n·l) × diffuseStrength
//	specular = white × max(0, reflect(-l, n)·v)^shininess × specularStrength
//
// l points from the fragment to the light and v from the fragment to the
// camera. The sum is not clamped.
func Phong(
	fragPos, normal, lightPos, cameraPos mathutil.Vec3,
	base Color,
	ambientStrength, diffuseStrength, specularStrength, shininess float64,
) Color {
	ambient := base.Scale(ambientStrength)

	lightDir := lightPos.Sub(fragPos).Normalize()
	diff := math.Max(0, normal.Dot(lightDir))
	diffuse := base.Scale(diff * diffuseStrength)

	viewDir := cameraPos.Sub(fragPos).Normalize()
	reflectDir := mathutil.Reflect(lightDir.Neg(), normal)
	spec := math.Pow(math.Max(0, reflectDir.Dot(viewDir)), shininess)
	specular := White.Scale(spec * specularStrength)

	return ambient.Add(diffuse).Add(specular)
}

// Fresnel is the rim factor (1 - |n·v|)^power, strongest at grazing angles.
func Fresnel(normal, viewDir mathutil.Vec3, power float64) float64 {
	return math.Pow(1-math.Min(1, math.Abs(normal.Dot(viewDir))), power)
}

// HalfLambert wraps diffuse lighting around the terminator: (n·l)/2 + 1/2.
func HalfLambert(normal, lightDir mathutil.Vec3) float64 {
	return normal.Dot(lightDir)*0.5 + 0.5
}

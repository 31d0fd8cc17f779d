package lightgroup

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SpotLight describes a single spot light in world space.
// Cone angles are full opening angles in degrees. Attenuation holds the
// constant, linear and quadratic coefficients; Depth is the reach of the
// cone along its direction.
type SpotLight struct {
	InnerAngle  float32
	OuterAngle  float32
	Attenuation mgl32.Vec3
	Depth       float32
	Diffuse     mgl32.Vec4 // RGBA
	Specular    mgl32.Vec3 // RGB
	Direction   mgl32.Vec3
	Translation mgl32.Vec3
}

func NewSpotLight() *SpotLight {
	return &SpotLight{
		InnerAngle:  15,
		OuterAngle:  45,
		Attenuation: mgl32.Vec3{1, 0.01, 0.001},
		Depth:       25,
		Diffuse:     mgl32.Vec4{1, 1, 1, 1},
		Specular:    mgl32.Vec3{1, 1, 1},
		Direction:   mgl32.Vec3{0, 0, -1},
	}
}

// Matrix returns the cone's local-to-world transform. The proxy cone has
// its apex at the origin and opens along -Z with unit depth and unit base
// radius; the transform scales the base to the outer-angle radius,
// stretches to Depth, orients along Direction and moves to Translation.
func (l *SpotLight) Matrix() mgl32.Mat4 {
	// M = T * R * S
	half := mgl32.DegToRad(l.OuterAngle * 0.5)
	radius := l.Depth * float32(math.Tan(float64(half)))

	translate := mgl32.Translate3D(l.Translation.X(), l.Translation.Y(), l.Translation.Z())
	rotate := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, l.Direction).Mat4()
	scale := mgl32.Scale3D(radius, radius, l.Depth)

	return translate.Mul4(rotate).Mul4(scale)
}

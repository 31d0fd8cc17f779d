package lightgroup

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertMat4InDelta(t *testing.T, want, got mgl32.Mat4, delta float64) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func TestSpotLightMatrix_TranslationOnly(t *testing.T) {
	l := NewSpotLight()
	l.OuterAngle = 90 // tan(45 deg) = 1, so base radius equals depth
	l.Depth = 1
	l.Direction = mgl32.Vec3{0, 0, -1}
	l.Translation = mgl32.Vec3{2, -3, 4}

	want := mgl32.Translate3D(2, -3, 4)
	assertMat4InDelta(t, want, l.Matrix(), 1e-6)
}

func TestSpotLightMatrix_DepthScalesCone(t *testing.T) {
	l := NewSpotLight()
	l.OuterAngle = 90
	l.Depth = 2
	l.Direction = mgl32.Vec3{0, 0, -1}
	l.Translation = mgl32.Vec3{}

	want := mgl32.Scale3D(2, 2, 2)
	assertMat4InDelta(t, want, l.Matrix(), 1e-6)
}

func TestSpotLightMatrix_OrientsAlongDirection(t *testing.T) {
	l := NewSpotLight()
	l.OuterAngle = 90
	l.Depth = 1
	l.Direction = mgl32.Vec3{1, 0, 0}
	l.Translation = mgl32.Vec3{}

	// the cone axis (local -Z, unit depth) must land on the direction
	axis := l.Matrix().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	assert.InDelta(t, 1, float64(axis.X()), 1e-6)
	assert.InDelta(t, 0, float64(axis.Y()), 1e-6)
	assert.InDelta(t, 0, float64(axis.Z()), 1e-6)
}

func TestSpotLightMatrix_ApexAtTranslation(t *testing.T) {
	l := NewSpotLight()
	l.Direction = mgl32.Vec3{0.3, -1, 0.2}.Normalize()
	l.Translation = mgl32.Vec3{5, 6, 7}

	apex := l.Matrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, l.Translation[i], apex[i], 1e-5)
	}
}

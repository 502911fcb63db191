package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookAtOrigin(t *testing.T) {
	view := LookAt(Vec3d{0, 0, 5}, Vec3d{}, Vec3d{0, 1, 0})

	// the origin is five units in front of the camera
	assertVec4InDelta(t, Vec4d{0, 0, -5, 1}, view.Transform(Vec4d{0, 0, 0, 1}))

	// the eye itself maps to the camera origin
	assertVec4InDelta(t, Vec4d{0, 0, 0, 1}, view.Transform(Vec4d{0, 0, 5, 1}))
}

func TestLookAtIsOrthonormal(t *testing.T) {
	view := LookAt(Vec3d{3, 3, -3}, Vec3d{}, Vec3d{0, 1, 0})

	rotation := view
	rotation[12], rotation[13], rotation[14] = 0, 0, 0

	assertMat4InDelta(t, IdentityMat4[float64](), rotation.Mul(rotation.Transpose()))
}

func TestLookAtDegenerateUp(t *testing.T) {
	view := LookAt(Vec3d{0, 5, 0}, Vec3d{}, Vec3d{0, 1, 0})
	assert.True(t, math.IsNaN(view[0]))
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective[float64](math.Pi/2, 1, 1, 100)

	near := proj.Transform(Vec4d{0, 0, -1, 1}).PerspectiveDivide()
	far := proj.Transform(Vec4d{0, 0, -100, 1}).PerspectiveDivide()

	assert.InDelta(t, -1, near[2], standardTol)
	assert.InDelta(t, 1, far[2], standardTol)
}

func TestPerspectiveAspect(t *testing.T) {
	proj := Perspective[float64](math.Pi/2, 2, 1, 100)

	assert.InDelta(t, 0.5, proj.At(0, 0), standardTol)
	assert.InDelta(t, 1, proj.At(1, 1), standardTol)
	assert.Equal(t, -1.0, proj.At(3, 2))
	assert.Equal(t, 0.0, proj.At(3, 3))
}

func TestModelViewProjection(t *testing.T) {
	projection := Perspective[float64](math.Pi/2, 1, 1, 100)
	view := LookAt(Vec3d{0, 0, 5}, Vec3d{}, Vec3d{0, 1, 0})
	model := IdentityMat4[float64]()

	mvp := projection.Mul(view).Mul(model)

	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				clip := mvp.Transform(Vec4d{x, y, z, 1})
				assert.True(t, clip.InClipVolume(), "vertex (%v, %v, %v) -> %v", x, y, z, clip)
			}
		}
	}
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi, float64(DegToRad(180.0)), standardTol)
	assert.InDelta(t, 90.0, RadToDeg[float64](math.Pi/2), standardTol)
}

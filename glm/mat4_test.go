package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = 1e-6

func assertMat4InDelta(t *testing.T, expected, actual Mat4d) {
	t.Helper()

	for idx := range expected {
		assert.InDelta(t, expected[idx], actual[idx], standardTol,
			"element row=%d col=%d", idx%4, idx/4)
	}
}

func assertVec4InDelta(t *testing.T, expected, actual Vec4d) {
	t.Helper()

	for idx := range expected {
		assert.InDelta(t, expected[idx], actual[idx], standardTol, "component %d", idx)
	}
}

// some matrix without any special structure
var sampleMat4 = Mat4d{
	2, 0.5, -1, 0,
	3, 1, 4, 0.25,
	-2, 7, 0.5, 1,
	1, -3, 2, 1,
}

func TestIdentityMat4(t *testing.T) {
	m := IdentityMat4[float64]()

	for row := range 4 {
		for col := range 4 {
			expected := 0.0
			if row == col {
				expected = 1
			}

			assert.Equal(t, expected, m.At(row, col))
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	id := IdentityMat4[float64]()

	assertMat4InDelta(t, sampleMat4, sampleMat4.Mul(id))
	assertMat4InDelta(t, sampleMat4, id.Mul(sampleMat4))
}

func TestMat4MulDoesNotMutate(t *testing.T) {
	a := sampleMat4
	b := RotationXMat4[float64](0.3)
	bCopy := b

	_ = a.Mul(b)

	assert.Equal(t, sampleMat4, a)
	assert.Equal(t, bCopy, b)
}

func TestMat4MulAssociative(t *testing.T) {
	a := sampleMat4
	b := RotationYMat4[float64](1.1).Translate(1, 2, 3)
	c := Perspective[float64](math.Pi/3, 1.5, 0.5, 50)

	assertMat4InDelta(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
}

func TestMat4MulNotCommutative(t *testing.T) {
	a := TranslationMat4[float64](1, 0, 0)
	b := ScaleMat4[float64](2, 2, 2)

	assert.NotEqual(t, a.Mul(b), b.Mul(a))
}

func TestMat4MulOrder(t *testing.T) {
	// scale first, translate second
	m := TranslationMat4[float64](1, 2, 3).Mul(ScaleMat4[float64](2, 2, 2))
	assertVec4InDelta(t, Vec4d{3, 4, 5, 1}, m.Transform(Vec4d{1, 1, 1, 1}))
}

func TestRotateZeroAngle(t *testing.T) {
	id := IdentityMat4[float64]()

	var out Mat4d
	RotateXMat4(&out, &id, 0)
	assert.Equal(t, id, out)

	RotateYMat4(&out, &sampleMat4, 0)
	assert.Equal(t, sampleMat4, out)
}

func TestRotateAliasing(t *testing.T) {
	angles := []Rad{0, 0.25, math.Pi / 2, 2, -1.3, 7}

	for _, angle := range angles {
		source := sampleMat4

		var expected Mat4d
		RotateXMat4(&expected, &source, angle)

		aliased := sampleMat4
		RotateXMat4(&aliased, &aliased, angle)
		assert.Equal(t, expected, aliased, "rotate x angle=%v", angle)

		RotateYMat4(&expected, &source, angle)

		aliased = sampleMat4
		RotateYMat4(&aliased, &aliased, angle)
		assert.Equal(t, expected, aliased, "rotate y angle=%v", angle)

		// the source is not touched by a non aliased call
		assert.Equal(t, sampleMat4, source)
	}
}

func TestRotateCopiesUntouchedColumns(t *testing.T) {
	out := Mat4d{}
	RotateXMat4(&out, &sampleMat4, 0.7)

	assert.Equal(t, sampleMat4[0:4], out[0:4])
	assert.Equal(t, sampleMat4[12:16], out[12:16])

	out = Mat4d{}
	RotateYMat4(&out, &sampleMat4, 0.7)

	assert.Equal(t, sampleMat4[4:8], out[4:8])
	assert.Equal(t, sampleMat4[12:16], out[12:16])
}

func TestRotateMatchesRotationMatrix(t *testing.T) {
	var out Mat4d

	RotateXMat4(&out, &sampleMat4, 0.9)
	assertMat4InDelta(t, sampleMat4.Mul(RotationXMat4[float64](0.9)), out)

	RotateYMat4(&out, &sampleMat4, 0.9)
	assertMat4InDelta(t, sampleMat4.Mul(RotationYMat4[float64](0.9)), out)

	assertMat4InDelta(t, out, sampleMat4.RotateY(0.9))
}

func TestRotateYKeepsYAxis(t *testing.T) {
	id := IdentityMat4[float64]()

	var m Mat4d
	RotateYMat4(&m, &id, math.Pi/2)

	assertVec4InDelta(t, Vec4d{0, 1, 0, 1}, m.Transform(Vec4d{0, 1, 0, 1}))
}

func TestRotationDirection(t *testing.T) {
	// right handed: x rotates towards -z around y, y towards z around x
	rotY := IdentityMat4[float64]().RotateY(math.Pi / 2)
	assertVec4InDelta(t, Vec4d{0, 0, -1, 1}, rotY.Transform(Vec4d{1, 0, 0, 1}))

	rotX := IdentityMat4[float64]().RotateX(math.Pi / 2)
	assertVec4InDelta(t, Vec4d{0, 0, 1, 1}, rotX.Transform(Vec4d{0, 1, 0, 1}))
}

func TestMat4Transpose(t *testing.T) {
	transposed := sampleMat4.Transpose()

	for row := range 4 {
		for col := range 4 {
			require.Equal(t, sampleMat4.At(row, col), transposed.At(col, row))
		}
	}

	assert.Equal(t, sampleMat4, transposed.Transpose())
}

func TestMat4Of(t *testing.T) {
	m := Mat4Of([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	// columns are laid out contiguously
	assert.Equal(t, 5.0, m.At(0, 1))
	assert.Equal(t, 13.0, m.At(0, 3))
	assert.Equal(t, 4.0, m.At(3, 0))
}

package glm

import "math"

// Mat4 is a 4x4 matrix in column-major order. The element in row r and
// column c is stored at index c*4+r.
type Mat4[T float] [16]T

// Mat4Of builds a matrix from its four columns.
func Mat4Of[T float](columns [4][4]T) Mat4[T] {
	return Mat4[T]{
		columns[0][0], columns[0][1], columns[0][2], columns[0][3],
		columns[1][0], columns[1][1], columns[1][2], columns[1][3],
		columns[2][0], columns[2][1], columns[2][2], columns[2][3],
		columns[3][0], columns[3][1], columns[3][2], columns[3][3],
	}
}

func IdentityMat4[T float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TranslationMat4[T float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ScaleMat4[T float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func RotationXMat4[T float](angle Rad) Mat4[T] {
	s, c := sincos[T](angle)

	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func RotationYMat4[T float](angle Rad) Mat4[T] {
	s, c := sincos[T](angle)

	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateXMat4 writes source rotated about the x axis into out.
// out and source may point to the same matrix.
func RotateXMat4[T float](out, source *Mat4[T], angle Rad) {
	s, c := sincos[T](angle)

	a10, a11, a12, a13 := source[4], source[5], source[6], source[7]
	a20, a21, a22, a23 := source[8], source[9], source[10], source[11]

	if out != source {
		copy(out[0:4], source[0:4])
		copy(out[12:16], source[12:16])
	}

	out[4] = a10*c + a20*s
	out[5] = a11*c + a21*s
	out[6] = a12*c + a22*s
	out[7] = a13*c + a23*s
	out[8] = a20*c - a10*s
	out[9] = a21*c - a11*s
	out[10] = a22*c - a12*s
	out[11] = a23*c - a13*s
}

// RotateYMat4 writes source rotated about the y axis into out.
// out and source may point to the same matrix.
func RotateYMat4[T float](out, source *Mat4[T], angle Rad) {
	s, c := sincos[T](angle)

	a00, a01, a02, a03 := source[0], source[1], source[2], source[3]
	a20, a21, a22, a23 := source[8], source[9], source[10], source[11]

	if out != source {
		copy(out[4:8], source[4:8])
		copy(out[12:16], source[12:16])
	}

	out[0] = a00*c - a20*s
	out[1] = a01*c - a21*s
	out[2] = a02*c - a22*s
	out[3] = a03*c - a23*s
	out[8] = a00*s + a20*c
	out[9] = a01*s + a21*c
	out[10] = a02*s + a22*c
	out[11] = a03*s + a23*c
}

func (lhs Mat4[T]) RotateX(angle Rad) Mat4[T] {
	RotateXMat4(&lhs, &lhs, angle)
	return lhs
}

func (lhs Mat4[T]) RotateY(angle Rad) Mat4[T] {
	RotateYMat4(&lhs, &lhs, angle)
	return lhs
}

func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4[T](x, y, z))
}

// At returns the element in the given row and column.
func (lhs Mat4[T]) At(row, col int) T {
	return lhs[col*4+row]
}

// Mul returns lhs * rhs. Transforming a point with the result is the same
// as transforming it with rhs first and lhs second.
func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
		lhs[0]*rhs[4] + lhs[4]*rhs[5] + lhs[8]*rhs[6] + lhs[12]*rhs[7],
		lhs[1]*rhs[4] + lhs[5]*rhs[5] + lhs[9]*rhs[6] + lhs[13]*rhs[7],
		lhs[2]*rhs[4] + lhs[6]*rhs[5] + lhs[10]*rhs[6] + lhs[14]*rhs[7],
		lhs[3]*rhs[4] + lhs[7]*rhs[5] + lhs[11]*rhs[6] + lhs[15]*rhs[7],
		lhs[0]*rhs[8] + lhs[4]*rhs[9] + lhs[8]*rhs[10] + lhs[12]*rhs[11],
		lhs[1]*rhs[8] + lhs[5]*rhs[9] + lhs[9]*rhs[10] + lhs[13]*rhs[11],
		lhs[2]*rhs[8] + lhs[6]*rhs[9] + lhs[10]*rhs[10] + lhs[14]*rhs[11],
		lhs[3]*rhs[8] + lhs[7]*rhs[9] + lhs[11]*rhs[10] + lhs[15]*rhs[11],
		lhs[0]*rhs[12] + lhs[4]*rhs[13] + lhs[8]*rhs[14] + lhs[12]*rhs[15],
		lhs[1]*rhs[12] + lhs[5]*rhs[13] + lhs[9]*rhs[14] + lhs[13]*rhs[15],
		lhs[2]*rhs[12] + lhs[6]*rhs[13] + lhs[10]*rhs[14] + lhs[14]*rhs[15],
		lhs[3]*rhs[12] + lhs[7]*rhs[13] + lhs[11]*rhs[14] + lhs[15]*rhs[15],
	}
}

func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
	}
}

func (lhs Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		lhs[0], lhs[4], lhs[8], lhs[12],
		lhs[1], lhs[5], lhs[9], lhs[13],
		lhs[2], lhs[6], lhs[10], lhs[14],
		lhs[3], lhs[7], lhs[11], lhs[15],
	}
}

func sincos[T float](angle Rad) (s, c T) {
	fs, fc := math.Sincos(float64(angle))
	return T(fs), T(fc)
}

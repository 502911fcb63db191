package glm

import "math"

// Perspective builds a right handed projection into GL style clip space,
// where visible points satisfy |x|, |y|, |z| <= w. near and far must be
// positive with near < far, anything else yields a meaningless matrix.
func Perspective[T float](fovY Rad, aspect, near, far T) Mat4[T] {
	f := T(1 / math.Tan(float64(fovY*0.5)))
	nf := 1 / (near - far)

	return Mat4Of([4][4]T{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	})
}

// LookAt builds a view matrix for a camera at eye looking towards center.
// The camera looks down its negative z axis. If up is parallel to
// eye - center, the result contains NaN.
func LookAt[T float](eye, center, up Vec3[T]) Mat4[T] {
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4Of([4][4]T{
		{x[0], y[0], z[0], 0},
		{x[1], y[1], z[1], 0},
		{x[2], y[2], z[2], 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	})
}

func DegToRad[T float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T float](rad Rad) (deg T) {
	return T(rad * (180 / math.Pi))
}

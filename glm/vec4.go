package glm

type Vec4[T float] [4]T

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

// PerspectiveDivide maps a clip space point to normalized device coordinates.
func (lhs Vec4[T]) PerspectiveDivide() Vec3[T] {
	return lhs.Truncate().MulScalar(1 / lhs[3])
}

// InClipVolume reports whether |x|, |y| and |z| are all at most w.
func (lhs Vec4[T]) InClipVolume() bool {
	w := lhs[3]
	for _, v := range lhs[:3] {
		if v > w || v < -w {
			return false
		}
	}

	return true
}

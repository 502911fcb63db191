package glm

import (
	"math"
	"math/rand/v2"
)

type Vec3[T float] [3]T

// RandomVec3 returns a vector with each component uniform in [0, 1),
// drawn from the shared random source.
func RandomVec3[T float]() Vec3[T] {
	return randomVec3[T](rand.Float64)
}

// RandomVec3From is like RandomVec3 but draws from rng.
func RandomVec3From[T float](rng *rand.Rand) Vec3[T] {
	return randomVec3[T](rng.Float64)
}

func randomVec3[T float](next func() float64) Vec3[T] {
	return Vec3[T]{
		unitFloat[T](next),
		unitFloat[T](next),
		unitFloat[T](next),
	}
}

// unitFloat converts a draw from [0, 1) to T. Values just below one
// round up to 1 in float32 and are drawn again.
func unitFloat[T float](next func() float64) T {
	for {
		if v := T(next()); v < 1 {
			return v
		}
	}
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1] + lhs[2]*rhs[2]
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - lhs[2]*rhs[1],
		lhs[2]*rhs[0] - lhs[0]*rhs[2],
		lhs[0]*rhs[1] - lhs[1]*rhs[0],
	}
}

func (lhs Vec3[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

// Normalize scales the vector to unit length. The zero vector
// has no direction and normalizes to NaN.
func (lhs Vec3[T]) Normalize() Vec3[T] {
	length := lhs.Length()

	return Vec3[T]{
		lhs[0] / length,
		lhs[1] / length,
		lhs[2] / length,
	}
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

func (lhs Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-lhs[0], -lhs[1], -lhs[2]}
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{lhs[0], lhs[1], lhs[2], w}
}

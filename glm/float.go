package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

// Rad is an angle in radians.
type Rad float64

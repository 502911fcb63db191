package cube

import (
	"github.com/oliverbestmann/spincube/glm"
)

// camera setup, fixed for the lifetime of the program
var (
	fovY = glm.DegToRad[float32](75)

	eye    = glm.Vec3f{3, 3, -3}
	center = glm.Vec3f{0, 0, 0}
	up     = glm.Vec3f{0, 1, 0}
)

const (
	near = 0.1
	far  = 500.0
)

// Animation spins the cube around its x and y axis, both at one
// radian per second.
type Animation struct {
	Projection glm.Mat4f
	View       glm.Mat4f
}

func NewAnimation(aspect float32) Animation {
	return Animation{
		Projection: glm.Perspective(fovY, aspect, near, far),
		View:       glm.LookAt(eye, center, up),
	}
}

// WithAspect returns a copy with the projection rebuilt for the given aspect ratio.
func (a Animation) WithAspect(aspect float32) Animation {
	a.Projection = glm.Perspective(fovY, aspect, near, far)
	return a
}

// ModelAt returns the model matrix after t seconds.
func (a Animation) ModelAt(t float32) glm.Mat4f {
	identity := glm.IdentityMat4[float32]()

	var model glm.Mat4f
	glm.RotateXMat4(&model, &identity, glm.Rad(t))
	glm.RotateYMat4(&model, &model, glm.Rad(t))

	return model
}

// MVP returns projection * view * model after t seconds.
func (a Animation) MVP(t float32) glm.Mat4f {
	viewProjection := a.Projection.Mul(a.View)
	return viewProjection.Mul(a.ModelAt(t))
}

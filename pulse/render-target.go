package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
type RenderTarget struct {
	View *wgpu.TextureView

	// depth attachment, nil if the target has no depth buffer
	DepthView *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32
}

// Aspect returns the width to height ratio of the target.
func (t RenderTarget) Aspect() float32 {
	if t.Height == 0 {
		return 1
	}

	return float32(t.Width) / float32(t.Height)
}

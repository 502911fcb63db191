package pulse

import (
	"github.com/oliverbestmann/webgpu/wgpu"
)

// DepthFormat is the format of all depth attachments.
const DepthFormat = wgpu.TextureFormatDepth32Float

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView
}

// NewTextureFromDesc creates a texture directly from
// a texture descriptor
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, err
	}

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, err
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
	}

	return t, nil
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}

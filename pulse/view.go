package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View holds the surface configuration and the depth
// texture matching the current surface size.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	// depth texture to render to, only set if depth is enabled
	depthTexture *Texture

	// true if depth is enabled
	depth bool
}

func NewView(ctx *Context, depth bool) *View {
	st := &View{Context: ctx, depth: depth}

	// Print the available render formats
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8Unorm,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return st
}

// Target wraps the given surface view into a RenderTarget
// using the current configuration.
func (vs *View) Target(surfaceView *wgpu.TextureView) RenderTarget {
	target := RenderTarget{
		View:   surfaceView,
		Format: vs.surfaceConfig.Format,
		Width:  vs.surfaceConfig.Width,
		Height: vs.surfaceConfig.Height,
	}

	if vs.depthTexture != nil {
		target.DepthView = vs.depthTexture.View()
	}

	return target
}

func (vs *View) Release() {
	if vs.depthTexture != nil {
		vs.depthTexture.Release()
		vs.depthTexture = nil
	}
}

func (vs *View) Configure(width, height uint32) error {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)

	// release the old depth texture
	vs.Release()

	if vs.depth {
		depthTexture, err := createDepthTexture(vs.Context, width, height)
		if err != nil {
			return fmt.Errorf("create depth texture: %w", err)
		}

		vs.depthTexture = depthTexture
	}

	return nil
}

func createDepthTexture(ctx *Context, width, height uint32) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:     "DepthTexture",
		Usage:     wgpu.TextureUsageRenderAttachment,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        DepthFormat,
		MipLevelCount: 1,
		SampleCount:   1,
	})
}

package orion

import "github.com/oliverbestmann/spincube/pulse"

type Game interface {
	// Initialize is called once before the first frame,
	// after the gpu context was created.
	Initialize(ctx *pulse.Context) error

	// Update is called once per frame before Draw.
	Update(times FrameTimes) error

	// Draw renders the next frame into the surface target.
	Draw(target pulse.RenderTarget) error
}

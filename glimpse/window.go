package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run calls render once per frame until the window is closed
	// or render returns an error.
	Run(render func() error) error
	Terminate()
}

type NewWindowOptions struct {
	Width  int
	Height int
	Title  string

	// Record a cpu profile while the window is open
	Profile bool
}

//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
}

func NewWindow(opts NewWindowOptions) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", opts.Title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{
		canvas: canvas,
	}

	return win, nil
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	width := g.canvas.Get("width").Int()
	height := g.canvas.Get("height").Int()
	return uint32(width), uint32(height)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func (g *jsWindow) Run(render func() error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    return
                }
            }
        }
	})`)

	done := make(chan error, 1)

	renderWrapper := func(this js.Value, args []js.Value) any {
		resizeCanvas(g.canvas)

		if err := render(); err != nil {
			done <- err
			return false
		}

		return true
	}

	fn := js.FuncOf(renderWrapper)
	defer fn.Release()

	helper.Call("run", fn)

	// blocks until rendering fails, the page never closes the window
	return <-done
}

func resizeCanvas(canvas js.Value) {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	canvas.Set("width", viewWidth*ratio)
	canvas.Set("height", viewHeight*ratio)
}

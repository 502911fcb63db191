package orion

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/spincube/glimpse"
	"github.com/oliverbestmann/spincube/pulse"
)

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Record a cpu profile while the game is running
	Profile bool
}

func (opts RunGameOptions) withDefaults() RunGameOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1280
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 720
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "spincube"
	}

	return opts
}

func RunGame(opts RunGameOptions) error {
	game := opts.Game
	if game == nil {
		return errors.New("Game must not be nil")
	}

	opts = opts.withDefaults()

	// create a new window (or canvas)
	win, err := glimpse.NewWindow(glimpse.NewWindowOptions{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	// initialize the view, the cube needs a depth buffer
	view := pulse.NewView(ctx, true)
	defer view.Release()

	loopState := &LoopState{
		Window: win,
		Game:   game,
	}

	return win.Run(func() error {
		return loopOnce(view, loopState)
	})
}

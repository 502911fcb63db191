package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spincube/glimpse"
	"github.com/oliverbestmann/spincube/pulse"
)

// log frame statistics every this many frames
const statsInterval = 600

type LoopState struct {
	Window        glimpse.Window
	Game          Game
	SurfaceWidth  uint32
	SurfaceHeight uint32
	Initialized   bool

	Times FrameTimes
}

func loopOnce(view *pulse.View, loopState *LoopState) error {
	// get surface size for next frame
	surfaceWidth, surfaceHeight := loopState.Window.GetSize()

	if surfaceWidth == 0 || surfaceHeight == 0 {
		// minimized, nothing to render to
		return nil
	}

	// reconfigure surface if needed
	if loopState.SurfaceWidth != surfaceWidth || loopState.SurfaceHeight != surfaceHeight {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		if err := view.Configure(surfaceWidth, surfaceHeight); err != nil {
			return fmt.Errorf("resize surface: %w", err)
		}

		loopState.SurfaceWidth = surfaceWidth
		loopState.SurfaceHeight = surfaceHeight
	}

	// get the surface texture (the actual screen)
	surface, err := view.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	defer func() {
		if surface != nil {
			surface.Release()
		}
	}()

	if loopState.Times.Tick() {
		slog.Debug("Frame stats",
			slog.Uint64("frames", loopState.Times.FrameCount),
			slog.Float64("fps", loopState.Times.FPS()),
			slog.Duration("max", loopState.Times.MaxDuration),
		)
	}

	// run game.Initialize and game.Update
	if err := performGameUpdate(view.Context, loopState); err != nil {
		return err
	}

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer surfaceView.Release()

	if err := loopState.Game.Draw(view.Target(surfaceView)); err != nil {
		return fmt.Errorf("draw game: %w", err)
	}

	// present the rendered image
	view.Surface.Present()

	// we do not need to release the screen if present was successful
	surface = nil

	return nil
}

func performGameUpdate(ctx *pulse.Context, loopState *LoopState) error {
	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := loopState.Game.Update(loopState.Times); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

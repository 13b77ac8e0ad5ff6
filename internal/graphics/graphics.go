// Package graphics owns the raylib window and the frame loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
	// Fullscreen opens at monitor size instead of Width×Height.
	Fullscreen bool
	// Unload runs after the last frame, while the GPU context is still alive.
	Unload func()
}

// DefaultOptions returns a resizable 1280×720 window at 60 FPS.
func DefaultOptions() Options {
	return Options{Title: "Anatomy Viewer", Width: 1280, Height: 720, TargetFPS: 60}
}

// Run starts the window and main loop. Each frame it calls update with the frame time in seconds,
// then clears the screen and calls draw. ESC toggles the terminal, so the window closes only via its button.
func Run(opts Options, update func(dt float32), draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := opts.Width, opts.Height
	if opts.Fullscreen {
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(30, 30, 36, 255))
		draw()
		rl.EndDrawing()
	}
	if opts.Unload != nil {
		opts.Unload()
	}
}

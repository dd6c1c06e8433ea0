// Package window owns the render surface and event pump of the avatar viewer,
// plus frame recording. Nothing here runs on its own: the caller drives the
// loop by calling Repaint, one cooperative pump per frame, on the thread that
// owns the window.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/logger"
	"avatar-engine/internal/scene"
)

// Config describes the window to open.
type Config struct {
	Title      string
	Width      int32
	Height     int32
	Background [3]float32 // 0..1 components
	TargetFPS  int32
}

// DefaultConfig returns a windowed 1280x720 viewer with a black background at 60 FPS.
func DefaultConfig() Config {
	return Config{
		Title:      "avatar viewer",
		Width:      1280,
		Height:     720,
		Background: [3]float32{0, 0, 0},
		TargetFPS:  60,
	}
}

// Window owns the raylib window and drives repaint and recording. Construct it
// with Open and release it with Close; there is no package-level window state.
type Window struct {
	scene      *scene.Scene
	log        *logger.Logger
	background rl.Color
	overlay    Overlay

	recording  bool
	recordDir  string
	frameIndex int
}

// Open creates the window and OpenGL context. log may be nil.
func Open(cfg Config, scn *scene.Scene, log *logger.Logger) *Window {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	rl.SetExitKey(rl.KeyNull) // close via window button, keys stay free for the caller
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(cfg.TargetFPS)
	}
	return &Window{
		scene:      scn,
		log:        log,
		background: scene.Color01(cfg.Background, 1),
	}
}

// Close ends any active recording and destroys the window.
func (w *Window) Close() {
	if w.recording {
		w.EndRecording()
	}
	rl.CloseWindow()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// SetBackground changes the clear color (0..1 components) for subsequent repaints.
func (w *Window) SetBackground(rgb [3]float32) {
	w.background = scene.Color01(rgb, 1)
}

// Overlay exposes the debug overlay toggles.
func (w *Window) Overlay() *Overlay {
	return &w.overlay
}

// Repaint pumps one redraw and event cycle: camera input, clear, scene draw
// (which consumes any pending camera reset), debug overlay. Renderable updates
// pushed since the last Repaint become visible here.
func (w *Window) Repaint() {
	w.scene.Update()
	rl.BeginDrawing()
	rl.ClearBackground(w.background)
	w.scene.Draw()
	w.overlay.Draw()
	rl.EndDrawing()
}

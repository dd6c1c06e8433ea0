package window

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// frameFilePattern names captured frames so an external encoder can pick them
// up in order (e.g. ffmpeg -i frame_%05d.png).
const frameFilePattern = "frame_%05d.png"

// BeginRecording starts capturing frames into dir, creating it if needed. The
// window is pinned to its current size for the duration so every captured
// frame has the same dimensions. Frames are only captured on explicit
// CaptureFrame calls, not on every Repaint.
func (w *Window) BeginRecording(dir string) error {
	if w.recording {
		return fmt.Errorf("window: already recording into %s", w.recordDir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	rl.ClearWindowState(rl.FlagWindowResizable)
	w.recording = true
	w.recordDir = dir
	w.frameIndex = 0
	if w.log != nil {
		w.log.Logf("recording started: %s", dir)
	}
	return nil
}

// CaptureFrame writes the current front buffer as the next numbered PNG.
func (w *Window) CaptureFrame() error {
	if !w.recording {
		return fmt.Errorf("window: not recording")
	}
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	path := filepath.Join(w.recordDir, fmt.Sprintf(frameFilePattern, w.frameIndex))
	rl.ExportImage(*img, path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("window: failed to export %s: %w", path, err)
	}
	w.frameIndex++
	return nil
}

// EndRecording stops capturing and unpins the window size.
func (w *Window) EndRecording() {
	if !w.recording {
		return
	}
	rl.SetWindowState(rl.FlagWindowResizable)
	if w.log != nil {
		w.log.Logf("recording finished: %d frames in %s", w.frameIndex, w.recordDir)
	}
	w.recording = false
	w.recordDir = ""
}

// Recording reports whether a recording is in progress.
func (w *Window) Recording() bool { return w.recording }

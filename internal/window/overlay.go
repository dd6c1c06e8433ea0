package window

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// overlayRefresh: only rebuild the overlay text every N frames to limit allocations.
	overlayRefresh = 30
)

// Overlay draws optional runtime counters (FPS, heap allocation) in the top
// right corner. All counters are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// Draw renders any enabled counters. Call after the scene in the repaint cycle.
func (o *Overlay) Draw() {
	o.frameCount++
	refresh := o.frameCount%overlayRefresh == 0
	if o.ShowFPS && o.lastFpsText == "" {
		refresh = true
	}
	if o.ShowMemAlloc && o.lastMemText == "" {
		refresh = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)

	if o.ShowFPS {
		if refresh {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawCounter(o.lastFpsText, screenW, y)
		y += overlayLineHeight
	}
	if o.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&o.memStats)
			mb := float64(o.memStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawCounter(o.lastMemText, screenW, y)
	}
}

func drawCounter(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, overlayFontSize)
	rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
}

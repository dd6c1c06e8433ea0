package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/avatar"
	"avatar-engine/internal/logger"
	"avatar-engine/internal/scene"
	"avatar-engine/internal/viewerconfig"
	"avatar-engine/internal/window"
)

const recordDir = "recordings/demo"

// Keys: G toggles the grid, F the FPS counter, M the memory counter,
// R starts/stops frame recording. Close via the window button.
func main() {
	log := logger.New("")
	prefs, _ := viewerconfig.LoadPrefs("")
	opts, err := viewerconfig.LoadStyles("")
	if err != nil {
		log.Logf("style sheet rejected, using defaults: %v", err)
		opts = avatar.DefaultOptions()
	}

	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)

	cfg := window.DefaultConfig()
	cfg.Title = "avatar viewer - demo arm"
	cfg.Background = prefs.Background
	win := window.Open(cfg, scn, log)
	defer win.Close()
	win.Overlay().ShowFPS = prefs.ShowFPS
	win.Overlay().ShowMemAlloc = prefs.ShowMemAlloc

	model, err := avatar.NewModel(scn, opts)
	if err != nil {
		log.Logf("model options rejected: %v", err)
		return
	}
	model.SetLogger(log)
	if err := model.CreateGlobalFrame(); err != nil {
		log.Logf("global frame: %v", err)
	}

	var t float32
	for !win.ShouldClose() {
		handleKeys(win, scn, &prefs)

		frame := synthesize(t)
		push(model, frame, log)
		win.Repaint()
		if win.Recording() {
			if err := win.CaptureFrame(); err != nil {
				log.Logf("capture: %v", err)
			}
		}
		t += rl.GetFrameTime()
	}

	if err := viewerconfig.SavePrefs("", prefs); err != nil {
		log.Logf("saving prefs: %v", err)
	}
}

// push applies one synthesized frame to every category. Categories are
// independent; a failure in one is logged and the rest still apply.
func push(model *avatar.Model, f demoFrame, log *logger.Logger) {
	steps := []struct {
		name string
		run  func() error
	}{
		{"markers", func() error { return model.Markers.Update(f.markers) }},
		{"contacts", func() error { return model.Contacts.Update(f.contacts) }},
		{"global com", func() error { return model.GlobalCoM.Update(f.globalCoM) }},
		{"segments com", func() error { return model.SegmentsCoM.Update(f.segCoM) }},
		{"meshes", func() error { return model.Meshes.Update(f.meshes) }},
		{"muscles", func() error { return model.Muscles.Update(f.muscles) }},
		{"wrappings", func() error { return model.Wrappings.Update(f.wrappings) }},
		{"rt frames", func() error { return model.Frames.Update(f.frames) }},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			log.Logf("%s update: %v", s.name, err)
		}
	}
}

func handleKeys(win *window.Window, scn *scene.Scene, prefs *viewerconfig.Prefs) {
	if rl.IsKeyPressed(rl.KeyG) {
		prefs.GridVisible = !prefs.GridVisible
		scn.SetGridVisible(prefs.GridVisible)
	}
	if rl.IsKeyPressed(rl.KeyF) {
		prefs.ShowFPS = !prefs.ShowFPS
		win.Overlay().ShowFPS = prefs.ShowFPS
	}
	if rl.IsKeyPressed(rl.KeyM) {
		prefs.ShowMemAlloc = !prefs.ShowMemAlloc
		win.Overlay().ShowMemAlloc = prefs.ShowMemAlloc
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if win.Recording() {
			win.EndRecording()
		} else {
			_ = win.BeginRecording(recordDir)
		}
	}
}

package avatar

import (
	"fmt"

	"avatar-engine/internal/logger"
	"avatar-engine/internal/motion"
)

// WrapGroup renders wrapping surfaces grouped by owning segment. Each segment
// owns an independent sub-list of parts with its own generation, so one
// segment's wrapping can rebuild while the others take the fast path. Wrapping
// parts are always drawn as outlines.
type WrapGroup struct {
	name  string
	stage Stage
	style Style
	log   *logger.Logger

	segments []*SurfaceGroup
}

func newWrapGroup(name string, st Stage, style Style) *WrapGroup {
	return &WrapGroup{name: name, stage: st, style: style}
}

// Update pushes one frame for every segment's wrapping parts, outer index =
// owning segment. A change in the segment count discards every per-segment
// generation; within a segment the usual per-part rebuild-or-reposition
// decision applies.
func (w *WrapGroup) Update(segments [][]*motion.Surface) error {
	if len(segments) != len(w.segments) {
		for _, g := range w.segments {
			g.set.clear()
		}
		w.segments = make([]*SurfaceGroup, len(segments))
		for i := range segments {
			g := newSurfaceGroup(fmt.Sprintf("%s[%d]", w.name, i), w.stage, w.style, 1, true)
			g.set.log = w.log
			w.segments[i] = g
		}
	}
	for i, parts := range segments {
		if err := w.segments[i].Update(parts); err != nil {
			return err
		}
	}
	return nil
}

// SetColor changes the wrapping color (0..1 components) on every segment.
func (w *WrapGroup) SetColor(rgb [3]float32) error {
	s := w.style
	s.Color = rgb
	return w.restyle(s)
}

// SetOpacity changes the wrapping opacity (0..1) on every segment.
func (w *WrapGroup) SetOpacity(v float32) error {
	s := w.style
	s.Opacity = v
	return w.restyle(s)
}

func (w *WrapGroup) restyle(s Style) error {
	if err := s.Validate(w.name); err != nil {
		return err
	}
	w.style = s
	for _, g := range w.segments {
		if err := g.restyle(s); err != nil {
			return err
		}
	}
	return nil
}

func (w *WrapGroup) setLogger(log *logger.Logger) {
	w.log = log
	for _, g := range w.segments {
		g.set.log = log
	}
}

package avatar

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/logger"
	"avatar-engine/internal/scene"
)

// Options bundles every category's appearance configuration. Zero is not a
// usable value; start from DefaultOptions and override fields.
type Options struct {
	Markers     Style
	Contacts    Style
	GlobalCoM   Style
	SegmentsCoM Style
	Mesh        Style
	Muscle      Style
	Wrapping    Style

	// MuscleLineWidth is the drawn width of muscle path segments.
	MuscleLineWidth float32
	// RTLength and RTWidth size the per-segment coordinate frames.
	RTLength float32
	RTWidth  float32
	// GlobalFrameLength and GlobalFrameWidth size the once-only global
	// reference frame, distinct from the per-segment frames.
	GlobalFrameLength float32
	GlobalFrameWidth  float32
}

// DefaultOptions returns the standard avatar appearance: white 10 mm markers,
// green contacts, black centers of mass, bone-colored translucent meshes, dark
// red muscles, blue wrapping outlines.
func DefaultOptions() Options {
	return Options{
		Markers:     Style{Size: 0.010, Color: [3]float32{1, 1, 1}, Opacity: 1},
		Contacts:    Style{Size: 0.01, Color: [3]float32{0, 1, 0}, Opacity: 1},
		GlobalCoM:   Style{Size: 0.0075, Color: [3]float32{0, 0, 0}, Opacity: 1},
		SegmentsCoM: Style{Size: 0.005, Color: [3]float32{0, 0, 0}, Opacity: 1},
		Mesh:        Style{Size: 1, Color: [3]float32{0.89, 0.855, 0.788}, Opacity: 0.8},
		Muscle:      Style{Size: 1, Color: [3]float32{150.0 / 255, 15.0 / 255, 15.0 / 255}, Opacity: 1},
		Wrapping:    Style{Size: 1, Color: [3]float32{0, 0, 1}, Opacity: 1},

		MuscleLineWidth:   5,
		RTLength:          0.1,
		RTWidth:           2,
		GlobalFrameLength: 0.15,
		GlobalFrameWidth:  5,
	}
}

// Validate checks every style and every length/width.
func (o Options) Validate() error {
	styles := []struct {
		name  string
		style Style
	}{
		{"markers", o.Markers},
		{"contacts", o.Contacts},
		{"global com", o.GlobalCoM},
		{"segments com", o.SegmentsCoM},
		{"mesh", o.Mesh},
		{"muscle", o.Muscle},
		{"wrapping", o.Wrapping},
	}
	for _, s := range styles {
		if err := s.style.Validate(s.name); err != nil {
			return err
		}
	}
	widths := []struct {
		name string
		v    float32
	}{
		{"muscle line width", o.MuscleLineWidth},
		{"rt length", o.RTLength},
		{"rt width", o.RTWidth},
		{"global frame length", o.GlobalFrameLength},
		{"global frame width", o.GlobalFrameWidth},
	}
	for _, w := range widths {
		if w.v <= 0 {
			return fmt.Errorf("avatar: %s must be > 0, got %v", w.name, w.v)
		}
	}
	return nil
}

// Model aggregates every renderable category of one avatar on a shared stage.
// Categories are independent: a failed update in one leaves the others'
// committed actor state untouched.
type Model struct {
	Markers     *PointCloud
	Contacts    *PointCloud
	GlobalCoM   *PointCloud
	SegmentsCoM *PointCloud
	Meshes      *SurfaceGroup
	Muscles     *SurfaceGroup
	Wrappings   *WrapGroup
	Frames      *AxesGroup

	stage       Stage
	opts        Options
	globalFrame *scene.Actor
}

// NewModel returns a model on the given stage. No actors exist until the first
// frame is pushed into a category.
func NewModel(st Stage, opts Options) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		Markers:     newPointCloud("markers", st, opts.Markers),
		Contacts:    newPointCloud("contacts", st, opts.Contacts),
		GlobalCoM:   newPointCloud("global com", st, opts.GlobalCoM),
		SegmentsCoM: newPointCloud("segments com", st, opts.SegmentsCoM),
		Meshes:      newSurfaceGroup("meshes", st, opts.Mesh, 1, false),
		Muscles:     newSurfaceGroup("muscles", st, opts.Muscle, opts.MuscleLineWidth, true),
		Wrappings:   newWrapGroup("wrappings", st, opts.Wrapping),
		Frames:      newAxesGroup("rt frames", st, opts.RTLength, opts.RTWidth),
		stage:       st,
		opts:        opts,
	}, nil
}

// SetLogger routes rebuild events of every category to log. Pass nil to
// silence them.
func (m *Model) SetLogger(log *logger.Logger) {
	m.Markers.set.log = log
	m.Contacts.set.log = log
	m.GlobalCoM.set.log = log
	m.SegmentsCoM.set.log = log
	m.Meshes.set.log = log
	m.Muscles.set.log = log
	m.Wrappings.setLogger(log)
	m.Frames.set.log = log
}

// CreateGlobalFrame adds the static global reference frame: an axis star at
// the world origin using the configured global frame length and width. It may
// be called exactly once per model; a second call fails with a
// DuplicateInitError. The frame never moves after creation.
func (m *Model) CreateGlobalFrame() error {
	if m.globalFrame != nil {
		return &DuplicateInitError{}
	}
	l := m.opts.GlobalFrameLength
	m.globalFrame = &scene.Actor{Lines: &scene.LineSet{
		Points: []rl.Vector3{
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(l, 0, 0),
			rl.NewVector3(0, l, 0),
			rl.NewVector3(0, 0, l),
		},
		Segments: [][2]int32{{0, 1}, {0, 2}, {0, 3}},
		Colors:   axisColors,
		Width:    m.opts.GlobalFrameWidth,
	}}
	m.stage.AddActor(m.globalFrame)
	m.stage.RequestCameraReset()
	return nil
}

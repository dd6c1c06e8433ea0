package avatar

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/motion"
	"avatar-engine/internal/scene"
)

// Axis segment colors: X=red, Y=green, Z=blue. Fixed at rebuild, never touched
// by fast-path updates.
var axisColors = []rl.Color{
	rl.NewColor(255, 0, 0, 255),
	rl.NewColor(0, 255, 0, 255),
	rl.NewColor(0, 0, 255, 255),
}

// rtUnit is one rigid transform. The arity of the collection is the transform
// count, so only adding or removing a frame triggers a rebuild.
type rtUnit struct {
	t motion.Transform
}

func (rtUnit) arity() int { return 1 }

// AxesGroup renders one local coordinate frame per rigid transform: a fixed
// four-point, three-segment star whose points are recomputed from the
// transform's translation and scaled basis columns on every update.
type AxesGroup struct {
	set    renderSet[rtUnit]
	length float32
	width  float32
}

func newAxesGroup(name string, st Stage, length, width float32) *AxesGroup {
	g := &AxesGroup{length: length, width: width}
	g.set = renderSet[rtUnit]{
		name:  name,
		stage: st,
		build: func(rtUnit) *scene.Actor {
			return &scene.Actor{Lines: &scene.LineSet{
				Points:   make([]rl.Vector3, 4),
				Segments: [][2]int32{{0, 1}, {0, 2}, {0, 3}},
				Colors:   axisColors,
				Width:    g.width,
			}}
		},
		place: func(u rtUnit, a *scene.Actor) {
			origin := u.t.Translation()
			a.Lines.Points[0] = rl.NewVector3(origin[0], origin[1], origin[2])
			for axis := 0; axis < 3; axis++ {
				tip := origin.Add(u.t.Basis(axis).Scale(g.length))
				a.Lines.Points[axis+1] = rl.NewVector3(tip[0], tip[1], tip[2])
			}
		},
	}
	return g
}

// Update pushes one frame of rigid transforms, one coordinate frame each. Every
// payload must span exactly one time sample. A transform-count change rebuilds
// the generation; otherwise only the four star points of each actor move.
func (g *AxesGroup) Update(all []*motion.RotoTrans) error {
	units := make([]rtUnit, len(all))
	for i, rt := range all {
		if rt == nil {
			return &InputError{Category: g.set.name, Reason: fmt.Sprintf("nil transform at index %d", i)}
		}
		t, err := rt.Single()
		if err != nil {
			return err
		}
		units[i] = rtUnit{t: t}
	}
	g.set.apply(units)
	return nil
}

// SetAxisLength changes the drawn axis length and re-applies the last frame.
// No-op until a frame has been pushed.
func (g *AxesGroup) SetAxisLength(v float32) error {
	if v <= 0 {
		return fmt.Errorf("avatar: %s: axis length must be > 0, got %v", g.set.name, v)
	}
	g.length = v
	g.set.replay()
	return nil
}

package avatar

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/motion"
	"avatar-engine/internal/scene"
)

// surfUnit is one mesh part. Its arity is the part's channel (vertex) count, so
// a part whose vertex count changes rebuilds its actor even when the part count
// stays the same.
type surfUnit struct {
	part *motion.Surface
	pts  []motion.Vec3
}

func (u surfUnit) arity() int { return len(u.pts) }

// SurfaceGroup renders a collection of independent mesh parts: body meshes and
// muscle paths. Each part owns one actor. The topology class (outline loops vs
// filled triangles) is decided once per rebuild from the part's triangle table
// and stays fixed for the generation; fast-path updates only move points.
type SurfaceGroup struct {
	set       renderSet[surfUnit]
	style     Style
	lineWidth float32
	// forceOutline pins the whole group to outline topology regardless of the
	// triangle-table heuristic. Muscles and wrapping surfaces are never filled.
	forceOutline bool
	last         []*motion.Surface
}

func newSurfaceGroup(name string, st Stage, style Style, lineWidth float32, forceOutline bool) *SurfaceGroup {
	g := &SurfaceGroup{style: style, lineWidth: lineWidth, forceOutline: forceOutline}
	g.set = renderSet[surfUnit]{
		name:  name,
		stage: st,
		build: g.buildActor,
		place: g.placeActor,
	}
	return g
}

// buildActor constructs a part's actor with its topology. Outline parts become
// one closed three-segment loop per triangle-table triple; filled parts become
// one triangle per triple. Colors are applied here (rebuild), not on the fast
// path; an outline forced by the heuristic on a fillable mesh gets the neutral
// outline color instead of the group color.
func (g *SurfaceGroup) buildActor(u surfUnit) *scene.Actor {
	if g.outline(u.part) {
		segs := make([][2]int32, 0, 3*len(u.part.Triangles))
		for _, t := range u.part.Triangles {
			segs = append(segs, [2]int32{t[0], t[1]}, [2]int32{t[1], t[2]}, [2]int32{t[2], t[0]})
		}
		return &scene.Actor{Lines: &scene.LineSet{
			Points:   make([]rl.Vector3, len(u.pts)),
			Segments: segs,
			Color:    g.actorColor(u.part),
			Width:    g.lineWidth,
		}}
	}
	tris := make([][3]int32, len(u.part.Triangles))
	copy(tris, u.part.Triangles)
	return &scene.Actor{Surface: &scene.TriangleSet{
		Points:    make([]rl.Vector3, len(u.pts)),
		Triangles: tris,
		Color:     g.actorColor(u.part),
	}}
}

// placeActor repositions a part's points. Topology and colors are untouched.
func (g *SurfaceGroup) placeActor(u surfUnit, a *scene.Actor) {
	var dst []rl.Vector3
	if a.Lines != nil {
		dst = a.Lines.Points
	} else {
		dst = a.Surface.Points
	}
	for i, p := range u.pts {
		dst[i] = rl.NewVector3(p[0], p[1], p[2])
	}
}

// outline reports the topology class for a part within this group.
func (g *SurfaceGroup) outline(part *motion.Surface) bool {
	return g.forceOutline || part.Mode == motion.TopologyOutline || part.Outline()
}

// actorColor returns the color a part's actor gets at rebuild. A fillable mesh
// downgraded to an outline by the degenerate-table heuristic is drawn in the
// neutral outline color.
func (g *SurfaceGroup) actorColor(part *motion.Surface) rl.Color {
	if !g.forceOutline && part.Mode != motion.TopologyOutline && part.Outline() {
		return scene.Color01([3]float32{0, 0, 0}, g.style.Opacity)
	}
	return scene.Color01(g.style.Color, g.style.Opacity)
}

// Update pushes one frame for every part. Each part must span exactly one time
// sample and reference only its own points. A change in the part count, or in
// any part's vertex count, rebuilds the whole generation.
func (g *SurfaceGroup) Update(parts []*motion.Surface) error {
	units := make([]surfUnit, len(parts))
	for i, part := range parts {
		if part == nil {
			return &InputError{Category: g.set.name, Reason: fmt.Sprintf("nil surface at index %d", i)}
		}
		pts, err := part.Points.Single()
		if err != nil {
			return err
		}
		if err := part.Validate(); err != nil {
			return &InputError{Category: g.set.name, Reason: err.Error()}
		}
		units[i] = surfUnit{part: part, pts: pts}
	}
	g.last = parts
	g.set.apply(units)
	return nil
}

// SetColor changes the group color (0..1 components), re-applies the last frame,
// and recolors the live actors. No-op until a frame has been pushed.
func (g *SurfaceGroup) SetColor(rgb [3]float32) error {
	s := g.style
	s.Color = rgb
	return g.restyle(s)
}

// SetOpacity changes the group opacity (0..1) and recolors the live actors.
func (g *SurfaceGroup) SetOpacity(v float32) error {
	s := g.style
	s.Opacity = v
	return g.restyle(s)
}

func (g *SurfaceGroup) restyle(s Style) error {
	if err := s.Validate(g.set.name); err != nil {
		return err
	}
	g.style = s
	if g.last == nil {
		return nil
	}
	// Same payload, same arity: always the fast path, which leaves colors
	// alone, so the setter pathway recolors explicitly afterwards.
	if err := g.Update(g.last); err != nil {
		return err
	}
	for i, u := range g.set.units {
		a := g.set.actors[i]
		if a.Lines != nil {
			a.Lines.Color = g.actorColor(u.part)
		} else if a.Surface != nil {
			a.Surface.Color = g.actorColor(u.part)
		}
	}
	return nil
}
